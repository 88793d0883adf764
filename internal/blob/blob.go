// Package blob stores attachment payloads. Payloads may disappear
// independently of the note metadata that references them, so Get reports
// absence as a normal result rather than an error.
package blob

import "context"

type Blob struct {
	Name     string
	MimeType string
	Data     []byte
}

func (b *Blob) Size() int64 {
	return int64(len(b.Data))
}

// Store is implemented by Memory and S3.
type Store interface {
	// Put stores b under a new id and returns it.
	Put(ctx context.Context, b Blob) (string, error)
	// Get returns the payload, or false when it is no longer available.
	Get(ctx context.Context, id string) (*Blob, bool, error)
	Delete(ctx context.Context, id string) error
}
