package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/journey/internal/blob"
	"github.com/alexanderramin/journey/internal/domain"
)

type attachmentService struct {
	blobs    blob.Store
	observer UseCaseObserver
	now      func() time.Time
}

func NewAttachmentService(blobs blob.Store, observers ...UseCaseObserver) AttachmentService {
	return &attachmentService{
		blobs:    blobs,
		observer: useCaseObserverOrNoop(observers),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *attachmentService) Upload(ctx context.Context, name string, r io.Reader) (ref domain.AttachmentRef, err error) {
	fields := map[string]any{"name": name}
	defer observe(ctx, s.observer, "upload-attachment", fields)(&err)

	if err = required("name", name); err != nil {
		return ref, err
	}
	name = filepath.Base(strings.TrimSpace(name))
	data, err := io.ReadAll(r)
	if err != nil {
		return ref, fmt.Errorf("reading attachment %s: %w", name, err)
	}
	fields["bytes"] = len(data)

	mimeType := detectMimeType(name, data)
	id, err := s.blobs.Put(ctx, blob.Blob{Name: name, MimeType: mimeType, Data: data})
	if err != nil {
		return ref, fmt.Errorf("storing attachment %s: %w: %w", name, domain.ErrStorage, err)
	}
	return domain.NewAttachmentRef(id, name, mimeType, int64(len(data)), s.now()), nil
}

func (s *attachmentService) Open(ctx context.Context, id string) (*blob.Blob, bool, error) {
	b, ok, err := s.blobs.Get(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("opening attachment %s: %w: %w", id, domain.ErrStorage, err)
	}
	return b, ok, nil
}

// detectMimeType prefers the file extension and falls back to sniffing
// the first bytes of the payload.
func detectMimeType(name string, data []byte) string {
	if t := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); t != "" {
		return t
	}
	if len(data) == 0 {
		return domain.DefaultMimeType
	}
	return domain.CoalesceStr(http.DetectContentType(data), domain.DefaultMimeType)
}
