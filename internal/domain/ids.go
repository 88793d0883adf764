package domain

import "github.com/google/uuid"

// NewID returns a time-ordered unique identifier (UUIDv7: a millisecond
// timestamp followed by random bits). It falls back to a random UUIDv4 if
// the v7 generator fails.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
