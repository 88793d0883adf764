package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks input rejected before any state was changed.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks a referenced goal, milestone or user that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrStorage marks a failure of the persistence port.
	ErrStorage = errors.New("storage failure")
	// ErrAlreadyExists marks an attempt to create an entity with a taken id.
	ErrAlreadyExists = errors.New("already exists")

	// ErrGoalNotActive is returned when completing a goal that is not active.
	ErrGoalNotActive = fmt.Errorf("goal is not active: %w", ErrValidation)
)

// ValidationError describes a rejected field. It matches ErrValidation
// under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Invalid is shorthand for constructing a *ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundf wraps ErrNotFound with a formatted description of the missing entity.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrNotFound)
}
