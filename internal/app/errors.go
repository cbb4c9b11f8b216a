package app

import (
	"errors"
	"fmt"

	"readinglog/internal/validation"
)

var (
	// ErrBusy is returned when the same operation is already in flight.
	ErrBusy = errors.New("operation already in progress")
	// ErrNoActiveChild is returned by child-scoped mutations when no child is selected.
	ErrNoActiveChild = errors.New("no active child selected")
	// ErrValidation marks input rejected before any remote call.
	ErrValidation = errors.New("validation failed")
	// ErrUnknownChild is returned when selecting a child the user does not have.
	ErrUnknownChild = errors.New("unknown child")
	// ErrClosed is returned by every call on a closed session.
	ErrClosed = errors.New("session closed")
)

// IsValidation reports whether err was rejected before reaching the store.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) || errors.Is(err, ErrNoActiveChild) || errors.Is(err, ErrUnknownChild)
}

func validate(v any) error {
	if err := validation.Struct(v); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}
