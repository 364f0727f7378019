package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means neither the application id nor the store id matched
	// any document.
	ErrNotFound = errors.New("record not found")

	// ErrActiveHero rejects deletion of the hero section currently flagged
	// active; a different section must be activated first.
	ErrActiveHero = errors.New("cannot delete the active hero section")
)

// ValidationError reports a missing or malformed field on a write request.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s is required", e.Field)
}

func required(field string) error {
	return &ValidationError{Field: field}
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
