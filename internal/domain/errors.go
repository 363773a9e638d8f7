// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrInvalidQuery is returned when a route identifier or query parameter is
	// malformed, for example a non-integer or non-positive article id.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidBody is returned when a request body is missing required fields
	// or carries fields of the wrong type.
	ErrInvalidBody = errors.New("invalid request body")
)

// ValidationError describes which input failed validation. It wraps one of the
// sentinel errors above so callers can still classify it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Message)
	}
	return fmt.Sprintf("%v: %s %s", e.Err, e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
