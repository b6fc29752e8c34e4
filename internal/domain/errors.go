package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// It is always wrapped by a *ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyName is returned when a name field is empty.
	ErrEmptyName = errors.New("name cannot be empty")

	// ErrEmptyFieldOfStudy is returned when a scientist's field of study is empty.
	ErrEmptyFieldOfStudy = errors.New("field of study cannot be empty")

	// ErrEmptyScientistID is returned when a mission has no scientist reference.
	ErrEmptyScientistID = errors.New("scientist ID cannot be empty")

	// ErrEmptyPlanetID is returned when a mission has no planet reference.
	ErrEmptyPlanetID = errors.New("planet ID cannot be empty")
)

// ValidationError reports a single field that failed its predicate.
// errors.Is matches both ErrValidation and the field-specific cause.
type ValidationError struct {
	Field string
	Err   error
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

// Unwrap exposes both the field cause and ErrValidation to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

// IsValidationError reports whether err is (or wraps) a domain validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}
