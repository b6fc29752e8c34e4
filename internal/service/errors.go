package service

import (
	"fmt"

	"github.com/phrazzld/cosmic-api/internal/domain"
	"github.com/phrazzld/cosmic-api/internal/store"
)

// ServiceError wraps unexpected errors from a service operation with context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_scientist").
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
// Validation errors and store sentinels are returned directly without wrapping.
func NewServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if domain.IsValidationError(err) ||
		store.IsNotFoundError(err) ||
		store.IsInvalidEntityError(err) {
		return err
	}

	return &ServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
