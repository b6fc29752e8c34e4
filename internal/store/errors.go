package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific variants below wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when a write violates a relational constraint,
	// most commonly a mission referencing a scientist or planet that does not exist.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a transaction cannot begin or commit.
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrScientistNotFound indicates that the requested scientist does not exist.
	ErrScientistNotFound = fmt.Errorf("%w: scientist", ErrNotFound)

	// ErrPlanetNotFound indicates that the requested planet does not exist.
	ErrPlanetNotFound = fmt.Errorf("%w: planet", ErrNotFound)

	// ErrMissionNotFound indicates that the requested mission does not exist.
	ErrMissionNotFound = fmt.Errorf("%w: mission", ErrNotFound)

	// ErrUnknownScientist is returned when a mission references a missing scientist.
	ErrUnknownScientist = fmt.Errorf("%w: scientist does not exist", ErrInvalidEntity)

	// ErrUnknownPlanet is returned when a mission references a missing planet.
	ErrUnknownPlanet = fmt.Errorf("%w: planet does not exist", ErrInvalidEntity)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidEntityError checks if the error is a constraint violation.
func IsInvalidEntityError(err error) bool {
	return errors.Is(err, ErrInvalidEntity)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "scientist", "mission")
	Operation string // The operation that failed (e.g., "create", "delete")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
