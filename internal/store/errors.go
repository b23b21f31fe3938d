package store

import (
	"errors"
	"fmt"
)

// Common store errors.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. A miss is an expected outcome, not a failure; callers translate
	// it into a 404-equivalent response.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned at construction time when two entities share
	// a unique key.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned at construction time when an entity fails
	// structural validation. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific errors

	// ErrGuideNotFound indicates that no guide with the requested slug exists.
	ErrGuideNotFound = fmt.Errorf("%w: guide", ErrNotFound)

	// ErrDuplicateGuideSlug indicates that two guides in the authored corpus
	// share a slug. This is always a fatal authoring error.
	ErrDuplicateGuideSlug = fmt.Errorf("%w: guide slug", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "guide", "intro block")
	Operation string // The operation that failed (e.g., "build", "lookup")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation,
// message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
