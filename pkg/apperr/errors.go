// Package apperr defines the error kinds the service layer returns.
// Each kind is a sentinel so callers can branch with errors.Is instead of
// matching message text.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation - malformed or out-of-range input on create/update
	ErrValidation = errors.New("validation failed")

	// ErrNotFound - unknown record id
	ErrNotFound = errors.New("not found")

	// ErrForbidden - the actor's role is not authorized for the operation
	ErrForbidden = errors.New("forbidden")

	// ErrIllegalTransition - requested status change is not in the allowed edge set
	ErrIllegalTransition = errors.New("illegal status transition")

	// ErrInvalidStateForEdit - content edit attempted on a non-pending record
	ErrInvalidStateForEdit = errors.New("invalid state for edit")

	// ErrEmptyReport - report requested but no completed records exist
	ErrEmptyReport = errors.New("nothing to export")
)

// StorageError wraps a failure from the persistence layer. It is deliberately
// opaque: a broken database connection must never be mistaken for a policy
// denial.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError for operation op. Returns nil if err is nil.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// Validation wraps ErrValidation with a detail message.
func Validation(detail string) error {
	return fmt.Errorf("%w: %s", ErrValidation, detail)
}

// NotFound wraps ErrNotFound naming the missing resource.
func NotFound(resource, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, resource, id)
}
