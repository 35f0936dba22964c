// apperrors/errors.go
package apperrors

import (
	"errors"
	"fmt"
)

// ErrPayloadTooLarge is returned by the blob store when an upload exceeds
// the size cap. Kept distinct from ValidationError so the transport can
// answer 413 with a size-specific message.
var ErrPayloadTooLarge = errors.New("payload too large")

// ErrNotFound is returned when a single-document lookup finds nothing.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or out-of-range request field. It is
// surfaced directly to the caller and never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a failure from one of the storage backends. The
// backend's message is preserved; nothing in the core retries it.
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

// NewStorageError wraps err with the failing operation name.
func NewStorageError(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
