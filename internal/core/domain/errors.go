package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent patching failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates an unknown operation kind.
	ErrUnsupportedKind = errors.New("unsupported operation kind")

	// Run Errors.

	// ErrMissingInput indicates the target document does not exist.
	// Nothing is written when this is returned.
	ErrMissingInput = errors.New("input document not found")

	// ErrInvalidPattern indicates a regex pattern or replacement template
	// could not be compiled. The whole run is rejected.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrRequiredNoEffect indicates an operation marked as required
	// matched nothing in the buffer.
	ErrRequiredNoEffect = errors.New("required operation had no effect")

	// ErrLocked indicates another run holds the document lock.
	ErrLocked = errors.New("document is locked by another run")
)

// PatchError names the operation that caused a run to fail.
// It wraps a validation error, ErrInvalidPattern or ErrRequiredNoEffect.
type PatchError struct {
	// Index is the zero-based position of the operation in the plan.
	Index int

	// Label is the operation's diagnostic label.
	Label string

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *PatchError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("operation %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("operation %d (%s): %v", e.Index, e.Label, e.Err)
}

// Unwrap returns the underlying cause so errors.Is works on sentinels.
func (e *PatchError) Unwrap() error {
	return e.Err
}
