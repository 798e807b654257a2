package driven

import "context"

// UnlockFunc releases a document lock.
type UnlockFunc func() error

// DocumentStore reads and writes documents on disk.
type DocumentStore interface {
	// Read returns the full content of the document at path.
	// Returns domain.ErrMissingInput if the document does not exist.
	Read(ctx context.Context, path string) (string, error)

	// Write replaces the document at path with content.
	// A failed write never leaves a partially written file.
	Write(ctx context.Context, path, content string) error

	// Exists reports whether a document exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// Lock takes an exclusive lock scoped to path.
	// Returns domain.ErrLocked if another process holds it.
	Lock(ctx context.Context, path string) (UnlockFunc, error)
}
