package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/custodia-labs/docpatch/internal/core/domain"
	"github.com/custodia-labs/docpatch/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// defaultPerm applies to documents that did not exist before the write.
const defaultPerm fs.FileMode = 0644

// LockSuffix is appended to a document path to name its lock file.
const LockSuffix = ".lock"

// DocumentStore reads and writes documents on disk.
type DocumentStore struct{}

// NewDocumentStore creates a file-system document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// Read returns the content of the file at path.
func (s *DocumentStore) Read(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
		}
		return "", err
	}
	return string(data), nil
}

// Write replaces the file at path with content via a temp file and rename.
// An existing file keeps its permissions.
func (s *DocumentStore) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	perm := defaultPerm
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// Exists reports whether a file exists at path.
func (s *DocumentStore) Exists(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Lock takes an exclusive advisory lock on path+LockSuffix without
// blocking. The lock file is removed when the lock is released.
// A missing parent directory is reported as ErrMissingInput.
func (s *DocumentStore) Lock(ctx context.Context, path string) (driven.UnlockFunc, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lockPath := path + LockSuffix
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, defaultPerm)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrMissingInput, path)
		}
		return nil, err
	}

	if err := lockFile(f); err != nil {
		_ = f.Close()
		if errors.Is(err, errWouldBlock) {
			return nil, fmt.Errorf("%w: %s", domain.ErrLocked, path)
		}
		return nil, err
	}

	// The previous holder may have removed the file between our open and
	// our lock, leaving us holding an orphaned inode.
	if !sameFile(f, lockPath) {
		_ = unlockFile(f)
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", domain.ErrLocked, path)
	}

	var once sync.Once
	var unlockErr error
	return func() error {
		once.Do(func() {
			unlockErr = release(f, lockPath)
		})
		return unlockErr
	}, nil
}

func sameFile(f *os.File, path string) bool {
	held, err := f.Stat()
	if err != nil {
		return false
	}
	current, err := os.Stat(path)
	if err != nil {
		return false
	}
	return os.SameFile(held, current)
}
