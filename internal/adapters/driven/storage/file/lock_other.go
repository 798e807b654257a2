//go:build !unix && !windows

package file

import (
	"errors"
	"os"
)

// Platforms without advisory locks get an always-granted lock.
var errWouldBlock = errors.New("lock unavailable")

func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }

func release(f *os.File, path string) error {
	return errors.Join(f.Close(), os.Remove(path))
}
