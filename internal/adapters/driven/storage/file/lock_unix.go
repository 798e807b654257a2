//go:build unix

package file

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

var errWouldBlock = unix.EWOULDBLOCK

func lockFile(f *os.File) error {
	for {
		err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB)
		if !errors.Is(err, unix.EINTR) {
			return err
		}
	}
}

func unlockFile(f *os.File) error {
	return unix.Flock(int(f.Fd()), unix.LOCK_UN)
}

// release removes the lock file while still holding the lock, then unlocks.
func release(f *os.File, path string) error {
	removeErr := os.Remove(path)
	unlockErr := unlockFile(f)
	closeErr := f.Close()
	return errors.Join(removeErr, unlockErr, closeErr)
}
