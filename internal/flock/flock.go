package flock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrLocked is returned by Acquire when another holder owns the lock.
var ErrLocked = errors.New("lock held by another process")

// Acquire takes an exclusive, non-blocking lock on path, creating the file if needed.
// The returned release func unlocks and closes the lock file but never removes
// it, so every holder locks the same inode.
func Acquire(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600) // #nosec G304 -- path built by caller from key dir
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	if err := Exclusive(f.Fd()); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}

	return func() {
		_ = Unlock(f.Fd())
		_ = f.Close()
	}, nil
}
