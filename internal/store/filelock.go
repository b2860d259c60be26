package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// FileLock is an advisory, process-wide lock on a vault's files.
type FileLock struct {
	fl *flock.Flock
}

// AcquireFileLock takes the lock at path without blocking. It fails with
// [ErrVaultInUse] if another process holds it.
func AcquireFileLock(path string) (*FileLock, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create lock dir: %w", err)
		}
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrVaultInUse, path)
	}
	return &FileLock{fl: fl}, nil
}

// Path returns the lock file location.
func (l *FileLock) Path() string {
	return l.fl.Path()
}

// Release unlocks the file. It is safe to call on a nil lock.
func (l *FileLock) Release() error {
	if l == nil {
		return nil
	}
	return l.fl.Unlock()
}
