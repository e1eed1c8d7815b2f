// Package lock provides a system-wide recorder lock backed by a lock file
package lock

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/ports"
)

// File implements ports.RecorderLock with an exclusive, non-blocking lock
// on a file. The lock dies with the process that holds it.
type File struct {
	path string

	mu   sync.Mutex
	file *os.File
}

// Verify interface compliance at compile time
var _ ports.RecorderLock = (*File)(nil)

// NewFile creates a File lock for path
func NewFile(path string) *File {
	return &File{path: path}
}

// TryAcquire implements ports.RecorderLock.TryAcquire.
// Acquiring a lock this File already holds returns false.
func (l *File) TryAcquire() (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return false, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return false, fmt.Errorf("failed to open lock file: %w", err)
	}

	acquired, err := tryLockFile(file)
	if err != nil || !acquired {
		file.Close()
		if err != nil {
			return false, fmt.Errorf("failed to lock %s: %w", l.path, err)
		}
		logging.Logger.Debug("Recorder lock is held elsewhere", "path", l.path)
		return false, nil
	}

	// Owner pid helps when someone inspects a stuck lock
	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	}

	l.file = file
	logging.Logger.Debug("Recorder lock acquired", "path", l.path)
	return true, nil
}

// Release implements ports.RecorderLock.Release
func (l *File) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}

	unlockErr := unlockFile(l.file)
	closeErr := l.file.Close()
	l.file = nil

	if unlockErr != nil {
		return fmt.Errorf("failed to unlock %s: %w", l.path, unlockErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close lock file: %w", closeErr)
	}

	logging.Logger.Debug("Recorder lock released", "path", l.path)
	return nil
}
