// Package listener controls the global hotkey listener through a marker
// file. While the marker exists the listener ignores its shortcuts.
package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/ports"
)

// Status describes the marker
type Status struct {
	PID       int       `json:"pid,omitempty"`
	Since     time.Time `json:"suspended_at,omitempty"`
	Suspended bool      `json:"-"`
}

// Marker implements ports.ListenerController with a marker file
type Marker struct {
	path string
}

// Verify interface compliance at compile time
var _ ports.ListenerController = (*Marker)(nil)

// NewMarker creates a Marker for the file at path
func NewMarker(path string) *Marker {
	return &Marker{path: filepath.Clean(path)}
}

// Path returns the marker file path
func (m *Marker) Path() string {
	return m.path
}

// Suspend writes the marker. Suspending twice refreshes it.
func (m *Marker) Suspend(ctx context.Context) error {
	if err := os.MkdirAll(filepath.Dir(m.path), 0755); err != nil {
		return fmt.Errorf("failed to create marker directory: %w", err)
	}

	data, err := json.Marshal(Status{PID: os.Getpid(), Since: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode marker: %w", err)
	}
	if err := os.WriteFile(m.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write marker: %w", err)
	}

	logging.Logger.Debug("Listener suspended", "marker", m.path)
	return nil
}

// Resume removes the marker. Resuming a running listener is not an error.
func (m *Marker) Resume(ctx context.Context) error {
	if err := os.Remove(m.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove marker: %w", err)
	}

	logging.Logger.Debug("Listener resumed", "marker", m.path)
	return nil
}

// Status reads the marker
func (m *Marker) Status() (Status, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Status{}, nil
		}
		return Status{}, fmt.Errorf("failed to read marker: %w", err)
	}

	status := Status{Suspended: true}
	if len(data) > 0 {
		// A marker written by something else still suspends the listener
		if err := json.Unmarshal(data, &status); err != nil {
			logging.Logger.Warn("Unreadable listener marker", "marker", m.path, "error", err)
		}
	}
	status.Suspended = true
	return status, nil
}

// IsSuspended reports whether the marker exists
func (m *Marker) IsSuspended() (bool, error) {
	status, err := m.Status()
	return status.Suspended, err
}

// Watch calls fn with the current status and again every time the listener
// flips between suspended and running, until ctx is done
func (m *Marker) Watch(ctx context.Context, fn func(Status)) error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create marker directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	defer watcher.Close()

	// The marker comes and goes, so watch its directory
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	last, err := m.Status()
	if err != nil {
		return err
	}
	fn(last)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != m.path {
				continue
			}

			status, err := m.Status()
			if err != nil {
				logging.Logger.Warn("Failed to read marker after change", "op", event.Op.String(), "error", err)
				continue
			}
			if status.Suspended == last.Suspended {
				continue
			}
			last = status
			fn(status)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger.Error("fsnotify watcher error", "error", err)
		}
	}
}
