package listener

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker_SuspendResume(t *testing.T) {
	marker := NewMarker(filepath.Join(t.TempDir(), "home", "listener.suspended"))
	ctx := context.Background()

	suspended, err := marker.IsSuspended()
	require.NoError(t, err)
	assert.False(t, suspended)

	require.NoError(t, marker.Suspend(ctx))
	status, err := marker.Status()
	require.NoError(t, err)
	assert.True(t, status.Suspended)
	assert.Equal(t, os.Getpid(), status.PID)
	assert.WithinDuration(t, time.Now(), status.Since, time.Minute)

	require.NoError(t, marker.Resume(ctx))
	suspended, err = marker.IsSuspended()
	require.NoError(t, err)
	assert.False(t, suspended)
}

func TestMarker_ResumeWithoutMarker(t *testing.T) {
	marker := NewMarker(filepath.Join(t.TempDir(), "listener.suspended"))

	assert.NoError(t, marker.Resume(context.Background()))
}

func TestMarker_ForeignMarkerStillSuspends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listener.suspended")
	require.NoError(t, os.WriteFile(path, []byte("paused by hand"), 0644))

	status, err := NewMarker(path).Status()

	require.NoError(t, err)
	assert.True(t, status.Suspended)
	assert.Zero(t, status.PID)
}

func TestMarker_Watch(t *testing.T) {
	marker := NewMarker(filepath.Join(t.TempDir(), "listener.suspended"))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates := make(chan Status, 8)
	done := make(chan error, 1)
	go func() {
		done <- marker.Watch(ctx, func(s Status) { updates <- s })
	}()

	next := func() Status {
		select {
		case s := <-updates:
			return s
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for marker update")
			return Status{}
		}
	}

	assert.False(t, next().Suspended)

	require.NoError(t, marker.Suspend(context.Background()))
	assert.True(t, next().Suspended)

	require.NoError(t, marker.Resume(context.Background()))
	assert.False(t, next().Suspended)

	cancel()
	require.NoError(t, <-done)
}
