package lock

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_ExcludesSecondHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.lock")
	first := NewFile(path)
	second := NewFile(path)

	acquired, err := first.TryAcquire()
	require.NoError(t, err)
	assert.True(t, acquired)

	acquired, err = second.TryAcquire()
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, first.Release())

	acquired, err = second.TryAcquire()
	require.NoError(t, err)
	assert.True(t, acquired)
	require.NoError(t, second.Release())
}

func TestFile_ReacquireWhileHeld(t *testing.T) {
	lock := NewFile(filepath.Join(t.TempDir(), "nested", "capture.lock"))

	acquired, err := lock.TryAcquire()
	require.NoError(t, err)
	require.True(t, acquired)

	acquired, err = lock.TryAcquire()
	require.NoError(t, err)
	assert.False(t, acquired)

	require.NoError(t, lock.Release())
}

func TestFile_ReleaseWithoutAcquire(t *testing.T) {
	lock := NewFile(filepath.Join(t.TempDir(), "capture.lock"))

	assert.NoError(t, lock.Release())
	assert.NoError(t, lock.Release())
}
