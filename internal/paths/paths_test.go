package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetKeycapHome_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("KEYCAP_HOME", dir)

	assert.Equal(t, dir, GetKeycapHome())
	assert.Equal(t, filepath.Join(dir, "shortcuts.db"), GetDBPath())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
	assert.Equal(t, filepath.Join(dir, "listener.suspended"), GetListenerMarkerPath())
	assert.Equal(t, filepath.Join(dir, "capture.lock"), GetCaptureLockPath())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", homeDir},
		{"~/keycap", filepath.Join(homeDir, "keycap")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
