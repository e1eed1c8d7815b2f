package paths

import (
	"os"
	"path/filepath"
)

// GetKeycapHome returns KEYCAP_HOME or ~/.keycap default
func GetKeycapHome() string {
	keycapHome := os.Getenv("KEYCAP_HOME")
	if keycapHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".keycap"
		}
		return filepath.Join(homeDir, ".keycap")
	}
	return ExpandPath(keycapHome)
}

// GetDBPath returns $KEYCAP_HOME/shortcuts.db
func GetDBPath() string {
	return filepath.Join(GetKeycapHome(), "shortcuts.db")
}

// GetSettingsPath returns $KEYCAP_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetKeycapHome(), "settings.json")
}

// GetListenerMarkerPath returns $KEYCAP_HOME/listener.suspended
func GetListenerMarkerPath() string {
	return filepath.Join(GetKeycapHome(), "listener.suspended")
}

// GetCaptureLockPath returns $KEYCAP_HOME/capture.lock
func GetCaptureLockPath() string {
	return filepath.Join(GetKeycapHome(), "capture.lock")
}

// GetSSHDir returns $KEYCAP_HOME/ssh
func GetSSHDir() string {
	return filepath.Join(GetKeycapHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
