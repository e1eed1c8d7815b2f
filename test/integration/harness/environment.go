package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own KEYCAP_HOME.
type TestEnvironment struct {
	KeycapHome string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp KEYCAP_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		KeycapHome: tb.TempDir(),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out KEYCAP_* variables and points KEYCAP_HOME at the temp directory.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+1+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "KEYCAP_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env, "KEYCAP_HOME="+e.KeycapHome)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.KeycapHome, "shortcuts.db")
}

// SettingsPath returns the path to the test settings.json.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.KeycapHome, "settings.json")
}

// MarkerPath returns the path of the listener suspend marker.
func (e *TestEnvironment) MarkerPath() string {
	return filepath.Join(e.KeycapHome, "listener.suspended")
}

// WriteSettings writes settings.json with the given content.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings.json: %v", err)
	}
}

// ReadSettings returns the content of settings.json.
func (e *TestEnvironment) ReadSettings() string {
	e.tb.Helper()
	data, err := os.ReadFile(e.SettingsPath())
	if err != nil {
		e.tb.Fatalf("Failed to read settings.json: %v", err)
	}
	return string(data)
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}
