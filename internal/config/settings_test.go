package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/domain"
)

func TestLoadSettings_MissingFileReturnsEmpty(t *testing.T) {
	t.Setenv("KEYCAP_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_ParsesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KEYCAP_HOME", home)
	content := `{
		"debug": true,
		"store": "settings",
		"shortcuts": {"push_to_talk": "ctrl+alt+r"}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	assert.Equal(t, StoreSettings, settings.Store)
	assert.Equal(t, "ctrl+alt+r", settings.Shortcuts["push_to_talk"])
}

func TestLoadSettings_MalformedShortcutKeepsOtherSettings(t *testing.T) {
	tests := []struct {
		name      string
		shortcuts string
		expected  ShortcutsConfig
	}{
		{"non-string value", `{"push_to_talk": 42, "paste_last_transcript": "alt+p"}`, ShortcutsConfig{"paste_last_transcript": "alt+p"}},
		{"object value", `{"push_to_talk": {"keys": ["ctrl"]}}`, ShortcutsConfig{}},
		{"not an object", `"ctrl+space"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			t.Setenv("KEYCAP_HOME", home)
			content := `{"store": "settings", "db_path": "/tmp/keycap.db", "shortcuts": ` + tt.shortcuts + `}`
			require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(content), 0644))

			settings, err := LoadSettings()

			require.NoError(t, err)
			assert.Equal(t, StoreSettings, settings.Store)
			assert.Equal(t, "/tmp/keycap.db", settings.DBPath)
			assert.Equal(t, tt.expected, settings.Shortcuts)
		})
	}
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("KEYCAP_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestResolveStore(t *testing.T) {
	tests := []struct {
		name     string
		settings *Settings
		expected string
		wantErr  bool
	}{
		{"nil settings", nil, StoreSQLite, false},
		{"empty store", &Settings{}, StoreSQLite, false},
		{"settings store", &Settings{Store: StoreSettings}, StoreSettings, false},
		{"unknown store", &Settings{Store: "redis"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := tt.settings.ResolveStore()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, store)
		})
	}
}

func TestShortcutsConfig_Validate(t *testing.T) {
	validNames := domain.SlotNames()

	tests := []struct {
		name      string
		shortcuts ShortcutsConfig
		errText   string
	}{
		{"nil config", nil, ""},
		{"valid bindings", ShortcutsConfig{"push_to_talk": "ctrl+space", "paste_last_transcript": "Shift+Control+V"}, ""},
		{"unknown slot", ShortcutsConfig{"open_browser": "ctrl+b"}, "unknown shortcut 'open_browser'"},
		{"invalid binding", ShortcutsConfig{"push_to_talk": "ctrl+enter"}, "shortcut 'push_to_talk'"},
		{"duplicate after normalization", ShortcutsConfig{"push_to_talk": "ctrl+space", "paste_last_transcript": "Space+Control"}, "is assigned to both"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shortcuts.Validate(validNames)
			if tt.errText == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errText)
		})
	}
}

func TestGetSettingsExample_CoversAllFields(t *testing.T) {
	example := GetSettingsExample()

	for _, key := range []string{"db_path", "debug", "listener_marker", "max_log_files", "serve_host", "serve_port", "shortcuts", "store"} {
		assert.Contains(t, example, key)
	}
	assert.Equal(t, DefaultStore, example["store"])
}
