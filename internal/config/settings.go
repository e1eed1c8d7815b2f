package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/paths"
)

// Binding store backends
const (
	StoreSettings = "settings" // shortcuts kept inside settings.json
	StoreSQLite   = "sqlite"   // shortcuts kept in $KEYCAP_HOME/shortcuts.db
)

// DefaultStore is the binding store used when nothing is configured
const DefaultStore = StoreSQLite

// Default SSH console address
const (
	DefaultServeHost = "localhost"
	DefaultServePort = "23235"
)

// ShortcutsConfig holds persisted shortcut bindings as a map.
// Keys are slot names (e.g., "push_to_talk"), values are bindings ("ctrl+space").
type ShortcutsConfig map[string]string

// UnmarshalJSON keeps the string entries and skips everything else, so one
// malformed shortcut cannot discard the rest of settings.json. The binding
// store reports the skipped slots when it loads them.
func (s *ShortcutsConfig) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		*s = nil
		return nil
	}

	result := make(ShortcutsConfig, len(raw))
	for name, value := range raw {
		var binding string
		if err := json.Unmarshal(value, &binding); err != nil {
			continue
		}
		result[name] = binding
	}
	*s = result
	return nil
}

// Validate checks for configuration errors in shortcut bindings.
// The validNames parameter should come from domain.SlotNames().
func (s ShortcutsConfig) Validate(validNames []string) error {
	if s == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	// Track canonical bindings to detect two slots sharing one shortcut
	bindingToSlot := make(map[domain.Binding]string)

	for name, value := range s {
		if !validSet[name] {
			return fmt.Errorf("unknown shortcut '%s'", name)
		}

		binding, err := domain.ParseBinding(value)
		if err != nil {
			return fmt.Errorf("shortcut '%s': %w", name, err)
		}

		if existing, found := bindingToSlot[binding]; found {
			return fmt.Errorf("shortcut '%s' is assigned to both '%s' and '%s'", binding, existing, name)
		}
		bindingToSlot[binding] = name
	}

	return nil
}

// Settings represents the structure of $KEYCAP_HOME/settings.json
type Settings struct {
	DBPath         string          `json:"db_path,omitempty"`
	Debug          *bool           `json:"debug,omitempty"`
	ListenerMarker string          `json:"listener_marker,omitempty"`
	MaxLogFiles    *int            `json:"max_log_files,omitempty"`
	ServeHost      string          `json:"serve_host,omitempty"`
	ServePort      string          `json:"serve_port,omitempty"`
	Shortcuts      ShortcutsConfig `json:"shortcuts,omitempty"`
	Store          string          `json:"store,omitempty"`
}

// ResolveStore returns the configured store backend with the default applied
func (s *Settings) ResolveStore() (string, error) {
	if s == nil || s.Store == "" {
		return DefaultStore, nil
	}
	switch s.Store {
	case StoreSQLite, StoreSettings:
		return s.Store, nil
	default:
		return "", fmt.Errorf("unknown store '%s' (expected %s or %s)", s.Store, StoreSQLite, StoreSettings)
	}
}

// ResolveDBPath returns the database path with the default applied
func (s *Settings) ResolveDBPath() string {
	if s == nil || s.DBPath == "" {
		return paths.GetDBPath()
	}
	return paths.ExpandPath(s.DBPath)
}

// ResolveListenerMarker returns the listener marker path with the default applied
func (s *Settings) ResolveListenerMarker() string {
	if s == nil || s.ListenerMarker == "" {
		return paths.GetListenerMarkerPath()
	}
	return paths.ExpandPath(s.ListenerMarker)
}

// LoadSettings loads settings from $KEYCAP_HOME/settings.json (or ~/.keycap/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := paths.GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}
