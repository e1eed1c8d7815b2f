// Package settingsfile stores shortcut bindings inside settings.json,
// next to the user's other settings.
package settingsfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/ports"
)

// shortcutsKey is the settings.json object holding the bindings
const shortcutsKey = "shortcuts"

// Store implements ports.BindingStore on top of a JSON settings file.
// Only the "shortcuts" object is touched; every other key is preserved.
type Store struct {
	mu   sync.Mutex
	path string
}

// Verify interface compliance at compile time
var _ ports.BindingStore = (*Store)(nil)

// NewStore creates a Store for the settings file at path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Close implements ports.BindingStore. There is nothing to release.
func (s *Store) Close() error {
	return nil
}

// GetBinding implements BindingReader.GetBinding.
// Values are returned as written; callers validate them.
func (s *Store) GetBinding(ctx context.Context, slot domain.SlotName) (domain.Binding, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", false, err
	}

	result := gjson.GetBytes(data, shortcutPath(slot))
	if !result.Exists() {
		return "", false, nil
	}
	if result.Type != gjson.String {
		return "", false, fmt.Errorf("%w: shortcut %s is not a string", domain.ErrInvalidBinding, slot)
	}
	return domain.Binding(result.String()), true, nil
}

// SetBinding implements BindingWriter.SetBinding
func (s *Store) SetBinding(ctx context.Context, slot domain.SlotName, binding domain.Binding) (domain.Binding, error) {
	canonical, err := domain.ParseBinding(string(binding))
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		data = []byte("{}")
	}

	updated, err := sjson.SetBytes(data, shortcutPath(slot), string(canonical))
	if err != nil {
		return "", fmt.Errorf("failed to update settings: %w", err)
	}

	if err := writeAtomic(s.path, pretty.Pretty(updated)); err != nil {
		return "", fmt.Errorf("failed to write settings: %w", err)
	}

	logging.Logger.Debug("Stored shortcut in settings file", "path", s.path, "slot", slot, "binding", canonical)
	return canonical, nil
}

// ListBindings returns every string binding under "shortcuts"
func (s *Store) ListBindings(ctx context.Context) (map[domain.SlotName]domain.Binding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}

	result := make(map[domain.SlotName]domain.Binding)
	gjson.GetBytes(data, shortcutsKey).ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.String {
			result[domain.SlotName(key.String())] = domain.Binding(value.String())
		}
		return true
	})
	return result, nil
}

// read returns the file contents, or nil when the file does not exist
func (s *Store) read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}
	if len(data) > 0 && !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid settings.json: %s", s.path)
	}
	return data, nil
}

func shortcutPath(slot domain.SlotName) string {
	return shortcutsKey + "." + string(slot)
}
