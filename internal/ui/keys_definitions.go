package ui

import "sync"

// KeyDefinition defines the metadata for a key binding of the shortcut list.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains every key binding of the shortcut list
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?", "h"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next shortcut"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous shortcut"},

	// Shortcut keys
	{Name: "edit", Defaults: []string{"enter", "e"}, Help: "record a new shortcut"},
	{Name: "reset", Defaults: []string{"r"}, Help: "reset shortcut to default"},
}

var (
	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once
)

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}
