package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// NavigationKeys defines key bindings for moving through the shortcut list
type NavigationKeys struct {
	Down key.Binding
	Up   key.Binding
}

// ShortcutKeys defines key bindings acting on the selected shortcut
type ShortcutKeys struct {
	Edit  key.Binding
	Reset key.Binding
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Navigation  NavigationKeys
	Shortcut    ShortcutKeys
}

// NewKeyMap creates a new KeyMap with all key bindings initialized
func NewKeyMap() KeyMap {
	return KeyMap{
		Application: ApplicationKeys{
			ForceQuit: buildBinding("force_quit"),
			Help:      buildBinding("help"),
			Quit:      buildBinding("quit"),
		},
		Navigation: NavigationKeys{
			Down: buildBinding("down"),
			Up:   buildBinding("up"),
		},
		Shortcut: ShortcutKeys{
			Edit:  buildBinding("edit"),
			Reset: buildBinding("reset"),
		},
	}
}

// ShortHelp implements help.KeyMap for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Shortcut.Edit,
		k.Shortcut.Reset,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigation.Up, k.Navigation.Down},
		{k.Shortcut.Edit, k.Shortcut.Reset},
		{k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}

// buildBinding creates a key.Binding from its key definition
func buildBinding(name string) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	return key.NewBinding(
		key.WithKeys(def.Defaults...),
		key.WithHelp(strings.Join(def.Defaults, "/"), def.Help),
	)
}
