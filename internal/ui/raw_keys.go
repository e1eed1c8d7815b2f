package ui

import (
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// terminalKeyNames maps bubbletea key names to the raw key identifiers
// understood by domain.Normalize
var terminalKeyNames = map[string]string{
	" ":         " ",
	"backspace": "Backspace",
	"delete":    "Delete",
	"down":      "ArrowDown",
	"end":       "End",
	"enter":     "Enter",
	"esc":       "Escape",
	"home":      "Home",
	"insert":    "Insert",
	"left":      "ArrowLeft",
	"pgdown":    "PageDown",
	"pgup":      "PageUp",
	"right":     "ArrowRight",
	"space":     " ",
	"tab":       "Tab",
	"up":        "ArrowUp",
}

// modifierPrefixes are the modifier prefixes bubbletea puts in key names
var modifierPrefixes = []struct {
	prefix string
	raw    string
}{
	{"ctrl+", "Control"},
	{"alt+", "Alt"},
	{"shift+", "Shift"},
}

// RawKeys translates one terminal key message into the raw key-down events
// it stands for, modifiers first. A terminal reports a chord as a single
// message, so "ctrl+shift+up" becomes Control, Shift, ArrowUp.
func RawKeys(msg tea.KeyMsg) []string {
	if msg.Type == tea.KeyRunes {
		var raw []string
		if msg.Alt {
			raw = append(raw, "Alt")
		}
		for _, r := range msg.Runes {
			raw = append(raw, runeKeys(r)...)
		}
		return raw
	}

	// Terminals send NUL for ctrl+space
	if msg.Type == tea.KeyCtrlAt {
		return []string{"Control", " "}
	}

	name := msg.String()
	var raw []string
	for {
		matched := false
		for _, m := range modifierPrefixes {
			if rest, ok := strings.CutPrefix(name, m.prefix); ok && rest != "" {
				raw = append(raw, m.raw)
				name = rest
				matched = true
				break
			}
		}
		if !matched {
			break
		}
	}

	return append(raw, keyName(name)...)
}

func keyName(name string) []string {
	if raw, ok := terminalKeyNames[name]; ok {
		return []string{raw}
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return runeKeys(r)
	}
	if len(name) > 1 && name[0] == 'f' && strings.Trim(name[1:], "0123456789") == "" {
		return []string{"F" + name[1:]}
	}
	return []string{name}
}

// runeKeys returns the raw keys for a typed character. Upper-case letters
// imply Shift.
func runeKeys(r rune) []string {
	if unicode.IsUpper(r) {
		return []string{"Shift", string(unicode.ToLower(r))}
	}
	return []string{string(r)}
}
