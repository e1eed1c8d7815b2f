package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/renato0307/keycap/internal/domain"
)

func TestRawKeys(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []string
	}{
		{"lower letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}}, []string{"a"}},
		{"upper letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'A'}}, []string{"Shift", "a"}},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, []string{"Alt", "x"}},
		{"plus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}}, []string{"+"}},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlA}, []string{"Control", "a"}},
		{"ctrl space", tea.KeyMsg{Type: tea.KeyCtrlAt}, []string{"Control", " "}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []string{"Enter"}},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, []string{"Escape"}},
		{"alt enter", tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, []string{"Alt", "Enter"}},
		{"ctrl shift up", tea.KeyMsg{Type: tea.KeyCtrlShiftUp}, []string{"Control", "Shift", "ArrowUp"}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, []string{"Shift", "Tab"}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, []string{"PageDown"}},
		{"function key", tea.KeyMsg{Type: tea.KeyF5}, []string{"F5"}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []string{"Delete"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RawKeys(tt.msg))
		})
	}
}

func TestRawKeys_SpaceNormalizesToSpace(t *testing.T) {
	raw := RawKeys(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.Len(t, raw, 1)
	assert.Equal(t, domain.KeyToken("space"), domain.Normalize(raw[0]))
}

func TestRawKeys_NormalizeRoundTrip(t *testing.T) {
	tests := []struct {
		msg      tea.KeyMsg
		expected domain.Binding
	}{
		{tea.KeyMsg{Type: tea.KeyCtrlShiftLeft}, "ctrl+shift+arrowleft"},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Z'}, Alt: true}, "alt+shift+z"},
		{tea.KeyMsg{Type: tea.KeyF12}, "f12"},
		{tea.KeyMsg{Type: tea.KeyCtrlAt}, "ctrl+space"},
	}

	for _, tt := range tests {
		t.Run(string(tt.expected), func(t *testing.T) {
			a := domain.NewAssembler()
			var binding domain.Binding
			for _, raw := range RawKeys(tt.msg) {
				binding = a.Press(domain.Normalize(raw))
			}
			assert.Equal(t, tt.expected, binding)
		})
	}
}
