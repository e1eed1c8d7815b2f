package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keycap/internal/theme"
)

// HelpScreen lists every key binding of the shortcut list and of the
// capture dialog. Any key closes it.
type HelpScreen struct {
	Completed bool
	content   string
}

// NewHelpScreen creates a help screen for keys
func NewHelpScreen(keys KeyMap) *HelpScreen {
	return &HelpScreen{content: buildHelpContent(keys)}
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderKeyBinding(b key.Binding) string {
	return renderShortcut(b.Help().Key, b.Help().Desc)
}

func buildHelpContent(keys KeyMap) string {
	var content string

	content += theme.HelpGroupStyle.Render("Navigation") + "\n"
	content += renderKeyBinding(keys.Navigation.Up)
	content += renderKeyBinding(keys.Navigation.Down)

	content += "\n" + theme.HelpGroupStyle.Render("Shortcuts") + "\n"
	content += renderKeyBinding(keys.Shortcut.Edit)
	content += renderKeyBinding(keys.Shortcut.Reset)

	// Fixed: these drive the capture session and are never part of a shortcut
	content += "\n" + theme.HelpGroupStyle.Render("While recording") + "\n"
	content += renderShortcut("any keys", "add to the new shortcut")
	content += renderShortcut("enter", "save the keys pressed so far")
	content += renderShortcut("esc", "cancel and keep the current shortcut")

	content += "\n" + theme.HelpGroupStyle.Render("Application") + "\n"
	content += renderKeyBinding(keys.Application.Help)
	content += renderKeyBinding(keys.Application.Quit)
	content += renderKeyBinding(keys.Application.ForceQuit)

	return content
}

func (h *HelpScreen) Init() tea.Cmd {
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		h.Completed = true
	}
	return h, nil
}

func (h *HelpScreen) View() string {
	return h.content + "\n" + theme.HelpStyle.Render("press any key to go back")
}
