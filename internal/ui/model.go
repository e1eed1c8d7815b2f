package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/services"
	"github.com/renato0307/keycap/internal/theme"
)

type uiState int

const (
	stateList uiState = iota
	stateCapturing
	stateConfirmingReset
	stateHelp
)

// ListenerStatus reports whether the global hotkey listener is suspended
type ListenerStatus interface {
	IsSuspended() (bool, error)
}

// Model is the shortcut list with its capture, reset and help dialogs
type Model struct {
	captureDialog  *Dialog                  // Capture dialog while recording
	devMode        bool                     // Development mode (shows version info in headers)
	err            error                    // Last error, shown until the next action
	height         int
	help           help.Model               // Bottom help bar
	helpScreen     *Dialog                  // Help screen dialog
	keys           KeyMap                   // Keyboard shortcuts
	listener       ListenerStatus           // Listener state shown under the title (may be nil)
	manager        *services.CaptureManager // Capture sessions and resets
	notice         string                   // Last informational message
	outcomes       <-chan services.Outcome  // Results of dispatched requests (may be nil)
	resetConfirmed *bool                    // Reset decision (pointer to persist across updates)
	resetForm      *Dialog                  // Reset confirmation dialog
	resetSlot      domain.SlotName          // Slot being reset
	selected       int
	state          uiState
	width          int
}

// NewModel creates the shortcut list model. outcomes may be nil.
func NewModel(manager *services.CaptureManager, outcomes <-chan services.Outcome, devMode bool) *Model {
	return &Model{
		devMode:  devMode,
		help:     help.New(),
		keys:     NewKeyMap(),
		manager:  manager,
		outcomes: outcomes,
		state:    stateList,
	}
}

// SetListenerStatus makes the list show whether the listener is suspended
func (m *Model) SetListenerStatus(listener ListenerStatus) {
	m.listener = listener
}

func (m *Model) Init() tea.Cmd {
	return waitForOutcome(m.outcomes)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case OutcomeMsg:
		m.handleOutcome(msg.Outcome)
		return m, waitForOutcome(m.outcomes)
	case CaptureFinishedMsg:
		return m.handleCaptureFinished(msg)
	}

	switch m.state {
	case stateList:
		return m.updateList(msg)
	case stateCapturing:
		return m.updateCapturing(msg)
	case stateConfirmingReset:
		return m.updateConfirmingReset(msg)
	case stateHelp:
		return m.updateHelp(msg)
	}
	return m, nil
}

// Teardown cancels a capture left open when the program stops
func (m *Model) Teardown(ctx context.Context) {
	if m.captureDialog == nil {
		return
	}
	if content, ok := m.captureDialog.Content().(*CaptureDialog); ok {
		content.Session().Close(ctx)
	}
	m.captureDialog = nil
	m.state = stateList
}

func (m *Model) selectedSlot() *services.Slot {
	slots := m.manager.Shortcuts().Slots()
	if len(slots) == 0 {
		return nil
	}
	if m.selected >= len(slots) {
		m.selected = len(slots) - 1
	}
	return slots[m.selected]
}

func (m *Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit, m.keys.Application.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Application.Help):
		m.helpScreen = NewDialog("Keyboard shortcuts", NewHelpScreen(m.keys), m.devMode)
		m.state = stateHelp
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Navigation.Down):
		if m.selected < len(m.manager.Shortcuts().Slots())-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Shortcut.Edit):
		return m.startCapture()

	case key.Matches(keyMsg, m.keys.Shortcut.Reset):
		return m.confirmReset()
	}

	return m, nil
}

func (m *Model) startCapture() (tea.Model, tea.Cmd) {
	slot := m.selectedSlot()
	if slot == nil {
		return m, nil
	}

	m.err = nil
	m.notice = ""
	session, err := m.manager.Start(context.Background(), slot.Name())
	if err != nil {
		logging.Logger.Warn("Could not start capture", "slot", slot.Name(), "error", err)
		m.err = err
		return m, nil
	}

	m.captureDialog = NewDialog("Record shortcut", NewCaptureDialog(session), m.devMode)
	m.state = stateCapturing
	return m, m.captureDialog.Init()
}

func (m *Model) updateCapturing(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.captureDialog == nil {
		m.state = stateList
		return m, nil
	}

	updated, cmd := m.captureDialog.Update(msg)
	m.captureDialog = updated.(*Dialog)
	return m, cmd
}

func (m *Model) handleCaptureFinished(msg CaptureFinishedMsg) (tea.Model, tea.Cmd) {
	m.captureDialog = nil
	m.state = stateList

	if msg.Err != nil {
		m.err = msg.Err
		return m, nil
	}

	switch msg.Step.Result {
	case domain.CaptureCommitted:
		m.notice = fmt.Sprintf("Saving %s as %s", msg.Slot, msg.Step.Display)
	case domain.CaptureEmpty:
		m.notice = "No keys recorded, shortcut unchanged"
	case domain.CaptureCancelled:
		m.notice = "Recording cancelled"
	}
	return m, nil
}

func (m *Model) handleOutcome(outcome services.Outcome) {
	if !outcome.OK() {
		switch outcome.Kind {
		case services.RequestPersist:
			m.err = fmt.Errorf("failed to save shortcut, the previous one is still active: %w", outcome.Err)
		default:
			m.err = fmt.Errorf("listener %s failed: %w", outcome.Kind, outcome.Err)
		}
		return
	}

	if outcome.Kind == services.RequestPersist {
		m.err = nil
		m.notice = fmt.Sprintf("Saved %s: %s", outcome.Slot, outcome.Binding)
	}
}

func (m *Model) confirmReset() (tea.Model, tea.Cmd) {
	slot := m.selectedSlot()
	if slot == nil {
		return m, nil
	}

	confirmed := true
	m.resetConfirmed = &confirmed
	m.resetSlot = slot.Name()
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Reset %s to %s?", slot.Title(), slot.Default())).
				Description(fmt.Sprintf("Current shortcut: %s", slot.Current())).
				Value(m.resetConfirmed).
				Affirmative("Reset").
				Negative("Keep"),
		),
	)
	m.resetForm = NewDialog("Reset shortcut", form, m.devMode)
	m.state = stateConfirmingReset
	return m, m.resetForm.Init()
}

func (m *Model) updateConfirmingReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || key.Matches(keyMsg, m.keys.Application.ForceQuit) {
			m.clearReset()
			return m, nil
		}
	}

	if m.resetForm == nil {
		m.clearReset()
		return m, nil
	}

	updated, cmd := m.resetForm.Update(msg)
	m.resetForm = updated.(*Dialog)

	if form, ok := m.resetForm.Content().(*huh.Form); ok && form.State == huh.StateCompleted {
		confirmed := *m.resetConfirmed
		slot := m.resetSlot
		m.clearReset()

		if confirmed {
			m.reset(slot)
		}
		return m, nil
	}

	return m, cmd
}

func (m *Model) reset(slot domain.SlotName) {
	binding, err := m.manager.Reset(context.Background(), slot)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.notice = fmt.Sprintf("Reset %s to %s", slot, binding)
}

func (m *Model) clearReset() {
	m.resetConfirmed = nil
	m.resetForm = nil
	m.resetSlot = ""
	m.state = stateList
}

func (m *Model) updateHelp(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.helpScreen.Update(msg)
	m.helpScreen = updated.(*Dialog)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.helpScreen = nil
		m.state = stateList
	}
	return m, cmd
}

func (m *Model) View() string {
	switch m.state {
	case stateCapturing:
		if m.captureDialog != nil {
			return m.captureDialog.View()
		}
	case stateConfirmingReset:
		if m.resetForm != nil {
			return m.resetForm.View()
		}
	case stateHelp:
		if m.helpScreen != nil {
			return m.helpScreen.View()
		}
	}
	return m.listView()
}

func (m *Model) listView() string {
	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, ""))
	b.WriteString(theme.TitleStyle.Render("Shortcuts") + "\n")
	if line := m.listenerLine(); line != "" {
		b.WriteString(line + "\n\n")
	}

	slots := m.manager.Shortcuts().Slots()
	titleWidth := 0
	for _, slot := range slots {
		titleWidth = max(titleWidth, lipgloss.Width(slot.Title()))
	}

	for i, slot := range slots {
		title := fmt.Sprintf("%-*s", titleWidth, slot.Title())
		cursor := "  "
		if i == m.selected {
			cursor = "> "
			title = theme.SelectedStyle.Render(title)
		} else {
			title = theme.NormalStyle.Render(title)
		}

		badge := theme.DefaultBadgeStyle.Render("default")
		if !slot.IsDefault() {
			badge = theme.CustomBadgeStyle.Render("custom")
		}

		b.WriteString(cursor + title + "  " + renderBinding(slot.Current(), "not set") + "  " + badge + "\n")
		b.WriteString("  " + theme.SlotHelpStyle.Render(slot.Help()) + "\n")
	}

	b.WriteString("\n")
	switch {
	case m.err != nil:
		b.WriteString(theme.ErrorStyle.Width(max(m.width, 40)).Render("Error: " + m.err.Error()))
	case m.notice != "":
		b.WriteString(theme.SavedStyle.Render(m.notice))
	default:
		b.WriteString(" ")
	}
	b.WriteString("\n")

	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *Model) listenerLine() string {
	if m.listener == nil {
		return ""
	}
	suspended, err := m.listener.IsSuspended()
	if err != nil {
		logging.Logger.Debug("Failed to read listener state", "error", err)
		return ""
	}
	if suspended {
		return theme.ListenerSuspendedStyle.Render("Listener suspended")
	}
	return theme.ListenerRunningStyle.Render("Listener running")
}
