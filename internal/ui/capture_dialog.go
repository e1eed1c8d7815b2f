package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/services"
	"github.com/renato0307/keycap/internal/theme"
)

// CaptureDialog records a new binding for one slot. Every key message is
// forwarded to the capture session; enter saves and escape cancels.
type CaptureDialog struct {
	Completed bool
	err       error
	session   *services.CaptureSession
	step      services.CaptureStep
}

// NewCaptureDialog creates a dialog driving an already started session
func NewCaptureDialog(session *services.CaptureSession) *CaptureDialog {
	return &CaptureDialog{session: session}
}

func (d *CaptureDialog) Init() tea.Cmd {
	return nil
}

func (d *CaptureDialog) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || d.Completed {
		return d, nil
	}

	for _, raw := range RawKeys(keyMsg) {
		step, err := d.session.HandleKey(context.Background(), raw)
		if err != nil {
			logging.Logger.Warn("Capture key rejected", "session_id", d.session.ID(), "raw", raw, "error", err)
			d.err = err
			d.Completed = true
			break
		}
		d.step = step
		if step.Done() {
			d.Completed = true
			break
		}
	}

	if d.Completed {
		return d, func() tea.Msg {
			return CaptureFinishedMsg{Err: d.err, Slot: d.session.Slot().Name(), Step: d.step}
		}
	}
	return d, nil
}

func (d *CaptureDialog) View() string {
	slot := d.session.Slot()

	var b strings.Builder
	b.WriteString(theme.RecordingStyle.Render("● recording") + "  " + theme.NormalStyle.Render(slot.Title()) + "\n\n")
	b.WriteString(theme.SlotHelpStyle.Render("current  ") + renderBinding(slot.Current(), "none") + "\n")
	b.WriteString(theme.SlotHelpStyle.Render("new      ") + renderBinding(d.session.Display(), "press the keys of the new shortcut") + "\n")

	box := theme.CaptureBoxStyle.Render(b.String())
	return box + "\n" + theme.HelpStyle.Render("enter to save • esc to cancel")
}

// Session returns the capture session driven by the dialog
func (d *CaptureDialog) Session() *services.CaptureSession {
	return d.session
}

// Result returns the last step and the error that ended the dialog, if any
func (d *CaptureDialog) Result() (services.CaptureStep, error) {
	return d.step, d.err
}
