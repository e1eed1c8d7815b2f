package cmd

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/services"
	"github.com/renato0307/keycap/internal/ui"
)

// errCaptureUnfinished is returned when scripted keys end without enter or escape
var errCaptureUnfinished = errors.New("capture did not finish: end the key list with Enter or Escape")

// ShortcutsCaptureCmd records a shortcut, interactively or from a key list
type ShortcutsCaptureCmd struct {
	Name string   `arg:"" help:"Shortcut name (${slots})" enum:"${slots}"`
	Keys []string `help:"Raw key identifiers to feed instead of reading the terminal (e.g. Control,Shift,a,Enter)" sep:","`
}

// Run executes the capture command
func (s *ShortcutsCaptureCmd) Run(cli *CLI) error {
	dispatcher := services.NewInlineDispatcher()
	manager := cli.Container.NewCaptureManager(dispatcher)

	session, err := manager.Start(context.Background(), domain.SlotName(s.Name))
	if err != nil {
		return fmt.Errorf("failed to start capture: %w", err)
	}

	var step services.CaptureStep
	if len(s.Keys) > 0 {
		step, err = feedKeys(context.Background(), session, s.Keys)
	} else {
		step, err = runCaptureDialog(session)
	}
	if err != nil {
		return err
	}
	if err := firstFailure(dispatcher.Outcomes()); err != nil {
		return fmt.Errorf("failed to save shortcut, '%s' is still %s: %w", s.Name, session.Slot().Current(), err)
	}

	switch step.Result {
	case domain.CaptureCommitted:
		fmt.Printf("Set '%s' to: %s\n", s.Name, session.Slot().Current())
	case domain.CaptureEmpty:
		fmt.Printf("No keys recorded, '%s' is still %s\n", s.Name, session.Slot().Current())
	case domain.CaptureCancelled:
		fmt.Printf("Cancelled, '%s' is still %s\n", s.Name, session.Slot().Current())
	}
	return nil
}

// feedKeys drives a session with raw key identifiers. The session is
// cancelled when the keys run out before enter or escape.
func feedKeys(ctx context.Context, session *services.CaptureSession, keys []string) (services.CaptureStep, error) {
	for _, raw := range keys {
		step, err := session.HandleKey(ctx, raw)
		if err != nil {
			return step, err
		}
		if step.Done() {
			return step, nil
		}
	}

	logging.Logger.Warn("Scripted capture ended while recording", "session_id", session.ID(), "held", session.Display())
	session.Close(ctx)
	return services.CaptureStep{}, errCaptureUnfinished
}

// captureModel runs a capture dialog as a standalone program
type captureModel struct {
	dialog   *ui.CaptureDialog
	finished *ui.CaptureFinishedMsg
}

func (m *captureModel) Init() tea.Cmd {
	return m.dialog.Init()
}

func (m *captureModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if finished, ok := msg.(ui.CaptureFinishedMsg); ok {
		m.finished = &finished
		return m, tea.Quit
	}
	_, cmd := m.dialog.Update(msg)
	return m, cmd
}

func (m *captureModel) View() string {
	if m.finished != nil {
		return ""
	}
	return m.dialog.View() + "\n"
}

func runCaptureDialog(session *services.CaptureSession) (services.CaptureStep, error) {
	model := &captureModel{dialog: ui.NewCaptureDialog(session)}

	_, err := tea.NewProgram(model).Run()

	// Killed or interrupted before enter/escape
	session.Close(context.Background())

	if err != nil {
		return services.CaptureStep{}, fmt.Errorf("error running capture: %w", err)
	}
	if model.finished == nil {
		return services.CaptureStep{Result: domain.CaptureCancelled}, nil
	}
	return model.finished.Step, model.finished.Err
}
