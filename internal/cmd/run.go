package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/services"
	"github.com/renato0307/keycap/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev bool `help:"Enable development mode (shows version info in dialogs)"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting keycap TUI")

	dispatcher := services.NewSerialDispatcher()
	defer dispatcher.Close()

	manager := cli.Container.NewCaptureManager(dispatcher)
	model := ui.NewModel(manager, dispatcher.Outcomes(), r.Dev)
	model.SetListenerStatus(cli.Container.Listener)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logging.Logger.Info("Starting TUI program")
	_, err := p.Run()

	// A capture still open on quit or interrupt must resume the listener
	model.Teardown(context.Background())

	if err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
