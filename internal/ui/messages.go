package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/services"
)

// CaptureFinishedMsg is sent when a capture dialog ends
type CaptureFinishedMsg struct {
	Err  error
	Slot domain.SlotName
	Step services.CaptureStep
}

// OutcomeMsg carries the result of a dispatched request
type OutcomeMsg struct {
	Outcome services.Outcome
}

// waitForOutcome delivers the next outcome as a message.
// Returns nil when there is no outcome source.
func waitForOutcome(outcomes <-chan services.Outcome) tea.Cmd {
	if outcomes == nil {
		return nil
	}
	return func() tea.Msg {
		outcome, ok := <-outcomes
		if !ok {
			return nil
		}
		return OutcomeMsg{Outcome: outcome}
	}
}
