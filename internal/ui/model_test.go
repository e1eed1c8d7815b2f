package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/services"
)

// drive sends msg and then every message produced by the returned command,
// skipping commands that block on outcomes
func drive(m *Model, msg tea.Msg) {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return
	}
	if finished, ok := cmd().(CaptureFinishedMsg); ok {
		m.Update(finished)
	}
}

func TestModel_RecordFromList(t *testing.T) {
	f := newUIFixture(t)
	f.expectOneSession()
	f.store.EXPECT().SetBinding(mock.Anything, domain.SlotPushToTalk, domain.Binding("alt+r")).
		Return(domain.Binding("alt+r"), nil).Once()
	m := NewModel(f.manager, nil, false)

	drive(m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, stateCapturing, m.state)
	assert.NotNil(t, f.manager.Active())

	drive(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}, Alt: true})
	drive(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, stateList, m.state)
	assert.Nil(t, f.manager.Active())
	assert.Contains(t, m.notice, "alt+r")
	slot, _ := f.manager.Shortcuts().Slot(domain.SlotPushToTalk)
	assert.Equal(t, domain.Binding("alt+r"), slot.Current())
}

func TestModel_NavigateAndCancel(t *testing.T) {
	f := newUIFixture(t)
	f.expectOneSession()
	m := NewModel(f.manager, nil, false)

	drive(m, runes("j"))
	assert.Equal(t, 1, m.selected)
	drive(m, runes("j"))
	assert.Equal(t, 1, m.selected)

	drive(m, runes("e"))
	require.Equal(t, stateCapturing, m.state)
	assert.Equal(t, domain.SlotPasteLastTranscript, f.manager.Active().Slot().Name())

	drive(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, stateList, m.state)
	assert.Equal(t, "Recording cancelled", m.notice)

	drive(m, runes("k"))
	assert.Equal(t, 0, m.selected)
}

func TestModel_StartRejectedWhileAnotherSessionRecords(t *testing.T) {
	f := newUIFixture(t)
	f.expectOneSession()
	other, err := f.manager.Start(context.Background(), domain.SlotPushToTalk)
	require.NoError(t, err)
	m := NewModel(f.manager, nil, false)

	drive(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, stateList, m.state)
	assert.ErrorIs(t, m.err, domain.ErrCaptureInProgress)
	assert.Contains(t, m.View(), "Error:")

	other.Close(context.Background())
}

func TestModel_TeardownClosesCapture(t *testing.T) {
	f := newUIFixture(t)
	f.expectOneSession()
	m := NewModel(f.manager, nil, false)

	drive(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, stateCapturing, m.state)

	m.Teardown(context.Background())

	assert.Nil(t, f.manager.Active())
	assert.Equal(t, stateList, m.state)
}

func TestModel_ResetCanBeDismissed(t *testing.T) {
	f := newUIFixture(t)
	m := NewModel(f.manager, nil, false)

	drive(m, runes("r"))
	require.Equal(t, stateConfirmingReset, m.state)
	assert.Contains(t, m.View(), "Reset")

	drive(m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, stateList, m.state)
	assert.Nil(t, m.resetForm)
}

func TestModel_ResetSelectedSlot(t *testing.T) {
	f := newUIFixture(t)
	f.store.EXPECT().SetBinding(mock.Anything, domain.SlotPushToTalk, domain.Binding("ctrl+space")).
		Return(domain.Binding("ctrl+space"), nil).Once()
	m := NewModel(f.manager, nil, false)

	m.reset(domain.SlotPushToTalk)

	assert.NoError(t, m.err)
	assert.Equal(t, "Reset push_to_talk to ctrl+space", m.notice)
}

func TestModel_HelpScreen(t *testing.T) {
	f := newUIFixture(t)
	m := NewModel(f.manager, nil, false)

	drive(m, runes("?"))
	require.Equal(t, stateHelp, m.state)
	assert.Contains(t, m.View(), "While recording")

	drive(m, runes("x"))
	assert.Equal(t, stateList, m.state)
}

func TestModel_Quit(t *testing.T) {
	f := newUIFixture(t)
	m := NewModel(f.manager, nil, false)

	_, cmd := m.Update(runes("q"))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Outcomes(t *testing.T) {
	f := newUIFixture(t)
	outcomes := make(chan services.Outcome, 1)
	m := NewModel(f.manager, outcomes, false)

	outcomes <- services.Outcome{Kind: services.RequestPersist, Slot: domain.SlotPushToTalk, Err: errors.New("disk full")}
	msg := m.Init()()
	_, next := m.Update(msg)

	assert.ErrorContains(t, m.err, "disk full")
	assert.NotNil(t, next)

	m.Update(OutcomeMsg{Outcome: services.Outcome{Kind: services.RequestPersist, Slot: domain.SlotPushToTalk, Binding: "f8"}})
	assert.NoError(t, m.err)
	assert.Equal(t, "Saved push_to_talk: f8", m.notice)
}

func TestModel_ListView(t *testing.T) {
	f := newUIFixture(t)
	m := NewModel(f.manager, nil, false)

	view := m.View()

	assert.Contains(t, view, "Push to talk")
	assert.Contains(t, view, "Paste last transcript")
	assert.Contains(t, view, "default")
}

type listenerStatusStub struct {
	suspended bool
	err       error
}

func (l *listenerStatusStub) IsSuspended() (bool, error) {
	return l.suspended, l.err
}

func TestModel_ListViewShowsListenerState(t *testing.T) {
	f := newUIFixture(t)
	m := NewModel(f.manager, nil, false)

	assert.NotContains(t, m.View(), "Listener")

	status := &listenerStatusStub{}
	m.SetListenerStatus(status)
	assert.Contains(t, m.View(), "Listener running")

	status.suspended = true
	assert.Contains(t, m.View(), "Listener suspended")

	status.err = errors.New("permission denied")
	assert.NotContains(t, m.View(), "Listener")
}
