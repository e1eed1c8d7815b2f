package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/domain"
	portsmocks "github.com/renato0307/keycap/internal/ports/mocks"
	"github.com/renato0307/keycap/internal/services"
)

type uiFixture struct {
	dispatcher *services.InlineDispatcher
	listener   *portsmocks.MockListenerController
	manager    *services.CaptureManager
	store      *portsmocks.MockBindingStore
}

func newUIFixture(t *testing.T) *uiFixture {
	t.Helper()
	f := &uiFixture{
		dispatcher: services.NewInlineDispatcher(),
		listener:   portsmocks.NewMockListenerController(t),
		store:      portsmocks.NewMockBindingStore(t),
	}
	f.manager = services.NewCaptureManager(services.NewShortcutService(f.store), f.listener, nil, f.dispatcher)
	return f
}

func (f *uiFixture) expectOneSession() {
	f.listener.EXPECT().Suspend(mock.Anything).Return(nil).Once()
	f.listener.EXPECT().Resume(mock.Anything).Return(nil).Once()
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCaptureDialog_CommitsCtrlShiftA(t *testing.T) {
	f := newUIFixture(t)
	f.expectOneSession()
	f.store.EXPECT().SetBinding(mock.Anything, domain.SlotPushToTalk, domain.Binding("ctrl+shift+a")).
		Return(domain.Binding("ctrl+shift+a"), nil).Once()

	session, err := f.manager.Start(context.Background(), domain.SlotPushToTalk)
	require.NoError(t, err)
	dialog := NewCaptureDialog(session)

	dialog.Update(tea.KeyMsg{Type: tea.KeyCtrlA})
	dialog.Update(runes("A"))
	assert.False(t, dialog.Completed)
	assert.Equal(t, domain.Binding("ctrl+shift+a"), session.Display())
	assert.Contains(t, dialog.View(), "recording")

	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.True(t, dialog.Completed)
	require.NotNil(t, cmd)
	finished, ok := cmd().(CaptureFinishedMsg)
	require.True(t, ok)
	assert.NoError(t, finished.Err)
	assert.Equal(t, domain.SlotPushToTalk, finished.Slot)
	assert.Equal(t, domain.CaptureCommitted, finished.Step.Result)
	assert.Equal(t, domain.Binding("ctrl+shift+a"), session.Slot().Current())
}

func TestCaptureDialog_EscapeCancels(t *testing.T) {
	f := newUIFixture(t)
	f.expectOneSession()

	session, err := f.manager.Start(context.Background(), domain.SlotPasteLastTranscript)
	require.NoError(t, err)
	dialog := NewCaptureDialog(session)

	dialog.Update(tea.KeyMsg{Type: tea.KeyF5})
	_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	finished := cmd().(CaptureFinishedMsg)
	assert.Equal(t, domain.CaptureCancelled, finished.Step.Result)
	assert.Equal(t, domain.Binding("ctrl+shift+space"), session.Slot().Current())
}

func TestCaptureDialog_IgnoresNonKeyMessagesAndLateKeys(t *testing.T) {
	f := newUIFixture(t)
	f.expectOneSession()

	session, err := f.manager.Start(context.Background(), domain.SlotPushToTalk)
	require.NoError(t, err)
	dialog := NewCaptureDialog(session)

	_, cmd := dialog.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)

	dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, dialog.Completed)

	// Keys after the dialog ended never reach the session
	_, cmd = dialog.Update(runes("x"))
	assert.Nil(t, cmd)
	step, err := dialog.Result()
	assert.NoError(t, err)
	assert.Equal(t, domain.CaptureEmpty, step.Result)
}
