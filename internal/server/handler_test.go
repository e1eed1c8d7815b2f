package server

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/domain"
	portsmocks "github.com/renato0307/keycap/internal/ports/mocks"
	"github.com/renato0307/keycap/internal/services"
	"github.com/renato0307/keycap/internal/ui"
)

func TestConnectionModel_QuitClosesCaptureAndSubscription(t *testing.T) {
	listener := portsmocks.NewMockListenerController(t)
	listener.EXPECT().Suspend(mock.Anything).Return(nil).Once()
	listener.EXPECT().Resume(mock.Anything).Return(nil).Once()
	store := portsmocks.NewMockBindingStore(t)
	manager := services.NewCaptureManager(services.NewShortcutService(store), listener, nil, services.NewInlineDispatcher())

	hub := services.NewOutcomeHub()
	outcomes, unsubscribe := hub.Subscribe()
	conn := &connectionModel{
		connID:      "test@local",
		model:       ui.NewModel(manager, outcomes, false),
		startTime:   time.Now(),
		unsubscribe: unsubscribe,
	}

	conn.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, manager.Active())

	conn.Update(tea.QuitMsg{})
	// A second teardown from the disconnect watcher is a no-op
	conn.teardown()

	assert.Nil(t, manager.Active())
	_, open := <-outcomes
	assert.False(t, open)

	// The slot is free for the next connection
	listener.EXPECT().Suspend(mock.Anything).Return(nil).Once()
	listener.EXPECT().Resume(mock.Anything).Return(nil).Once()
	session, err := manager.Start(context.Background(), domain.SlotPushToTalk)
	require.NoError(t, err)
	session.Close(context.Background())
}
