package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/keycap/internal/domain"
	portsmocks "github.com/renato0307/keycap/internal/ports/mocks"
)

func TestNewShortcutService_StartsAtDefaults(t *testing.T) {
	store := portsmocks.NewMockBindingStore(t)

	service := NewShortcutService(store)

	slots := service.Slots()
	require.Len(t, slots, len(domain.AllSlotDefinitions))
	for i, def := range domain.AllSlotDefinitions {
		assert.Equal(t, def.Name, slots[i].Name())
		assert.Equal(t, def.Default, slots[i].Current())
		assert.True(t, slots[i].IsDefault())
	}
}

func TestShortcutServiceLoad(t *testing.T) {
	tests := []struct {
		name     string
		stored   domain.Binding
		found    bool
		err      error
		expected domain.Binding
	}{
		{"stored canonical value", "ctrl+alt+r", true, nil, "ctrl+alt+r"},
		{"stored value is normalized", "Shift+Control+A", true, nil, "ctrl+shift+a"},
		{"nothing stored falls back to default", "", false, nil, "ctrl+space"},
		{"invalid stored value falls back to default", "ctrl+enter", true, nil, "ctrl+space"},
		{"store error falls back to default", "", false, errors.New("disk on fire"), "ctrl+space"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := portsmocks.NewMockBindingStore(t)
			store.EXPECT().GetBinding(mock.Anything, domain.SlotPushToTalk).Return(tt.stored, tt.found, tt.err)
			store.EXPECT().GetBinding(mock.Anything, domain.SlotPasteLastTranscript).Return("", false, nil)

			service := NewShortcutService(store)
			service.Load(context.Background())

			slot, err := service.Slot(domain.SlotPushToTalk)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, slot.Current())
			assert.Equal(t, domain.Binding("ctrl+space"), slot.Default())
		})
	}
}

func TestShortcutServiceSlot_Unknown(t *testing.T) {
	service := NewShortcutService(portsmocks.NewMockBindingStore(t))

	_, err := service.Slot("open_browser")

	assert.ErrorIs(t, err, domain.ErrUnknownSlot)
}

func TestShortcutServiceSet_AdoptsConfirmedBinding(t *testing.T) {
	store := portsmocks.NewMockBindingStore(t)
	store.EXPECT().SetBinding(mock.Anything, domain.SlotPasteLastTranscript, domain.Binding("ctrl+shift+v")).
		Return(domain.Binding("ctrl+shift+v"), nil).Once()

	service := NewShortcutService(store)

	binding, err := service.Set(context.Background(), domain.SlotPasteLastTranscript, "Shift + control + V")

	require.NoError(t, err)
	assert.Equal(t, domain.Binding("ctrl+shift+v"), binding)
	slot, _ := service.Slot(domain.SlotPasteLastTranscript)
	assert.Equal(t, domain.Binding("ctrl+shift+v"), slot.Current())
	assert.False(t, slot.IsDefault())
}

func TestShortcutServiceSet_StoreNormalizationWins(t *testing.T) {
	store := portsmocks.NewMockBindingStore(t)
	store.EXPECT().SetBinding(mock.Anything, domain.SlotPushToTalk, domain.Binding("alt+f9")).
		Return(domain.Binding("alt+f10"), nil).Once()

	service := NewShortcutService(store)

	binding, err := service.Set(context.Background(), domain.SlotPushToTalk, "alt+f9")

	require.NoError(t, err)
	assert.Equal(t, domain.Binding("alt+f10"), binding)
	slot, _ := service.Slot(domain.SlotPushToTalk)
	assert.Equal(t, domain.Binding("alt+f10"), slot.Current())
}

func TestShortcutServiceSet_InvalidBindingNeverReachesStore(t *testing.T) {
	store := portsmocks.NewMockBindingStore(t)
	service := NewShortcutService(store)

	_, err := service.Set(context.Background(), domain.SlotPushToTalk, "ctrl+escape")

	assert.ErrorIs(t, err, domain.ErrInvalidBinding)
	slot, _ := service.Slot(domain.SlotPushToTalk)
	assert.Equal(t, domain.Binding("ctrl+space"), slot.Current())
}

func TestShortcutServiceSet_StoreFailureKeepsPreviousBinding(t *testing.T) {
	store := portsmocks.NewMockBindingStore(t)
	store.EXPECT().SetBinding(mock.Anything, domain.SlotPushToTalk, domain.Binding("ctrl+k")).
		Return(domain.Binding(""), errors.New("database is locked")).Once()

	service := NewShortcutService(store)

	_, err := service.Set(context.Background(), domain.SlotPushToTalk, "ctrl+k")

	assert.ErrorContains(t, err, "database is locked")
	slot, _ := service.Slot(domain.SlotPushToTalk)
	assert.Equal(t, domain.Binding("ctrl+space"), slot.Current())
}
