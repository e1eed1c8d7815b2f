package services

import (
	"context"
	"fmt"

	"github.com/renato0307/keycap/internal/domain"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/ports"
)

// ShortcutService owns the runtime shortcut slots and their persistence
type ShortcutService struct {
	byName map[domain.SlotName]*Slot
	slots  []*Slot
	store  ports.BindingStore
}

// NewShortcutService creates a ShortcutService with every slot at its default.
// Call Load to read the persisted values.
func NewShortcutService(store ports.BindingStore) *ShortcutService {
	s := &ShortcutService{
		byName: make(map[domain.SlotName]*Slot, len(domain.AllSlotDefinitions)),
		store:  store,
	}
	for _, def := range domain.AllSlotDefinitions {
		slot := newSlot(def, def.Default)
		s.slots = append(s.slots, slot)
		s.byName[def.Name] = slot
	}
	return s
}

// Load reads every slot from the store. A slot whose stored value is
// missing, invalid or unreadable keeps its default.
func (s *ShortcutService) Load(ctx context.Context) {
	for _, slot := range s.slots {
		slot.adopt(s.loadSlot(ctx, slot))
	}
}

func (s *ShortcutService) loadSlot(ctx context.Context, slot *Slot) domain.Binding {
	stored, found, err := s.store.GetBinding(ctx, slot.Name())
	if err != nil {
		logging.Logger.Warn("Failed to read shortcut, using default",
			"slot", slot.Name(), "default", slot.Default(), "error", err)
		return slot.Default()
	}
	if !found {
		logging.Logger.Debug("No stored shortcut, using default", "slot", slot.Name(), "default", slot.Default())
		return slot.Default()
	}

	binding, err := domain.ParseBinding(string(stored))
	if err != nil {
		logging.Logger.Warn("Stored shortcut is invalid, using default",
			"slot", slot.Name(), "stored", stored, "error", err)
		return slot.Default()
	}

	logging.Logger.Debug("Loaded shortcut", "slot", slot.Name(), "binding", binding)
	return binding
}

// Slot returns the slot with the given name
func (s *ShortcutService) Slot(name domain.SlotName) (*Slot, error) {
	slot, ok := s.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownSlot, name)
	}
	return slot, nil
}

// Slots returns every slot in definition order
func (s *ShortcutService) Slots() []*Slot {
	out := make([]*Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Set validates raw, stores it and adopts the confirmed binding.
// The slot is left untouched when validation or the store fails.
func (s *ShortcutService) Set(ctx context.Context, name domain.SlotName, raw string) (domain.Binding, error) {
	slot, err := s.Slot(name)
	if err != nil {
		return "", err
	}

	binding, err := domain.ParseBinding(raw)
	if err != nil {
		return "", err
	}

	return s.persist(ctx, slot, binding)
}

// persist writes binding to the store and adopts what the store confirmed
func (s *ShortcutService) persist(ctx context.Context, slot *Slot, binding domain.Binding) (domain.Binding, error) {
	confirmed, err := s.store.SetBinding(ctx, slot.Name(), binding)
	if err != nil {
		logging.Logger.Error("Failed to save shortcut", "slot", slot.Name(), "binding", binding, "error", err)
		return "", fmt.Errorf("failed to save shortcut %s: %w", slot.Name(), err)
	}
	if confirmed.IsEmpty() {
		confirmed = binding
	}

	slot.adopt(confirmed)
	logging.Logger.Info("Shortcut saved", "slot", slot.Name(), "binding", confirmed)
	return confirmed, nil
}

// persistRequest builds a dispatchable request that stores binding
// and adopts the confirmed value on success
func (s *ShortcutService) persistRequest(sessionID string, slot *Slot, binding domain.Binding) Request {
	return Request{
		Binding:   binding,
		Kind:      RequestPersist,
		SessionID: sessionID,
		Slot:      slot.Name(),
		run: func(ctx context.Context) (domain.Binding, error) {
			return s.persist(ctx, slot, binding)
		},
	}
}
