package services

import (
	"sync"

	"github.com/renato0307/keycap/internal/domain"
)

// Slot is a named shortcut with its current and default binding.
// The current value is written by the dispatcher worker when a persist
// request succeeds and read by the UI, so it is guarded.
type Slot struct {
	def domain.SlotDefinition

	mu      sync.RWMutex
	current domain.Binding
}

func newSlot(def domain.SlotDefinition, current domain.Binding) *Slot {
	return &Slot{def: def, current: current}
}

// Name returns the slot name
func (s *Slot) Name() domain.SlotName {
	return s.def.Name
}

// Title returns the human readable slot title
func (s *Slot) Title() string {
	return s.def.Title
}

// Help returns a short description of what the shortcut does
func (s *Slot) Help() string {
	return s.def.Help
}

// Default returns the binding the slot falls back to
func (s *Slot) Default() domain.Binding {
	return s.def.Default
}

// Current returns the active binding
func (s *Slot) Current() domain.Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// IsDefault reports whether the active binding equals the default
func (s *Slot) IsDefault() bool {
	return s.Current() == s.def.Default
}

func (s *Slot) adopt(binding domain.Binding) {
	s.mu.Lock()
	s.current = binding
	s.mu.Unlock()
}
