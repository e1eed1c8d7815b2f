package ports

import (
	"context"

	"github.com/renato0307/keycap/internal/domain"
)

// BindingReader reads persisted shortcut bindings
type BindingReader interface {
	// GetBinding returns the stored binding for a slot.
	// found is false when nothing is stored for the slot.
	GetBinding(ctx context.Context, slot domain.SlotName) (binding domain.Binding, found bool, err error)
}

// BindingWriter stores shortcut bindings
type BindingWriter interface {
	// SetBinding stores a binding and returns the confirmed canonical form,
	// which may differ from the input if the store normalizes it
	SetBinding(ctx context.Context, slot domain.SlotName, binding domain.Binding) (domain.Binding, error)
}

// BindingStore is the composite interface
type BindingStore interface {
	BindingReader
	BindingWriter
	Close() error
}

// BindingLister is implemented by stores that can enumerate everything they
// hold, including entries for slots that are no longer defined
type BindingLister interface {
	ListBindings(ctx context.Context) (map[domain.SlotName]domain.Binding, error)
}
