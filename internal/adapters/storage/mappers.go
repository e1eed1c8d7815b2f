package storage

import (
	"github.com/renato0307/keycap/internal/domain"
)

// shortcutModelToDomain converts a ShortcutModel (GORM) to its slot and binding
func shortcutModelToDomain(m ShortcutModel) (domain.SlotName, domain.Binding) {
	return domain.SlotName(m.SlotName), domain.Binding(m.Binding)
}

// domainToShortcutModel converts a slot binding to ShortcutModel (GORM)
func domainToShortcutModel(slot domain.SlotName, binding domain.Binding) ShortcutModel {
	return ShortcutModel{
		Binding:  string(binding),
		SlotName: string(slot),
	}
}
