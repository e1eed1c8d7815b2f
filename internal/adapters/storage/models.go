package storage

import "time"

// ShortcutModel is the GORM model for the shortcuts table
type ShortcutModel struct {
	Binding   string `gorm:"not null"`
	CreatedAt time.Time
	SlotName  string `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ShortcutModel) TableName() string { return "shortcuts" }
