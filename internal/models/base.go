package models

import (
	"time"

	"github.com/avikravi/card-inventory-app/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for append-only tables. There is no
// UpdatedAt or DeletedAt: rows using Base are written once and kept.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
