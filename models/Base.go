package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the opaque string identifier and timestamps shared by every catalog record.
type Base struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a fresh identifier when the caller did not provide one.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	b.AssignID()
	return nil
}

// AssignID sets a new UUID when ID is empty.
func (b *Base) AssignID() {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
}

// GetID returns the record identifier.
func (b Base) GetID() string {
	return b.ID
}
