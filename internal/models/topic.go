package models

import "github.com/google/uuid"

// Topic names are free text and deliberately not unique: two rooms may
// independently create topics with the same label.
type Topic struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
}
