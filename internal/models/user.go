package models

import (
	"github.com/google/uuid"
	"time"
)

// User is identified by email. Staff and superuser are plain capability
// flags, not separate account types.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex;not null"`
	Name         string
	Bio          string `gorm:"type:text"`
	Avatar       string
	PasswordHash string `gorm:"not null"`
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
}
