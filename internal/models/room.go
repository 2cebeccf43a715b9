package models

import (
	"github.com/google/uuid"
	"time"
)

// Room keeps a nullable host and topic: deleting either leaves the room in
// place with the reference nulled out.
type Room struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"not null"`
	Description string     `gorm:"type:text"`
	HostID      *uuid.UUID `gorm:"type:uuid"`
	TopicID     *uuid.UUID `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Host         *User     `gorm:"foreignKey:HostID"`
	Topic        *Topic    `gorm:"foreignKey:TopicID"`
	Participants []User    `gorm:"many2many:room_participants"`
	Messages     []Message `gorm:"foreignKey:RoomID"`
}
