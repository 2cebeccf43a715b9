package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/thereayou/roomhub/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateRoom(room *models.Room) error {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	return d.db.Create(room).Error
}

func (d *Database) GetRoom(id string) (*models.Room, error) {
	var room models.Room
	err := d.db.Preload("Host").Preload("Topic").Preload("Participants").
		First(&room, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &room, nil
}

// SearchRooms lists rooms newest-updated first, ties broken by creation
// time. A non-empty query matches the topic name, room name or description
// as a case-insensitive substring; topicName filters by exact topic.
func (d *Database) SearchRooms(query, topicName string) ([]models.Room, error) {
	q := d.db.Model(&models.Room{}).
		Select("rooms.*").
		Joins("LEFT JOIN topics ON topics.id = rooms.topic_id")

	if query != "" {
		pattern := "%" + strings.ToLower(query) + "%"
		q = q.Where(
			"LOWER(topics.name) LIKE ? OR LOWER(rooms.name) LIKE ? OR LOWER(rooms.description) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if topicName != "" {
		q = q.Where("topics.name = ?", topicName)
	}

	var rooms []models.Room
	err := q.Order("rooms.updated_at DESC, rooms.created_at DESC").
		Preload("Host").Preload("Topic").Preload("Participants").
		Find(&rooms).Error
	return rooms, err
}

// GetHostedRooms lists the rooms a user hosts, newest-updated first.
func (d *Database) GetHostedRooms(hostID string) ([]models.Room, error) {
	var rooms []models.Room
	err := d.db.Where("host_id = ?", hostID).
		Order("updated_at DESC, created_at DESC").
		Preload("Topic").Preload("Participants").
		Find(&rooms).Error
	return rooms, err
}

// UpdateRoom applies the changed fields and refreshes the room's updated
// timestamp. Only the host may update; a room whose host was deleted has
// no host and cannot be updated by anyone.
func (d *Database) UpdateRoom(id string, actorID uuid.UUID, name, description string, topicID *uuid.UUID) (*models.Room, error) {
	room, err := d.GetRoom(id)
	if err != nil {
		return nil, err
	}

	if room.HostID == nil || *room.HostID != actorID {
		return nil, ErrNotHost
	}

	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if description != "" {
		updates["description"] = description
	}
	if topicID != nil {
		updates["topic_id"] = *topicID
	}
	if len(updates) == 0 {
		return room, nil
	}

	err = d.db.Model(&models.Room{}).Where("id = ?", room.ID).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return d.GetRoom(id)
}

// DeleteRoom removes a room, its messages and its participant rows in one
// transaction. Only the host may delete.
func (d *Database) DeleteRoom(id string, actorID uuid.UUID) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if room.HostID == nil || *room.HostID != actorID {
			return ErrNotHost
		}

		if err := tx.Delete(&models.Message{}, "room_id = ?", room.ID).Error; err != nil {
			return err
		}

		if err := tx.Model(&room).Association("Participants").Clear(); err != nil {
			return err
		}

		return tx.Delete(&room).Error
	})
}

// AddParticipant adds a user to the room's participant set. Adding an
// existing participant is a no-op.
func (d *Database) AddParticipant(roomID, userID string) error {
	var room models.Room
	if err := d.db.First(&room, "id = ?", roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var user models.User
	if err := d.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return d.db.Model(&room).Association("Participants").Append(&user)
}
