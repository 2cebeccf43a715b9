package database

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/thereayou/roomhub/internal/models"
	"gorm.io/gorm"
)

// CreateMessage appends a message to its room. Posting makes the author a
// participant of the room if they were not one already, and refreshes the
// room's updated timestamp, all in one transaction.
func (d *Database) CreateMessage(message *models.Message) error {
	if strings.TrimSpace(message.Body) == "" {
		return ErrEmptyBody
	}

	return d.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, "id = ?", message.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var author models.User
		if err := tx.First(&author, "id = ?", message.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if message.ID == uuid.Nil {
			message.ID = uuid.New()
		}

		if err := tx.Create(message).Error; err != nil {
			return err
		}

		if err := tx.Model(&room).Association("Participants").Append(&author); err != nil {
			return err
		}

		return tx.Model(&models.Room{}).Where("id = ?", room.ID).
			UpdateColumn("updated_at", time.Now()).Error
	})
}

func (d *Database) GetMessage(id string) (*models.Message, error) {
	var message models.Message
	if err := d.db.Preload("User").First(&message, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &message, nil
}

// UpdateMessage replaces the body of a message. Only the original author
// may edit.
func (d *Database) UpdateMessage(id string, actorID uuid.UUID, body string) (*models.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyBody
	}

	message, err := d.GetMessage(id)
	if err != nil {
		return nil, err
	}

	if message.UserID != actorID {
		return nil, ErrNotAuthor
	}

	if err := d.db.Model(message).Update("body", body).Error; err != nil {
		return nil, err
	}
	return d.GetMessage(id)
}

// DeleteMessage removes a message. Only the original author may delete.
func (d *Database) DeleteMessage(id string, actorID uuid.UUID) error {
	message, err := d.GetMessage(id)
	if err != nil {
		return err
	}

	if message.UserID != actorID {
		return ErrNotAuthor
	}

	return d.db.Delete(message).Error
}

// GetRoomMessages lists a room's messages newest-updated first, ties
// broken by creation time.
func (d *Database) GetRoomMessages(roomID string) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.Where("room_id = ?", roomID).
		Order("updated_at DESC, created_at DESC").
		Preload("User").
		Find(&messages).Error
	return messages, err
}

// GetRecentMessages lists the newest messages across all rooms, for the
// activity feed.
func (d *Database) GetRecentMessages(limit int) ([]models.Message, error) {
	var messages []models.Message
	err := d.db.Order("created_at DESC").
		Limit(limit).
		Preload("User").Preload("Room").
		Find(&messages).Error
	return messages, err
}
