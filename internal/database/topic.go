package database

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/thereayou/roomhub/internal/models"
	"gorm.io/gorm"
)

// TopicRooms is a topic together with the number of rooms tagged with it.
type TopicRooms struct {
	ID        uuid.UUID
	Name      string
	RoomCount int64
}

// GetOrCreateTopic resolves a topic by exact name, creating it on first
// use. Names are not unique, so an existing duplicate is reused rather
// than multiplied further.
func (d *Database) GetOrCreateTopic(name string) (*models.Topic, error) {
	var topic models.Topic
	err := d.db.Where("name = ?", name).First(&topic).Error
	if err == nil {
		return &topic, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	topic = models.Topic{ID: uuid.New(), Name: name}
	if err := d.db.Create(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (d *Database) GetTopic(id string) (*models.Topic, error) {
	var topic models.Topic
	if err := d.db.First(&topic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &topic, nil
}

// ListTopics returns topics with their room counts, busiest first. A
// non-empty query narrows the list by case-insensitive substring match.
func (d *Database) ListTopics(query string) ([]TopicRooms, error) {
	q := d.db.Model(&models.Topic{}).
		Select("topics.id, topics.name, COUNT(rooms.id) AS room_count").
		Joins("LEFT JOIN rooms ON rooms.topic_id = topics.id").
		Group("topics.id, topics.name")

	if query != "" {
		q = q.Where("LOWER(topics.name) LIKE ?", "%"+strings.ToLower(query)+"%")
	}

	var topics []TopicRooms
	err := q.Order("room_count DESC, topics.name").Scan(&topics).Error
	return topics, err
}
