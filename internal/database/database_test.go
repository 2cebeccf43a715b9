package database

import (
	"testing"
	"time"

	"github.com/thereayou/roomhub/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(&models.User{}, &models.Topic{}, &models.Room{}, &models.Message{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return NewDatabase(db)
}

func createTestUser(t *testing.T, d *Database, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:        email,
		Name:         "Test User",
		PasswordHash: "hashed",
		CreatedAt:    time.Now(),
	}
	if err := d.CreateUser(user); err != nil {
		t.Fatalf("failed to create test user %q: %v", email, err)
	}
	return user
}

func createTestRoom(t *testing.T, d *Database, host *models.User, name, topicName string) *models.Room {
	t.Helper()

	topic, err := d.GetOrCreateTopic(topicName)
	if err != nil {
		t.Fatalf("failed to resolve topic %q: %v", topicName, err)
	}

	room := &models.Room{
		Name:      name,
		HostID:    &host.ID,
		TopicID:   &topic.ID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := d.CreateRoom(room); err != nil {
		t.Fatalf("failed to create test room %q: %v", name, err)
	}
	return room
}

func createTestMessage(t *testing.T, d *Database, room *models.Room, author *models.User, body string) *models.Message {
	t.Helper()

	message := &models.Message{
		RoomID:    room.ID,
		UserID:    author.ID,
		Body:      body,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := d.CreateMessage(message); err != nil {
		t.Fatalf("failed to create test message: %v", err)
	}
	return message
}

// setRoomUpdatedAt pins a room's updated timestamp for ordering assertions.
func setRoomUpdatedAt(t *testing.T, d *Database, room *models.Room, at time.Time) {
	t.Helper()

	err := d.db.Model(&models.Room{}).Where("id = ?", room.ID).
		UpdateColumn("updated_at", at).Error
	if err != nil {
		t.Fatalf("failed to pin room updated_at: %v", err)
	}
}

func setRoomCreatedAt(t *testing.T, d *Database, room *models.Room, at time.Time) {
	t.Helper()

	err := d.db.Model(&models.Room{}).Where("id = ?", room.ID).
		UpdateColumn("created_at", at).Error
	if err != nil {
		t.Fatalf("failed to pin room created_at: %v", err)
	}
}

func setMessageTimestamps(t *testing.T, d *Database, message *models.Message, created, updated time.Time) {
	t.Helper()

	err := d.db.Model(&models.Message{}).Where("id = ?", message.ID).
		UpdateColumns(map[string]interface{}{"created_at": created, "updated_at": updated}).Error
	if err != nil {
		t.Fatalf("failed to pin message timestamps: %v", err)
	}
}
