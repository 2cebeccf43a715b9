package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/thereayou/roomhub/internal/models"
	"gorm.io/gorm"
)

func (d *Database) CreateUser(user *models.User) error {
	if user.Email == "" {
		return ErrEmptyEmail
	}

	var count int64
	if err := d.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	return d.db.Create(user).Error
}

func (d *Database) GetUser(id string) (*models.User, error) {
	user := models.User{}
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *Database) FindUserByEmail(email string) (*models.User, error) {
	user := models.User{}
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (d *Database) UpdateUser(user *models.User) error {
	return d.db.Save(user).Error
}

func (d *Database) ListUsers() ([]models.User, error) {
	var users []models.User
	err := d.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// DeleteUser removes a user together with every message they authored.
// Rooms they hosted survive with a nulled host, and their participant
// rows are cleared.
func (d *Database) DeleteUser(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Delete(&models.Message{}, "user_id = ?", user.ID).Error; err != nil {
			return err
		}

		if err := tx.Exec("DELETE FROM room_participants WHERE user_id = ?", user.ID).Error; err != nil {
			return err
		}

		err := tx.Model(&models.Room{}).Where("host_id = ?", user.ID).
			UpdateColumn("host_id", nil).Error
		if err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})
}
