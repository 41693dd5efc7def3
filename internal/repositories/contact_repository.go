package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"talenthub_backend/internal/models"
)

type ContactRepository interface {
	CreateMessage(message *models.ContactMessage) error
	ListMessages() ([]models.ContactMessage, error)
	SubscriberExists(email string) (bool, error)
	CreateSubscriber(subscriber *models.Subscriber) error
}

type ContactRepositoryImpl struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &ContactRepositoryImpl{db: db}
}

func (r *ContactRepositoryImpl) CreateMessage(message *models.ContactMessage) error {
	return r.db.Create(message).Error
}

func (r *ContactRepositoryImpl) ListMessages() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := r.db.Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *ContactRepositoryImpl) SubscriberExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Subscriber{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *ContactRepositoryImpl) CreateSubscriber(subscriber *models.Subscriber) error {
	err := r.db.Create(subscriber).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}
