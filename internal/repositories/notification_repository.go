package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"talenthub_backend/internal/models"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidNotification  = errors.New("invalid notification")
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	FindByUser(userID string, limit int) ([]models.Notification, error)
	FindRecent(userID string, limit int) ([]models.Notification, error)
	UnreadCount(userID string) (int64, error)
	MarkAllRead(userID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	if notification.UserID == "" || notification.Message == "" {
		return ErrInvalidNotification
	}
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) FindByUser(userID string, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// FindRecent returns the newest notifications for the dropdown, read or not.
func (r *NotificationRepositoryImpl) FindRecent(userID string, limit int) ([]models.Notification, error) {
	return r.FindByUser(userID, limit)
}

func (r *NotificationRepositoryImpl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

// MarkAllRead flips every unread notification of the user and reports how
// many rows changed. Calling it again with nothing unread is a no-op.
func (r *NotificationRepositoryImpl) MarkAllRead(userID string) (int64, error) {
	now := time.Now()
	result := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{"is_read": true, "read_at": now})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
