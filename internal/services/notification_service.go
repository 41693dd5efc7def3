package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"

	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
)

const recentNotificationLimit = 5

// Notification message templates. Every trigger in the system funnels
// through one of the Notify* methods below so the full rule set stays in
// one place.
const (
	msgReviewReceived  = "You received a new %d-star review from %s"
	msgProfileUpdated  = "You successfully updated your profile details."
	msgSubscribed      = "You have successfully subscribed to our newsletter."
	msgApplicationSent = "Application submitted successfully! Our HR team will review it shortly."
	msgContactReceived = "We received your message and will get back to you soon."
)

type NotificationService interface {
	NotifyReviewReceived(recipientID, reviewID string, rating int, authorUsername string) error
	NotifyProfileUpdated(userID string) error
	NotifySubscribed(userID string) error
	NotifyContactReceived(userID string, subject string) error
	List(userID string, limit int) ([]dto.NotificationResponse, error)
	Recent(userID string) (*dto.RecentNotifications, error)
	MarkAllRead(userID string) (int64, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

// emit persists one notification row. The payload carries structured
// context for the client (the review that triggered the row, the contact
// subject) and is stored as jsonb next to the display message.
func (s *notificationService) emit(userID, notifType, message string, payload any) error {
	var data datatypes.JSON
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal notification payload: %w", err)
		}
		data = datatypes.JSON(raw)
	}
	return s.notificationRepo.Create(&models.Notification{
		UserID:  userID,
		Type:    notifType,
		Message: message,
		Data:    data,
	})
}

func (s *notificationService) NotifyReviewReceived(recipientID, reviewID string, rating int, authorUsername string) error {
	return s.emit(recipientID, models.NotificationTypeReview,
		fmt.Sprintf(msgReviewReceived, rating, authorUsername),
		map[string]any{"review_id": reviewID, "rating": rating})
}

func (s *notificationService) NotifyProfileUpdated(userID string) error {
	return s.emit(userID, models.NotificationTypeProfileUpdate, msgProfileUpdated, nil)
}

func (s *notificationService) NotifySubscribed(userID string) error {
	return s.emit(userID, models.NotificationTypeSubscription, msgSubscribed, nil)
}

// contactAckMessage picks the acknowledgment text by subject: job
// applications get the HR wording, everything else the generic one.
func contactAckMessage(subject string) string {
	if strings.Contains(subject, "Job Application") {
		return msgApplicationSent
	}
	return msgContactReceived
}

func (s *notificationService) NotifyContactReceived(userID string, subject string) error {
	return s.emit(userID, models.NotificationTypeContact, contactAckMessage(subject),
		map[string]any{"subject": subject})
}

func (s *notificationService) List(userID string, limit int) ([]dto.NotificationResponse, error) {
	notifications, err := s.notificationRepo.FindByUser(userID, limit)
	if err != nil {
		return nil, err
	}
	return toNotificationResponses(notifications), nil
}

// Recent returns the dropdown payload. The unread count uses the same
// per-user filter as the list so the badge never disagrees with the rows.
func (s *notificationService) Recent(userID string) (*dto.RecentNotifications, error) {
	notifications, err := s.notificationRepo.FindRecent(userID, recentNotificationLimit)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, err
	}
	return &dto.RecentNotifications{
		Notifications: toNotificationResponses(notifications),
		UnreadCount:   unread,
	}, nil
}

func (s *notificationService) MarkAllRead(userID string) (int64, error) {
	return s.notificationRepo.MarkAllRead(userID)
}

func toNotificationResponses(notifications []models.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, dto.NotificationResponse{
			ID:        n.ID,
			Type:      n.Type,
			Message:   n.Message,
			Data:      json.RawMessage(n.Data),
			IsRead:    n.IsRead,
			ReadAt:    n.ReadAt,
			CreatedAt: n.CreatedAt,
		})
	}
	return responses
}
