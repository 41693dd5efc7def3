package services

import (
	"fmt"
	"time"

	"talenthub_backend/internal/models"
)

// fakeNotificationRepo is an in-memory NotificationRepository for unit
// tests. Entries are appended in creation order.
type fakeNotificationRepo struct {
	created []*models.Notification
	err     error
}

func (f *fakeNotificationRepo) Create(n *models.Notification) error {
	if f.err != nil {
		return f.err
	}
	n.ID = fmt.Sprintf("notif-%d", len(f.created)+1)
	n.CreatedAt = time.Now()
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) FindByUser(userID string, limit int) ([]models.Notification, error) {
	var out []models.Notification
	for i := len(f.created) - 1; i >= 0; i-- {
		if f.created[i].UserID != userID {
			continue
		}
		out = append(out, *f.created[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) FindRecent(userID string, limit int) ([]models.Notification, error) {
	return f.FindByUser(userID, limit)
}

func (f *fakeNotificationRepo) UnreadCount(userID string) (int64, error) {
	var count int64
	for _, n := range f.created {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationRepo) MarkAllRead(userID string) (int64, error) {
	now := time.Now()
	var affected int64
	for _, n := range f.created {
		if n.UserID == userID && !n.IsRead {
			n.IsRead = true
			n.ReadAt = &now
			affected++
		}
	}
	return affected, nil
}

// fakeContactRepo is an in-memory ContactRepository.
type fakeContactRepo struct {
	messages    []*models.ContactMessage
	subscribers map[string]bool
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{subscribers: make(map[string]bool)}
}

func (f *fakeContactRepo) CreateMessage(m *models.ContactMessage) error {
	m.ID = fmt.Sprintf("msg-%d", len(f.messages)+1)
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakeContactRepo) ListMessages() ([]models.ContactMessage, error) {
	out := make([]models.ContactMessage, 0, len(f.messages))
	for i := len(f.messages) - 1; i >= 0; i-- {
		out = append(out, *f.messages[i])
	}
	return out, nil
}

func (f *fakeContactRepo) SubscriberExists(email string) (bool, error) {
	return f.subscribers[email], nil
}

func (f *fakeContactRepo) CreateSubscriber(s *models.Subscriber) error {
	f.subscribers[s.Email] = true
	return nil
}
