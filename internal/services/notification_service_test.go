package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/models"
)

func TestNotifyReviewReceived(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo)

	err := service.NotifyReviewReceived("user-1", "review-42", 5, "adaoguns")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "user-1", repo.created[0].UserID)
	assert.Equal(t, models.NotificationTypeReview, repo.created[0].Type)
	assert.Equal(t, "You received a new 5-star review from adaoguns", repo.created[0].Message)
	assert.False(t, repo.created[0].IsRead)

	var payload struct {
		ReviewID string `json:"review_id"`
		Rating   int    `json:"rating"`
	}
	require.NotEmpty(t, repo.created[0].Data)
	require.NoError(t, json.Unmarshal(repo.created[0].Data, &payload))
	assert.Equal(t, "review-42", payload.ReviewID)
	assert.Equal(t, 5, payload.Rating)
}

func TestNotifyContactReceivedCarriesSubject(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo)

	require.NoError(t, service.NotifyContactReceived("user-1", "Question about pricing"))
	require.Len(t, repo.created, 1)

	var payload struct {
		Subject string `json:"subject"`
	}
	require.NoError(t, json.Unmarshal(repo.created[0].Data, &payload))
	assert.Equal(t, "Question about pricing", payload.Subject)
}

func TestNotifyProfileUpdated(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo)

	require.NoError(t, service.NotifyProfileUpdated("user-1"))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "You successfully updated your profile details.", repo.created[0].Message)
}

func TestNotifySubscribed(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo)

	require.NoError(t, service.NotifySubscribed("user-1"))
	require.Len(t, repo.created, 1)
	assert.Equal(t, "You have successfully subscribed to our newsletter.", repo.created[0].Message)
}

func TestContactAckMessageBySubject(t *testing.T) {
	tests := []struct {
		name     string
		subject  string
		expected string
	}{
		{
			name:     "job application subject",
			subject:  "Job Application - Backend",
			expected: "Application submitted successfully! Our HR team will review it shortly.",
		},
		{
			name:     "general subject",
			subject:  "Question about pricing",
			expected: "We received your message and will get back to you soon.",
		},
		{
			name:     "job application embedded",
			subject:  "Re: Job Application for design role",
			expected: "Application submitted successfully! Our HR team will review it shortly.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, contactAckMessage(tt.subject))
		})
	}
}

func TestRecentKeepsCountAndListConsistent(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo)

	for i := 0; i < 7; i++ {
		require.NoError(t, service.NotifyProfileUpdated("user-1"))
	}
	require.NoError(t, service.NotifyProfileUpdated("user-2"))

	recent, err := service.Recent("user-1")
	require.NoError(t, err)

	assert.Len(t, recent.Notifications, 5)
	assert.Equal(t, int64(7), recent.UnreadCount)
	for _, n := range recent.Notifications {
		assert.False(t, n.IsRead)
	}
}

func TestMarkAllReadIsIdempotentAndScoped(t *testing.T) {
	repo := &fakeNotificationRepo{}
	service := NewNotificationService(repo)

	require.NoError(t, service.NotifyProfileUpdated("user-a"))
	require.NoError(t, service.NotifyProfileUpdated("user-a"))
	require.NoError(t, service.NotifyProfileUpdated("user-b"))

	marked, err := service.MarkAllRead("user-a")
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	// Second call has nothing left to do.
	marked, err = service.MarkAllRead("user-a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), marked)

	unreadA, err := repo.UnreadCount("user-a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), unreadA)

	// The other user's notifications are untouched.
	unreadB, err := repo.UnreadCount("user-b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), unreadB)
}
