package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talenthub_backend/internal/config"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

func init() {
	// Service code reads the configured inbox address.
	config.AppConfig = &config.Config{}
	config.AppConfig.Email.FromEmail = "inbox@talenthub.local"
}

func newContactFixture() (*fakeContactRepo, *email.MockProvider, *fakeNotificationRepo, ContactService) {
	contactRepo := newFakeContactRepo()
	provider := email.NewMockProvider()
	notificationRepo := &fakeNotificationRepo{}
	service := NewContactService(contactRepo, provider, NewNotificationService(notificationRepo))
	return contactRepo, provider, notificationRepo, service
}

func TestSubmitMessageAuthenticated(t *testing.T) {
	contactRepo, provider, notificationRepo, service := newContactFixture()

	resp, err := service.SubmitMessage(context.Background(), "user-1", &dto.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Question about pricing",
		Message: "How do rates work?",
	})
	require.NoError(t, err)

	assert.Equal(t, "We received your message and will get back to you soon.", resp.Message)
	assert.Len(t, contactRepo.messages, 1)
	assert.Equal(t, 1, provider.SentCount())
	require.Len(t, notificationRepo.created, 1)
	assert.Equal(t, "user-1", notificationRepo.created[0].UserID)
}

func TestSubmitMessageJobApplication(t *testing.T) {
	_, _, notificationRepo, service := newContactFixture()

	resp, err := service.SubmitMessage(context.Background(), "user-1", &dto.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Job Application - Backend",
		Message: "Please find my application attached.",
	})
	require.NoError(t, err)

	expected := "Application submitted successfully! Our HR team will review it shortly."
	assert.Equal(t, expected, resp.Message)
	require.Len(t, notificationRepo.created, 1)
	assert.Equal(t, expected, notificationRepo.created[0].Message)
}

func TestSubmitMessageAnonymousEmitsNoNotification(t *testing.T) {
	contactRepo, _, notificationRepo, service := newContactFixture()

	_, err := service.SubmitMessage(context.Background(), "", &dto.ContactRequest{
		Name:    "Guest",
		Email:   "guest@example.com",
		Subject: "Hello",
		Message: "Just saying hi.",
	})
	require.NoError(t, err)

	assert.Len(t, contactRepo.messages, 1)
	assert.Empty(t, notificationRepo.created)
}

func TestSubmitMessageMailFailureKeepsRecord(t *testing.T) {
	contactRepo, provider, notificationRepo, service := newContactFixture()
	provider.Err = errors.New("smtp unavailable")

	_, err := service.SubmitMessage(context.Background(), "user-1", &dto.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Hi.",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, apperrors.CodeExternalServiceError, appErr.Code)

	// The message row survives the delivery failure, but no
	// acknowledgment is emitted.
	assert.Len(t, contactRepo.messages, 1)
	assert.Empty(t, notificationRepo.created)
}

func TestSubscribe(t *testing.T) {
	contactRepo, _, notificationRepo, service := newContactFixture()

	resp, err := service.Subscribe(context.Background(), "user-1", &dto.SubscribeRequest{Email: "Ada@Example.com"})
	require.NoError(t, err)

	assert.Equal(t, "You have successfully subscribed to our newsletter.", resp.Message)
	assert.True(t, contactRepo.subscribers["ada@example.com"])
	require.Len(t, notificationRepo.created, 1)
}

func TestSubscribeDuplicateIsNotAnError(t *testing.T) {
	contactRepo, _, notificationRepo, service := newContactFixture()
	contactRepo.subscribers["ada@example.com"] = true

	resp, err := service.Subscribe(context.Background(), "user-1", &dto.SubscribeRequest{Email: "ada@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "You are already subscribed.", resp.Message)
	assert.Len(t, contactRepo.subscribers, 1)
	assert.Empty(t, notificationRepo.created)
}

func TestSubscribeAnonymous(t *testing.T) {
	contactRepo, _, notificationRepo, service := newContactFixture()

	_, err := service.Subscribe(context.Background(), "", &dto.SubscribeRequest{Email: "guest@example.com"})
	require.NoError(t, err)

	assert.True(t, contactRepo.subscribers["guest@example.com"])
	assert.Empty(t, notificationRepo.created)
}
