package services

import (
	"context"
	"fmt"
	"strings"

	"talenthub_backend/internal/config"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
	"talenthub_backend/pkg/apperrors"
)

type ContactService interface {
	SubmitMessage(ctx context.Context, userID string, req *dto.ContactRequest) (*dto.MessageResponse, error)
	Subscribe(ctx context.Context, userID string, req *dto.SubscribeRequest) (*dto.MessageResponse, error)
}

type contactService struct {
	contactRepo         repositories.ContactRepository
	emailProvider       email.Provider
	notificationService NotificationService
}

func NewContactService(
	contactRepo repositories.ContactRepository,
	emailProvider email.Provider,
	notificationService NotificationService,
) ContactService {
	return &contactService{
		contactRepo:         contactRepo,
		emailProvider:       emailProvider,
		notificationService: notificationService,
	}
}

// SubmitMessage persists the contact message, forwards it to the site inbox
// and, for authenticated senders, emits an acknowledgment notification. The
// message row survives a mail failure; the caller gets the delivery error.
// userID is empty for anonymous senders.
func (s *contactService) SubmitMessage(ctx context.Context, userID string, req *dto.ContactRequest) (*dto.MessageResponse, error) {
	message := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contactRepo.CreateMessage(message); err != nil {
		return nil, err
	}

	cfg := config.GetConfig()
	mail := &email.Email{
		To:      []string{cfg.Email.FromEmail},
		Subject: fmt.Sprintf("[Contact] %s", req.Subject),
		Body:    fmt.Sprintf("From: %s <%s>\n\n%s", req.Name, req.Email, req.Message),
	}
	if err := s.emailProvider.Send(mail); err != nil {
		logger.CtxError(ctx, "failed to forward contact message", "error", err, "subject", req.Subject)
		return nil, apperrors.ErrMailDelivery(err)
	}

	ack := contactAckMessage(req.Subject)
	if userID != "" {
		if err := s.notificationService.NotifyContactReceived(userID, req.Subject); err != nil {
			logger.CtxWarn(ctx, "failed to emit contact notification", "error", err, "user_id", userID)
		}
	}
	return &dto.MessageResponse{Message: ack}, nil
}

// Subscribe adds the email to the newsletter list. A duplicate is not an
// error: no new row, no notification, an "already subscribed" message back.
func (s *contactService) Subscribe(ctx context.Context, userID string, req *dto.SubscribeRequest) (*dto.MessageResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.contactRepo.SubscriberExists(normalized)
	if err != nil {
		return nil, err
	}
	if exists {
		return &dto.MessageResponse{Message: "You are already subscribed."}, nil
	}

	if err := s.contactRepo.CreateSubscriber(&models.Subscriber{Email: normalized}); err != nil {
		return nil, err
	}

	if userID != "" {
		if err := s.notificationService.NotifySubscribed(userID); err != nil {
			logger.CtxWarn(ctx, "failed to emit subscription notification", "error", err, "user_id", userID)
		}
	}
	return &dto.MessageResponse{Message: msgSubscribed}, nil
}
