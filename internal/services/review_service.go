package services

import (
	"context"
	"math"

	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
)

type ReviewService interface {
	Create(ctx context.Context, authorID, profileID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	ListByProfile(profileID string) (*dto.ReviewListResponse, error)
	AverageRating(profileID string) (float64, error)
}

type reviewService struct {
	reviewRepo          repositories.ReviewRepository
	profileRepo         repositories.ProfileRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) ReviewService {
	return &reviewService{
		reviewRepo:          reviewRepo,
		profileRepo:         profileRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// roundRating rounds a raw mean to one decimal place for display.
func roundRating(avg float64) float64 {
	return math.Round(avg*10) / 10
}

func (s *reviewService) Create(ctx context.Context, authorID, profileID string, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.FindByID(authorID)
	if err != nil {
		return nil, err
	}

	review := &models.Review{
		ProfileID: profileID,
		AuthorID:  authorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}

	// Best effort: the review is already saved, a failed notification
	// must not fail the request.
	if err := s.notificationService.NotifyReviewReceived(profile.UserID, review.ID, review.Rating, author.Username); err != nil {
		logger.CtxWarn(ctx, "failed to emit review notification",
			"error", err, "profile_id", profileID)
	}

	return &dto.ReviewResponse{
		ID:             review.ID,
		AuthorUsername: author.Username,
		Rating:         review.Rating,
		Comment:        review.Comment,
		CreatedAt:      review.CreatedAt,
	}, nil
}

func (s *reviewService) ListByProfile(profileID string) (*dto.ReviewListResponse, error) {
	if _, err := s.profileRepo.FindByID(profileID); err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByProfile(profileID)
	if err != nil {
		return nil, err
	}

	avg, err := s.reviewRepo.AverageRating(profileID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		responses = append(responses, dto.ReviewResponse{
			ID:             r.ID,
			AuthorUsername: r.Author.Username,
			Rating:         r.Rating,
			Comment:        r.Comment,
			CreatedAt:      r.CreatedAt,
		})
	}

	return &dto.ReviewListResponse{
		Reviews: responses,
		Average: roundRating(avg),
		Count:   int64(len(reviews)),
	}, nil
}

// AverageRating recomputes the displayed rating from the live review set.
// There is no cached copy anywhere, so a fresh scan is always correct.
func (s *reviewService) AverageRating(profileID string) (float64, error) {
	avg, err := s.reviewRepo.AverageRating(profileID)
	if err != nil {
		return 0, err
	}
	return roundRating(avg), nil
}
