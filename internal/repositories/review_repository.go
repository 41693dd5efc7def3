package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talenthub_backend/internal/models"
)

var (
	ErrReviewNotFound      = errors.New("review not found")
	ErrInvalidReviewRating = errors.New("rating must be between 1 and 5")
)

type ReviewRepository interface {
	Create(review *models.Review) error
	FindByProfile(profileID string) ([]models.Review, error)
	CountByProfile(profileID string) (int64, error)
	AverageRating(profileID string) (float64, error)
}

type ReviewRepositoryImpl struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &ReviewRepositoryImpl{db: db}
}

func validateReview(review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReviewRating
	}
	return nil
}

func (r *ReviewRepositoryImpl) Create(review *models.Review) error {
	if err := validateReview(review); err != nil {
		return err
	}
	return r.db.Create(review).Error
}

func (r *ReviewRepositoryImpl) FindByProfile(profileID string) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Author").
		Where("profile_id = ?", profileID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepositoryImpl) CountByProfile(profileID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Review{}).Where("profile_id = ?", profileID).Count(&count).Error
	return count, err
}

// AverageRating returns the raw mean of all ratings for the profile,
// zero when it has no reviews. Rounding for display is the caller's job.
func (r *ReviewRepositoryImpl) AverageRating(profileID string) (float64, error) {
	var avg float64
	err := r.db.Model(&models.Review{}).
		Where("profile_id = ?", profileID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	return avg, err
}
