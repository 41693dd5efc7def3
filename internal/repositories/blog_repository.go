package repositories

import (
	"errors"

	"gorm.io/gorm"

	"talenthub_backend/internal/models"
)

var ErrBlogPostNotFound = errors.New("blog post not found")

type BlogRepository interface {
	Create(post *models.BlogPost) error
	FindAll() ([]models.BlogPost, error)
	FindByID(id string) (*models.BlogPost, error)
	FindRelated(excludeID string, limit int) ([]models.BlogPost, error)
}

type BlogRepositoryImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *BlogRepositoryImpl) FindAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *BlogRepositoryImpl) FindByID(id string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) FindRelated(excludeID string, limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Where("id <> ?", excludeID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}
