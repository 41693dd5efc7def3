package repositories

import (
	"strings"

	"gorm.io/gorm"

	"talenthub_backend/internal/models"
)

type SkillRepository interface {
	GetOrCreate(name string) (*models.Skill, error)
	ListAll() ([]models.Skill, error)
}

type SkillRepositoryImpl struct {
	db *gorm.DB
}

func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &SkillRepositoryImpl{db: db}
}

func (r *SkillRepositoryImpl) GetOrCreate(name string) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("name = ?", strings.TrimSpace(name)).
		FirstOrCreate(&skill, models.Skill{Name: strings.TrimSpace(name)}).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepositoryImpl) ListAll() ([]models.Skill, error) {
	var skills []models.Skill
	err := r.db.Order("name ASC").Find(&skills).Error
	if err != nil {
		return nil, err
	}
	return skills, nil
}
