package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"talenthub_backend/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileSearchCriteria holds the browse page filters. All fields are
// optional; an empty criteria returns every profile.
type ProfileSearchCriteria struct {
	Query    string `form:"q"`
	Location string `form:"location"`
	Skill    string `form:"skill"`
}

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByID(id string) (*models.Profile, error)
	FindByUserID(userID string) (*models.Profile, error)
	Update(profile *models.Profile) error
	ReplaceSkills(profile *models.Profile, skills []models.Skill) error
	SetVerified(id string, verified bool) error
	SetProfilePic(id string, path string) error
	SetCoverPhoto(id string, path string) error
	Search(criteria ProfileSearchCriteria) ([]models.Profile, error)
	FindFeatured(limit int) ([]models.Profile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByID(id string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("User").Preload("Skills").First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.Preload("User").Preload("Skills").First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	return r.db.Model(profile).Updates(map[string]interface{}{
		"phone":       profile.Phone,
		"location":    profile.Location,
		"bio":         profile.Bio,
		"hourly_rate": profile.HourlyRate,
		"updated_at":  time.Now(),
	}).Error
}

// ReplaceSkills swaps the profile's skill set for the given one.
func (r *ProfileRepositoryImpl) ReplaceSkills(profile *models.Profile, skills []models.Skill) error {
	return r.db.Model(profile).Association("Skills").Replace(skills)
}

func (r *ProfileRepositoryImpl) SetVerified(id string, verified bool) error {
	result := r.db.Model(&models.Profile{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_verified": verified, "updated_at": time.Now()})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SetProfilePic(id string, path string) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).
		Updates(map[string]interface{}{"profile_pic": path, "updated_at": time.Now()}).Error
}

func (r *ProfileRepositoryImpl) SetCoverPhoto(id string, path string) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).
		Updates(map[string]interface{}{"cover_photo": path, "updated_at": time.Now()}).Error
}

// Search filters profiles for the browse page. The free-text query matches
// username, first name, bio and skill names case-insensitively; location is
// a case-insensitive substring match; skill is an exact skill name. All
// present filters combine with AND. The skills join can yield one row per
// matching skill, so results are deduplicated on the profile id.
func (r *ProfileRepositoryImpl) Search(criteria ProfileSearchCriteria) ([]models.Profile, error) {
	query := r.db.Model(&models.Profile{}).
		Joins("JOIN users ON users.id = profiles.user_id")

	if q := strings.TrimSpace(criteria.Query); q != "" {
		like := "%" + q + "%"
		query = query.
			Joins("LEFT JOIN profile_skills ON profile_skills.profile_id = profiles.id").
			Joins("LEFT JOIN skills ON skills.id = profile_skills.skill_id").
			Where("users.username ILIKE ? OR users.first_name ILIKE ? OR profiles.bio ILIKE ? OR skills.name ILIKE ?",
				like, like, like, like).
			Distinct("profiles.*")
	}

	if loc := strings.TrimSpace(criteria.Location); loc != "" {
		query = query.Where("profiles.location ILIKE ?", "%"+loc+"%")
	}

	if skill := strings.TrimSpace(criteria.Skill); skill != "" {
		query = query.Where(`EXISTS (
			SELECT 1 FROM profile_skills ps
			JOIN skills s ON s.id = ps.skill_id
			WHERE ps.profile_id = profiles.id AND s.name = ?)`, skill)
	}

	var profiles []models.Profile
	err := query.Preload("User").Preload("Skills").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// FindFeatured returns up to limit verified profiles for the landing page,
// falling back to unverified ones when there are not enough.
func (r *ProfileRepositoryImpl) FindFeatured(limit int) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Preload("User").Preload("Skills").
		Where("is_verified = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	if len(profiles) > 0 {
		return profiles, nil
	}
	err = r.db.Preload("User").Preload("Skills").
		Order("created_at DESC").
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
