package services

import (
	"context"

	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/services/dto"
)

const (
	defaultProfilePic          = "default.jpg"
	featuredProfileLimit       = 3
	dashboardNotificationLimit = 10
)

type ProfileService interface {
	GetByID(id string) (*dto.ProfileResponse, error)
	GetByUserID(userID string) (*dto.ProfileResponse, error)
	Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	Browse(criteria repositories.ProfileSearchCriteria) ([]dto.ProfileCard, error)
	Featured() ([]dto.ProfileCard, error)
	Dashboard(userID string) (*dto.DashboardResponse, error)
	SetProfilePic(userID string, path string) error
	SetCoverPhoto(userID string, path string) error
	SetVerified(profileID string, verified bool) error
}

type profileService struct {
	profileRepo         repositories.ProfileRepository
	userRepo            repositories.UserRepository
	skillRepo           repositories.SkillRepository
	reviewRepo          repositories.ReviewRepository
	notificationRepo    repositories.NotificationRepository
	notificationService NotificationService
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	skillRepo repositories.SkillRepository,
	reviewRepo repositories.ReviewRepository,
	notificationRepo repositories.NotificationRepository,
	notificationService NotificationService,
) ProfileService {
	return &profileService{
		profileRepo:         profileRepo,
		userRepo:            userRepo,
		skillRepo:           skillRepo,
		reviewRepo:          reviewRepo,
		notificationRepo:    notificationRepo,
		notificationService: notificationService,
	}
}

func (s *profileService) GetByID(id string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	return s.toProfileResponse(profile)
}

func (s *profileService) GetByUserID(userID string) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.toProfileResponse(profile)
}

// Update saves the account fields, the profile fields and the skill set in
// that order, then emits the confirmation notification. Unknown skill names
// are created on the fly.
func (s *profileService) Update(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	user := &profile.User
	user.Username = req.Username
	user.Email = req.Email
	user.FirstName = req.FirstName
	user.LastName = req.LastName
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	profile.Phone = req.Phone
	profile.Location = req.Location
	profile.Bio = req.Bio
	profile.HourlyRate = req.HourlyRate
	if err := s.profileRepo.Update(profile); err != nil {
		return nil, err
	}

	skills := make([]models.Skill, 0, len(req.Skills))
	for _, name := range req.Skills {
		skill, err := s.skillRepo.GetOrCreate(name)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *skill)
	}
	if err := s.profileRepo.ReplaceSkills(profile, skills); err != nil {
		return nil, err
	}

	if err := s.notificationService.NotifyProfileUpdated(userID); err != nil {
		logger.CtxWarn(ctx, "failed to emit profile update notification",
			"error", err, "user_id", userID)
	}

	updated, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.toProfileResponse(updated)
}

func (s *profileService) Browse(criteria repositories.ProfileSearchCriteria) ([]dto.ProfileCard, error) {
	profiles, err := s.profileRepo.Search(criteria)
	if err != nil {
		return nil, err
	}
	return s.toProfileCards(profiles)
}

// Featured returns the landing page selection: verified profiles first,
// padded with anyone when too few are verified.
func (s *profileService) Featured() ([]dto.ProfileCard, error) {
	profiles, err := s.profileRepo.FindFeatured(featuredProfileLimit)
	if err != nil {
		return nil, err
	}
	return s.toProfileCards(profiles)
}

// Dashboard assembles the talent's own overview: profile with fresh rating,
// completeness score, unread badge, the newest notifications and the
// reviews they have received.
func (s *profileService) Dashboard(userID string) (*dto.DashboardResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	response, err := s.toProfileResponse(profile)
	if err != nil {
		return nil, err
	}
	unread, err := s.notificationRepo.UnreadCount(userID)
	if err != nil {
		return nil, err
	}
	notifications, err := s.notificationRepo.FindByUser(userID, dashboardNotificationLimit)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.FindByProfile(profile.ID)
	if err != nil {
		return nil, err
	}

	reviewResponses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		reviewResponses = append(reviewResponses, dto.ReviewResponse{
			ID:             r.ID,
			AuthorUsername: r.Author.Username,
			Rating:         r.Rating,
			Comment:        r.Comment,
			CreatedAt:      r.CreatedAt,
		})
	}

	return &dto.DashboardResponse{
		Profile:       *response,
		Completeness:  profileCompleteness(profile),
		UnreadCount:   unread,
		Notifications: toNotificationResponses(notifications),
		Reviews:       reviewResponses,
	}, nil
}

func (s *profileService) SetProfilePic(userID string, path string) error {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return err
	}
	return s.profileRepo.SetProfilePic(profile.ID, path)
}

func (s *profileService) SetCoverPhoto(userID string, path string) error {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		return err
	}
	return s.profileRepo.SetCoverPhoto(profile.ID, path)
}

func (s *profileService) SetVerified(profileID string, verified bool) error {
	return s.profileRepo.SetVerified(profileID, verified)
}

// profileCompleteness scores a profile in 20% steps: bio, location, a
// non-default profile picture, a cover photo and at least one skill.
func profileCompleteness(profile *models.Profile) int {
	score := 0
	if profile.Bio != "" {
		score += 20
	}
	if profile.Location != "" {
		score += 20
	}
	if profile.ProfilePic != "" && profile.ProfilePic != defaultProfilePic {
		score += 20
	}
	if profile.CoverPhoto != "" {
		score += 20
	}
	if len(profile.Skills) > 0 {
		score += 20
	}
	return score
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, 0, len(skills))
	for _, skill := range skills {
		names = append(names, skill.Name)
	}
	return names
}

func (s *profileService) toProfileResponse(profile *models.Profile) (*dto.ProfileResponse, error) {
	avg, err := s.reviewRepo.AverageRating(profile.ID)
	if err != nil {
		return nil, err
	}
	count, err := s.reviewRepo.CountByProfile(profile.ID)
	if err != nil {
		return nil, err
	}
	return &dto.ProfileResponse{
		ID: profile.ID,
		User: dto.UserResponse{
			ID:        profile.User.ID,
			Username:  profile.User.Username,
			Email:     profile.User.Email,
			FirstName: profile.User.FirstName,
			LastName:  profile.User.LastName,
		},
		Phone:       profile.Phone,
		Location:    profile.Location,
		Bio:         profile.Bio,
		HourlyRate:  profile.HourlyRate,
		ProfilePic:  profile.ProfilePic,
		CoverPhoto:  profile.CoverPhoto,
		IsVerified:  profile.IsVerified,
		Skills:      skillNames(profile.Skills),
		Rating:      roundRating(avg),
		ReviewCount: count,
	}, nil
}

func (s *profileService) toProfileCards(profiles []models.Profile) ([]dto.ProfileCard, error) {
	cards := make([]dto.ProfileCard, 0, len(profiles))
	for i := range profiles {
		p := &profiles[i]
		avg, err := s.reviewRepo.AverageRating(p.ID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, dto.ProfileCard{
			ID:         p.ID,
			Username:   p.User.Username,
			FirstName:  p.User.FirstName,
			Location:   p.Location,
			Bio:        p.Bio,
			HourlyRate: p.HourlyRate,
			ProfilePic: p.ProfilePic,
			IsVerified: p.IsVerified,
			Skills:     skillNames(p.Skills),
			Rating:     roundRating(avg),
		})
	}
	return cards, nil
}
