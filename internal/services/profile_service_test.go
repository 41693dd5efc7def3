package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"talenthub_backend/internal/models"
)

func TestProfileCompleteness(t *testing.T) {
	rate := 40.0

	tests := []struct {
		name     string
		profile  models.Profile
		expected int
	}{
		{
			name:     "empty profile",
			profile:  models.Profile{ProfilePic: "default.jpg"},
			expected: 0,
		},
		{
			name: "bio and location only",
			profile: models.Profile{
				Bio:        "Full-stack developer.",
				Location:   "Lagos, Nigeria",
				ProfilePic: "default.jpg",
			},
			expected: 40,
		},
		{
			name: "default picture does not count",
			profile: models.Profile{
				Bio:        "x",
				Location:   "x",
				ProfilePic: "default.jpg",
				CoverPhoto: "covers/c.jpg",
				Skills:     []models.Skill{{Name: "Web Development"}},
			},
			expected: 80,
		},
		{
			name: "complete profile",
			profile: models.Profile{
				Bio:        "Full-stack developer.",
				Location:   "Lagos, Nigeria",
				HourlyRate: &rate,
				ProfilePic: "avatars/a.jpg",
				CoverPhoto: "covers/c.jpg",
				Skills:     []models.Skill{{Name: "Web Development"}},
			},
			expected: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, profileCompleteness(&tt.profile))
		})
	}
}

func TestSkillNames(t *testing.T) {
	skills := []models.Skill{{Name: "Web Development"}, {Name: "UI/UX Design"}}
	assert.Equal(t, []string{"Web Development", "UI/UX Design"}, skillNames(skills))
	assert.Empty(t, skillNames(nil))
}
