package dto

// UpdateProfileRequest carries both the account fields and the profile
// fields edited on the settings page. Skills arrive as plain names and are
// created on the fly when unknown.
type UpdateProfileRequest struct {
	Username   string   `json:"username" validate:"required,min=3,max=150"`
	Email      string   `json:"email" validate:"required,email"`
	FirstName  string   `json:"first_name" validate:"max=150"`
	LastName   string   `json:"last_name" validate:"max=150"`
	Phone      string   `json:"phone" validate:"max=32"`
	Location   string   `json:"location" validate:"max=255"`
	Bio        string   `json:"bio" validate:"max=2000"`
	HourlyRate *float64 `json:"hourly_rate" validate:"omitempty,gte=0"`
	Skills     []string `json:"skills" validate:"max=20,dive,min=1,max=100"`
}

type ProfileResponse struct {
	ID          string       `json:"id"`
	User        UserResponse `json:"user"`
	Phone       string       `json:"phone,omitempty"`
	Location    string       `json:"location"`
	Bio         string       `json:"bio"`
	HourlyRate  *float64     `json:"hourly_rate"`
	ProfilePic  string       `json:"profile_pic"`
	CoverPhoto  string       `json:"cover_photo"`
	IsVerified  bool         `json:"is_verified"`
	Skills      []string     `json:"skills"`
	Rating      float64      `json:"rating"`
	ReviewCount int64        `json:"review_count"`
}

// ProfileCard is the condensed shape used by browse and home listings.
type ProfileCard struct {
	ID         string   `json:"id"`
	Username   string   `json:"username"`
	FirstName  string   `json:"first_name"`
	Location   string   `json:"location"`
	Bio        string   `json:"bio"`
	HourlyRate *float64 `json:"hourly_rate"`
	ProfilePic string   `json:"profile_pic"`
	IsVerified bool     `json:"is_verified"`
	Skills     []string `json:"skills"`
	Rating     float64  `json:"rating"`
}

type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}

type DashboardResponse struct {
	Profile       ProfileResponse        `json:"profile"`
	Completeness  int                    `json:"completeness"`
	UnreadCount   int64                  `json:"unread_count"`
	Notifications []NotificationResponse `json:"notifications"`
	Reviews       []ReviewResponse       `json:"reviews"`
}
