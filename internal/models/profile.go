package models

// Profile is a talent's public-facing record. One per user, created at
// registration. The average rating is intentionally not stored here: it is
// recomputed from the review set on every read.
type Profile struct {
	BaseModel
	UserID     string `gorm:"uniqueIndex;not null"`
	Phone      string
	Location   string // free text, e.g. "Lagos, Nigeria"
	Bio        string
	HourlyRate *float64
	ProfilePic string `gorm:"default:'default.jpg'"` // storage reference path
	CoverPhoto string
	IsVerified bool `gorm:"default:false"`

	// Relations
	User    User     `gorm:"foreignKey:UserID"`
	Skills  []Skill  `gorm:"many2many:profile_skills"`
	Reviews []Review `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// Skill is a named tag attached to profiles, created with get-or-create
// semantics during seeding and profile updates.
type Skill struct {
	BaseModel
	Name string `gorm:"uniqueIndex;not null"`
}
