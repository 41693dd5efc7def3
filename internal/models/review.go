package models

type Review struct {
	BaseModel
	ProfileID string `gorm:"not null;index"` // the talent being reviewed
	AuthorID  string `gorm:"not null;index"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Comment   string

	// Relations
	Profile Profile `gorm:"foreignKey:ProfileID"`
	Author  User    `gorm:"foreignKey:AuthorID"`
}
