package models

type BlogPost struct {
	BaseModel
	Title    string `gorm:"not null"`
	Category string `gorm:"default:'News'"` // e.g. Tips, Community
	ImageURL string
	Excerpt  string
	Content  string
}
