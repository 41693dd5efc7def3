package models

type ContactMessage struct {
	BaseModel
	Name    string `gorm:"not null"`
	Email   string `gorm:"not null"`
	Subject string
	Message string
}

type Subscriber struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null"`
}
