package services

import (
	"talenthub_backend/internal/email"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	ReviewService       ReviewService
	NotificationService NotificationService
	ContactService      ContactService
	BlogService         BlogService
	EmailService        email.Provider
}
