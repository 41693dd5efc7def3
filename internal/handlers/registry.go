package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	ReviewHandler       *ReviewHandler
	NotificationHandler *NotificationHandler
	ContactHandler      *ContactHandler
	BlogHandler         *BlogHandler
	UploadHandler       *UploadHandler
	HealthHandler       *HealthHandler
}
