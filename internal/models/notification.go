package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	NotificationTypeReview        = "review_received"
	NotificationTypeProfileUpdate = "profile_updated"
	NotificationTypeSubscription  = "subscribed"
	NotificationTypeContact       = "contact_received"
)

// Notification is an in-app, per-user message row. Rows are created only by
// server-side trigger logic and move through a single transition:
// unread -> read, via the owner's bulk mark-read.
type Notification struct {
	BaseModel
	UserID  string         `gorm:"not null;index"`
	Type    string         `gorm:"not null"` // "review_received", "profile_updated", ...
	Message string         `gorm:"not null"`
	Data    datatypes.JSON `gorm:"type:jsonb"` // {"review_id": "...", "rating": 5}
	IsRead  bool           `gorm:"default:false"`
	ReadAt  *time.Time
}
