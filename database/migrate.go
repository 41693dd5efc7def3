package database

import (
	"gorm.io/gorm"

	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/models"
)

// Migrate brings the schema up to date. The uuid-ossp extension backs the
// uuid_generate_v4() column defaults.
func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	err := db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Profile{},
		&models.Skill{},
		&models.Review{},
		&models.Notification{},
		&models.ContactMessage{},
		&models.Subscriber{},
		&models.BlogPost{},
	)
	if err != nil {
		return err
	}

	logger.Info("Database migration complete")
	return nil
}
