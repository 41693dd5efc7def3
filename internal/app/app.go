package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"talenthub_backend/database"
	"talenthub_backend/internal/config"
	"talenthub_backend/internal/email"
	"talenthub_backend/internal/handlers"
	"talenthub_backend/internal/logger"
	"talenthub_backend/internal/middleware"
	"talenthub_backend/internal/repositories"
	"talenthub_backend/internal/routes"
	"talenthub_backend/internal/services"
	"talenthub_backend/internal/storage"
	"talenthub_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.Migrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	serviceContainer := initializeServices(cfg, gormDB, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, storageInstance)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, gormDB *gorm.DB, storageInstance storage.Storage) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.SMTPHost != "" {
		emailProvider = email.NewGomailSender(cfg)
	} else {
		logger.Warn("SMTP is not configured, using the mock email provider")
		emailProvider = email.NewMockProvider()
	}

	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	profileRepo := repositories.NewProfileRepository(gormDB)
	skillRepo := repositories.NewSkillRepository(gormDB)
	reviewRepo := repositories.NewReviewRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)
	contactRepo := repositories.NewContactRepository(gormDB)
	blogRepo := repositories.NewBlogRepository(gormDB)

	notificationService := services.NewNotificationService(notificationRepo)
	authService := services.NewAuthService(gormDB, userRepo, refreshTokenRepo, emailProvider)
	profileService := services.NewProfileService(profileRepo, userRepo, skillRepo, reviewRepo, notificationRepo, notificationService)
	reviewService := services.NewReviewService(reviewRepo, profileRepo, userRepo, notificationService)
	contactService := services.NewContactService(contactRepo, emailProvider, notificationService)
	blogService := services.NewBlogService(blogRepo)

	return &services.ServiceContainer{
		AuthService:         authService,
		ProfileService:      profileService,
		ReviewService:       reviewService,
		NotificationService: notificationService,
		ContactService:      contactService,
		BlogService:         blogService,
		EmailService:        emailProvider,
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer, storageInstance storage.Storage) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		ProfileHandler:      handlers.NewProfileHandler(baseHandler, serviceContainer.ProfileService),
		ReviewHandler:       handlers.NewReviewHandler(baseHandler, serviceContainer.ReviewService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, serviceContainer.NotificationService),
		ContactHandler:      handlers.NewContactHandler(baseHandler, serviceContainer.ContactService),
		BlogHandler:         handlers.NewBlogHandler(baseHandler, serviceContainer.BlogService),
		UploadHandler:       handlers.NewUploadHandler(baseHandler, serviceContainer.ProfileService, storageInstance),
		HealthHandler:       handlers.NewHealthHandler(baseHandler),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
