package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/config"
	"jobportal_backend/internal/handlers"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/middleware"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/pkg/email"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/routes"
	"jobportal_backend/internal/services"
	"jobportal_backend/internal/validator"
	"jobportal_backend/internal/workers"
	"jobportal_backend/ws"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the services rely on.
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

	if err := migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ginRouter := SetupRouter(ctx, cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter wires repositories, services, handlers, and background
// workers onto a gin engine. The context bounds the lifetime of the
// dispatcher and worker goroutines.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// Repositories
	userRepo := repositories.NewUserRepository(gormDB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	applicationRepo := repositories.NewApplicationRepository(gormDB)
	notificationRepo := repositories.NewNotificationRepository(gormDB)

	// Websocket hub
	wsManager := ws.NewManager()
	go wsManager.Run()

	// Email
	emailSender := buildEmailSender(cfg)

	// Dispatcher
	dispatcher := services.NewDispatcher(
		cfg.Notifications.QueueSize, notificationRepo, userRepo, wsManager, emailSender)
	go dispatcher.Run(ctx)

	// Services
	container := &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo, refreshTokenRepo, dispatcher),
		UserService:         services.NewUserService(userRepo),
		JobService:          services.NewJobService(jobRepo),
		ApplicationService:  services.NewApplicationService(applicationRepo, jobRepo, userRepo, dispatcher),
		NotificationService: services.NewNotificationService(notificationRepo),
		Dispatcher:          dispatcher,
	}

	// Handlers
	appHandlers := handlers.NewAppHandlers(container, validator.New())
	wsHandler := ws.NewHandler(wsManager, container.NotificationService)

	// Workers
	jobWorker := workers.NewJobWorker(jobRepo, notificationRepo)
	jobWorker.Start(ctx)

	ginRouter := initializeGinRouter(gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, wsHandler)

	return ginRouter
}

func buildEmailSender(cfg *config.Config) email.Sender {
	if !cfg.Email.Enabled {
		logger.Warn("Email delivery disabled, using no-op sender")
		return email.NoopSender{}
	}

	emailCfg := email.DefaultConfig()
	emailCfg.SMTPHost = cfg.Email.SMTPHost
	emailCfg.SMTPPort = cfg.Email.SMTPPort
	emailCfg.Username = cfg.Email.SMTPUsername
	emailCfg.Password = cfg.Email.SMTPPassword
	emailCfg.FromEmail = cfg.Email.FromEmail
	emailCfg.FromName = cfg.Email.FromName
	emailCfg.UseTLS = cfg.Email.UseTLS
	emailCfg.UseSSL = cfg.Email.UseSSL
	emailCfg.FrontendURL = cfg.Email.FrontendURL
	if cfg.Email.TemplatesDir != "" {
		emailCfg.TemplatePath = cfg.Email.TemplatesDir
	}

	sender, err := email.NewSMTPSender(emailCfg)
	if err != nil {
		logger.Fatal("Failed to initialize email sender", "error", err)
	}
	return sender
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

func migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to enable uuid-ossp: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Job{},
		&models.Application{},
		&models.ApplicationStatusChange{},
		&models.ApplicationNote{},
		&models.Notification{},
	)
}

// seedFirstAdmin creates the bootstrap admin account when configured.
// Admin accounts cannot be self-registered.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}

	var existing models.User
	result := db.Where("email = ?", adminEmail).First(&existing)
	if result.Error == nil {
		logger.Info("Admin user already exists, skipping creation", "email", adminEmail)
		return nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Email:        adminEmail,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
		FirstName:    "Platform",
		LastName:     "Admin",
		IsActive:     true,
	}
	if err := db.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Created first admin user", "email", adminEmail)
	return nil
}
