package app

import (
	"errors"
	"fmt"

	"jobmarket_backend/database"
	"jobmarket_backend/internal/config"
	"jobmarket_backend/internal/email"
	"jobmarket_backend/internal/handlers"
	"jobmarket_backend/internal/logger"
	"jobmarket_backend/internal/middleware"
	"jobmarket_backend/internal/models"
	"jobmarket_backend/internal/repositories"
	"jobmarket_backend/internal/routes"
	"jobmarket_backend/internal/services"
	"jobmarket_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	gormDB, err := database.ConnectGorm()
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

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	if err := seedFirstAdmin(gormDB, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := InitializeServices(cfg, gormDB)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

// InitializeServices wires repositories into the service container. Tests
// call it with a transactional *gorm.DB.
func InitializeServices(cfg *config.Config, gormDB *gorm.DB) *services.ServiceContainer {
	var emailProvider email.Provider
	if cfg.Email.Enabled {
		emailProvider = email.NewSMTPProvider(cfg)
	} else {
		logger.Warn("Email sending disabled, using noop provider")
		emailProvider = email.NewNoopProvider()
	}

	userRepo := repositories.NewUserRepository(gormDB)
	jobRepo := repositories.NewJobRepository(gormDB)
	appRepo := repositories.NewApplicationRepository(gormDB)
	complaintRepo := repositories.NewComplaintRepository(gormDB)
	serviceRepo := repositories.NewServiceRepository(gormDB)
	analyticsRepo := repositories.NewAnalyticsRepository(gormDB)

	authService := services.NewAuthService(userRepo)
	jobService := services.NewJobService(jobRepo, appRepo, userRepo)
	providerService := services.NewProviderService(serviceRepo, appRepo, userRepo, analyticsRepo)
	agentService := services.NewAgentService(userRepo, complaintRepo, jobRepo, analyticsRepo, emailProvider)
	complaintService := services.NewComplaintService(complaintRepo, userRepo)
	adminService := services.NewAdminService(userRepo, jobRepo, complaintRepo, analyticsRepo)

	return &services.ServiceContainer{
		AuthService:      authService,
		JobService:       jobService,
		ProviderService:  providerService,
		AgentService:     agentService,
		ComplaintService: complaintService,
		AdminService:     adminService,
		EmailProvider:    emailProvider,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, services.AuthService),
		JobHandler:       handlers.NewJobHandler(baseHandler, services.JobService),
		ProviderHandler:  handlers.NewProviderHandler(baseHandler, services.ProviderService),
		AgentHandler:     handlers.NewAgentHandler(baseHandler, services.AgentService),
		ComplaintHandler: handlers.NewComplaintHandler(baseHandler, services.ComplaintService),
		AdminHandler:     handlers.NewAdminHandler(baseHandler, services.AdminService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	return router
}

// seedFirstAdmin creates the bootstrap admin account when the configured
// email does not exist yet. Admins never go through signup.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var adminUser models.User
	result := tx.Where("email = ?", adminEmail).First(&adminUser)

	if result.Error == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		tx.Rollback()
		return nil
	}

	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", result.Error)
	}

	logger.Warn("No admin user found with specified email. Creating first admin...", "email", adminEmail)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	newAdmin := &models.User{
		Email:        adminEmail,
		PasswordHash: string(hashedPassword),
		Role:         models.UserRoleAdmin,
		Status:       models.UserStatusVerified,
		FirstName:    "Platform",
		LastName:     "Admin",
	}

	if err := tx.Create(newAdmin).Error; err != nil {
		return fmt.Errorf("failed to create admin user in database: %w", err)
	}

	logger.Info("Successfully created first admin user", "email", adminEmail)

	return tx.Commit().Error
}
