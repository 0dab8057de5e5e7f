package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"repairhub/config"
	deliveryHttp "repairhub/internal/delivery/http"
	"repairhub/internal/delivery/http/handler"
	"repairhub/internal/delivery/http/middleware"
	"repairhub/internal/infrastructure/cache"
	"repairhub/internal/infrastructure/database"
	"repairhub/internal/infrastructure/mail"
	"repairhub/internal/repository"
	"repairhub/internal/service"
	"repairhub/internal/usecase"
	"repairhub/pkg/jwt"
	"repairhub/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if err := database.Seed(db, cfg.Mail.AdminEmail); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	userRepo := repository.NewUserRepository()
	bookingRepo := repository.NewBookingRepository()
	historyRepo := repository.NewBookingHistoryRepository()
	reportRepo := repository.NewCompletionReportRepository()
	artifactRepo := repository.NewProofArtifactRepository()
	paymentRepo := repository.NewPaymentRepository()
	notificationRepo := repository.NewNotificationRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize notifier
	mailer := mail.NewSMTPMailer(cfg.Mail)
	notifier := service.NewNotificationService(txManager, log, mailer, redisClient, notificationRepo, cfg.Mail, cfg.App.BaseURL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(txManager, log, userRepo, jwtService, redisClient)
	bookingUsecase := usecase.NewBookingUsecase(txManager, log, bookingRepo, userRepo)
	lifecycleUsecase := usecase.NewBookingLifecycleUsecase(txManager, log, bookingRepo, reportRepo, historyRepo, artifactRepo, userRepo, notifier)
	paymentUsecase := usecase.NewPaymentUsecase(txManager, log, bookingRepo, paymentRepo, lifecycleUsecase, notifier)
	notificationUsecase := usecase.NewNotificationUsecase(txManager, log, notificationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, jwtService, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, lifecycleUsecase, customValidator)
	adminHandler := handler.NewAdminBookingHandler(bookingUsecase, lifecycleUsecase, customValidator)
	engineerHandler := handler.NewEngineerBookingHandler(bookingUsecase, lifecycleUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	notificationHandler := handler.NewNotificationHandler(notificationUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, bookingHandler, adminHandler, engineerHandler, paymentHandler, notificationHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
