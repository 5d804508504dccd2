package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hostelhub/config"
	deliveryHttp "hostelhub/internal/delivery/http"
	"hostelhub/internal/delivery/http/handler"
	"hostelhub/internal/delivery/http/middleware"
	"hostelhub/internal/infrastructure/cache"
	"hostelhub/internal/infrastructure/database"
	"hostelhub/internal/repository"
	"hostelhub/internal/service"
	"hostelhub/internal/usecase"
	"hostelhub/pkg/jwt"
	"hostelhub/pkg/validator"

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

	// Run schema migrations
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logrus.Info("Migrations applied successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

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
	userRepo := repository.NewUserRepository()
	hostelRepo := repository.NewHostelRepository()
	roomRepo := repository.NewRoomRepository()
	bookingRepo := repository.NewBookingRepository()
	studentRepo := repository.NewStudentRepository()
	paymentRepo := repository.NewPaymentRepository()
	maintenanceRepo := repository.NewMaintenanceRepository()
	reviewRepo := repository.NewReviewRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	auditService := service.NewAuditService(db, log, auditRepo)
	conversionService := service.NewStudentConversionService(log, studentRepo, userRepo, roomRepo)
	coordinator := service.NewOccupancyCoordinator(db, log, roomRepo, bookingRepo, studentRepo, userRepo, conversionService, auditService)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient, auditService)
	hostelUsecase := usecase.NewHostelUsecase(db, log, hostelRepo)
	roomUsecase := usecase.NewRoomUsecase(db, log, roomRepo, hostelRepo)
	bedUsecase := usecase.NewBedUsecase(db, log, roomRepo, hostelRepo, userRepo, bookingRepo, coordinator, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, roomRepo, hostelRepo, coordinator, auditService)
	studentUsecase := usecase.NewStudentUsecase(db, log, studentRepo, hostelRepo, conversionService, auditService)
	paymentUsecase := usecase.NewPaymentUsecase(db, log, paymentRepo, bookingRepo, hostelRepo, auditService)
	maintenanceUsecase := usecase.NewMaintenanceUsecase(db, log, maintenanceRepo, hostelRepo, roomRepo)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, bookingRepo, hostelRepo)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, jwtService, customValidator)
	hostelHandler := handler.NewHostelHandler(hostelUsecase, customValidator)
	roomHandler := handler.NewRoomHandler(roomUsecase, customValidator)
	bedHandler := handler.NewBedHandler(bedUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	studentHandler := handler.NewStudentHandler(studentUsecase)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceUsecase, customValidator)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		hostelHandler,
		roomHandler,
		bedHandler,
		bookingHandler,
		studentHandler,
		paymentHandler,
		maintenanceHandler,
		reviewHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
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

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
