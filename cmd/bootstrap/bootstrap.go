package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mdent-api/config"
	deliveryHttp "mdent-api/internal/delivery/http"
	"mdent-api/internal/delivery/http/handler"
	"mdent-api/internal/delivery/http/middleware"
	"mdent-api/internal/infrastructure/cache"
	"mdent-api/internal/infrastructure/database"
	"mdent-api/internal/lifecycle"
	"mdent-api/internal/repository"
	"mdent-api/internal/usecase"
	"mdent-api/pkg/jwt"
	"mdent-api/pkg/validator"

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
	State       *lifecycle.State
	Log         *logrus.Logger
}

// New creates a new App instance with all dependencies initialized. The
// database dial retries internally, so the process survives a store that
// comes up later than it does.
func New() (*App, error) {
	app := &App{
		State: lifecycle.NewState(),
	}

	log := setupLogger()
	app.Log = log

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	log.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	server, err := initializeServer(cfg, db, redisClient, app.State, log)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

func setupLogger() *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)
	return log
}

func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, state *lifecycle.State, log *logrus.Logger) (*http.Server, error) {
	jwtService, err := jwt.NewJWTService(cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, redisClient)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo)

	// Handlers
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	healthHandler := handler.NewHealthHandler(state, sqlDB)
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, cfg.Seed, log)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator, log)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator, log)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit, log)

	router := deliveryHttp.NewRouter(
		healthHandler,
		authHandler,
		patientHandler,
		appointmentHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		rateLimiter,
		log,
	)
	httpRouter := router.Setup()

	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server, flips readiness, and handles graceful shutdown.
func (app *App) Run() {
	app.State.Transition(lifecycle.PhaseReady)

	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received, then drains:
// readiness starts failing, the listener closes, in-flight requests finish,
// connections close.
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Log.Info("Shutting down server...")
	app.State.Transition(lifecycle.PhaseDraining)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.State.Transition(lifecycle.PhaseStopped)

	app.Log.Info("Server shutdown complete")
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
