package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"teleradiology-api/config"
	deliveryHttp "teleradiology-api/internal/delivery/http"
	"teleradiology-api/internal/delivery/http/handler"
	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/infrastructure/cache"
	"teleradiology-api/internal/infrastructure/database"
	"teleradiology-api/internal/repository"
	"teleradiology-api/internal/service"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/jwt"
	"teleradiology-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config, log *logrus.Logger) (*App, error) {
	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if cfg.DB.AutoMigrate {
		if err := migrateUp(cfg.DB, log); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// nil when REDIS_ENABLED=false
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	server, err := initializeServer(cfg, log, db, redisClient)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// SetupLogger configures the standard logrus logger from the app config.
func SetupLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

func migrateUp(cfg config.DBConfig, log *logrus.Logger) error {
	m, err := database.NewMigrator(database.MigrationURL(cfg), log)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) (*http.Server, error) {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Redis-backed state falls back to in-process stores when Redis is off
	store := service.NewMemoryStore()
	if redisClient != nil {
		store = service.NewRedisStore(redisClient)
	}
	limiter := service.NewRateLimiter(redisClient)
	mailer := service.NewMailer(cfg.SMTP, log)

	storage, err := service.NewFileStorage(context.Background(), cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository()
	contentRepo := repository.NewContentRepository()
	contactRepo := repository.NewContactRepository()
	appRepo := repository.NewApplicationRepository()
	leadRepo := repository.NewSalesLeadRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	auditService := service.NewAuditService(log, auditLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, auditService, jwtService, store, mailer, cfg.App.FrontendURL)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService, authUsecase)
	contentUsecase := usecase.NewContentUsecase(db, log, contentRepo, auditService)
	contactUsecase := usecase.NewContactUsecase(db, log, contactRepo, userRepo, auditService, mailer)
	applicationUsecase := usecase.NewApplicationUsecase(db, log, appRepo, auditService, mailer)
	leadUsecase := usecase.NewSalesLeadUsecase(db, log, leadRepo, userRepo, auditService)
	uploadUsecase := usecase.NewUploadUsecase(log, storage, "")
	dashboardUsecase := usecase.NewDashboardUsecase(db, log, userRepo, contentRepo, contactRepo, appRepo, leadRepo, store, cfg.Dashboard.CacheTTL)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Middleware
	errorHandler := middleware.NewErrorHandler(log, customValidator, cfg.App.IsProduction())
	authMiddleware := middleware.NewAuthMiddleware(jwtService, authUsecase, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS.Origins)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(limiter, cfg.RateLimit, jwtService, authUsecase, log)
	realIPMiddleware, err := middleware.NewRealIPMiddleware(cfg.RateLimit.TrustedProxies)
	if err != nil {
		return nil, err
	}

	// Handlers
	handlers := deliveryHttp.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, customValidator, errorHandler),
		User:        handler.NewUserHandler(userUsecase, customValidator, errorHandler),
		Content:     handler.NewContentHandler(contentUsecase, customValidator, errorHandler),
		Contact:     handler.NewContactHandler(contactUsecase, customValidator, errorHandler),
		Application: handler.NewApplicationHandler(applicationUsecase, customValidator, errorHandler),
		SalesLead:   handler.NewSalesLeadHandler(leadUsecase, customValidator, errorHandler),
		Upload:      handler.NewUploadHandler(uploadUsecase, errorHandler),
		Dashboard:   handler.NewDashboardHandler(dashboardUsecase, errorHandler),
		AuditLog:    handler.NewAuditLogHandler(auditLogUsecase, errorHandler),
		Health:      handler.NewHealthHandler(db, redisClient, log),
	}

	router := deliveryHttp.NewRouter(log, handlers, authMiddleware, corsMiddleware, rateLimitMiddleware, realIPMiddleware, errorHandler)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and blocks until it stops or a shutdown signal
// arrives.
func (app *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serverErr:
		app.Close()
		if ok {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		_ = app.RedisClient.Close()
	}
}
