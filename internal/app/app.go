package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"scholarly_backend/internal/auth"
	"scholarly_backend/internal/config"
	"scholarly_backend/internal/database"
	"scholarly_backend/internal/handlers"
	"scholarly_backend/internal/logger"
	"scholarly_backend/internal/metrics"
	"scholarly_backend/internal/middleware"
	"scholarly_backend/internal/routes"
	"scholarly_backend/internal/services"
	"scholarly_backend/internal/validator"
	"scholarly_backend/pkg/apperrors"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	if err := config.LoadConfig(); err != nil {
		logger.Fatal("Failed to load config", "error", err)
	}
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env, cfg.Server.LogLevel)
	logger.Info("Logger initialized", "env", cfg.Server.Env)
	apperrors.SetDebug(!cfg.IsProduction())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Error("Failed to close database", "error", err)
		}
	}()
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(gormDB); err != nil {
			logger.Fatal("Migration failed", "error", err)
		}
	}

	ginRouter, container := SetupRouter(cfg, gormDB)

	if err := seedFirstAdmin(gormDB, cfg, container.UserService); err != nil {
		// без админа управлять каталогом некому - не запускаем сервер
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "address", cfg.Address())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает репозитории, сервисы, хэндлеры и gin.Engine
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, *services.ServiceContainer) {
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.TokenTTL())
	repos := services.NewRepositories()

	// 1. Инициализируем сервисы
	serviceContainer := services.NewServiceContainer(repos, tokens, services.Pagination{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	})

	// 2. Инициализируем хэндлеры
	limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	appHandlers := initializeHandlers(cfg, serviceContainer, repos, tokens, limiter)

	// 3. Инициализируем Gin
	ginRouter := initializeGinRouter(cfg, gormDB)

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers, routes.Options{
		EnableDocs: !cfg.IsProduction(),
	})

	return ginRouter, serviceContainer
}

func initializeHandlers(
	cfg *config.Config,
	container *services.ServiceContainer,
	repos *services.Repositories,
	tokens *auth.TokenManager,
	limiter *middleware.RateLimiter,
) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator, tokens, repos.User, limiter)

	return &handlers.AppHandlers{
		HealthHandler:      handlers.NewHealthHandler(baseHandler),
		AuthHandler:        handlers.NewAuthHandler(baseHandler, container.AuthService, tokens.TTL(), cfg.IsProduction()),
		UserHandler:        handlers.NewUserHandler(baseHandler, container.UserService),
		ScholarshipHandler: handlers.NewScholarshipHandler(baseHandler, container.ScholarshipService),
		ApplicationHandler: handlers.NewApplicationHandler(baseHandler, container.ApplicationService),
		ReviewHandler:      handlers.NewReviewHandler(baseHandler, container.ReviewService),
		WishlistHandler:    handlers.NewWishlistHandler(baseHandler, container.WishlistService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(metrics.Middleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}

func seedFirstAdmin(db *gorm.DB, cfg *config.Config, userService services.UserService) error {
	if cfg.FirstAdminEmail == "" {
		logger.Warn("FIRST_ADMIN_EMAIL is not set. Skipping admin seeding.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := userService.EnsureAdmin(ctx, db, cfg.FirstAdminEmail); err != nil {
		return err
	}
	logger.Info("First admin ensured", "email", cfg.FirstAdminEmail)
	return nil
}
