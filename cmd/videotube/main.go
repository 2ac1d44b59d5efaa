package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/videotube/internal/adapters/llm"
	"github.com/SscSPs/videotube/internal/adapters/media"
	"github.com/SscSPs/videotube/internal/core/services"
	"github.com/SscSPs/videotube/internal/handlers"
	"github.com/SscSPs/videotube/internal/middleware"
	"github.com/SscSPs/videotube/internal/platform/config"
	"github.com/SscSPs/videotube/internal/repositories/database/pgsql"
	"github.com/SscSPs/videotube/internal/utils"
	"github.com/SscSPs/videotube/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title VideoTube API
// @version 1.0
// @description Video sharing backend: channels, videos, comments, tweets, likes, playlists and subscriptions.

// @host localhost:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	mediaStore, err := media.NewS3Store(ctx, cfg.S3, logger)
	if err != nil {
		logger.Error("Failed to initialize media store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	options := []services.ContainerOption{services.WithMediaStore(mediaStore)}
	if cfg.OpenAIAPIKey != "" {
		options = append(options, services.WithDescriptionGenerator(llm.NewOpenAIDescriber(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)))
	} else {
		logger.Warn("OPENAI_API_KEY not set, AI descriptions are disabled")
	}

	authLimiter, err := middleware.NewRateLimiter(ctx, cfg.LoginRateLimit, cfg.RedisURL)
	if err != nil {
		logger.Error("Failed to initialize rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	if err := middleware.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(dbPool), options...)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, handlers.RouterOptions{
		AuthLimiter: authLimiter,
		Analytics:   posthogClient,
	})

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
