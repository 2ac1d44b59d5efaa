package handlers

import (
	"net/http"

	"github.com/SscSPs/videotube/cmd/docs"
	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	"github.com/SscSPs/videotube/internal/middleware"
	"github.com/SscSPs/videotube/internal/platform/config"
	"github.com/SscSPs/videotube/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouterOptions carries the optional collaborators of the HTTP layer.
type RouterOptions struct {
	// AuthLimiter throttles register, login and refresh per client IP. Nil disables throttling.
	AuthLimiter *limiter.Limiter
	// Analytics receives product events. Nil or uninitialized disables tracking.
	Analytics *utils.PosthogClientWrapper
}

// routeDeps is what every route group registration needs.
type routeDeps struct {
	cfg          *config.Config
	services     *portssvc.ServiceContainer
	requireAuth  gin.HandlerFunc
	optionalAuth gin.HandlerFunc
	authLimit    gin.HandlerFunc
	cookies      cookieOptions
	uploads      uploader
	analytics    *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	opts RouterOptions,
) {
	r.Use(cors.New(corsConfig(cfg)))

	r.GET("/health", getHealth)

	d := routeDeps{
		cfg:          cfg,
		services:     services,
		requireAuth:  middleware.AuthMiddleware(services.Token, services.User),
		optionalAuth: middleware.OptionalAuthMiddleware(services.Token, services.User),
		authLimit:    middleware.RateLimit(opts.AuthLimiter),
		cookies:      newCookieOptions(cfg),
		uploads:      uploader{tempDir: cfg.UploadTempDir, maxBytes: cfg.MaxUploadBytes},
		analytics:    opts.Analytics,
	}

	setupAPIV1Routes(r, d)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1", middleware.PosthogMiddleware(d.analytics))

	registerAuthRoutes(v1, d)
	registerUserRoutes(v1, d)
	registerGoogleOAuthRoutes(v1, d)
	registerVideoRoutes(v1, d)
	registerCommentRoutes(v1, d)
	registerTweetRoutes(v1, d)
	registerLikeRoutes(v1, d)
	registerPlaylistRoutes(v1, d)
	registerSubscriptionRoutes(v1, d)
	registerCategoryRoutes(v1, d)
	registerDashboardRoutes(v1, d)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSOrigins
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowOrigins = []string{cfg.FrontendBaseURL}
	}
	corsCfg.AllowCredentials = true
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete, http.MethodOptions}
	corsCfg.AddAllowHeaders("Authorization", "X-Request-ID")
	corsCfg.AddExposeHeaders("X-Request-ID")
	return corsCfg
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
