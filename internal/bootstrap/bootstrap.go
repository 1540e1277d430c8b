// Package bootstrap wires configuration, the store, services,
// controllers and the router together.
package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/teamsync/teamsync/internal/app/controllers"
	appRoutes "github.com/teamsync/teamsync/internal/app/routes"
	appServices "github.com/teamsync/teamsync/internal/app/services"
	"github.com/teamsync/teamsync/internal/config"
	appMiddleware "github.com/teamsync/teamsync/internal/middleware"
	"github.com/teamsync/teamsync/internal/pkg/apperrors"
	"github.com/teamsync/teamsync/internal/pkg/logger"
	"github.com/teamsync/teamsync/internal/seed"
	"github.com/teamsync/teamsync/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                  *store.Store
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	MeetingService         appServices.MeetingService
	FeedService            appServices.FeedService
	NotificationService    appServices.NotificationService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	MeetingController      *appControllers.MeetingController
	PostController         *appControllers.PostController
	NotificationController *appControllers.NotificationController
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore creates the in-memory store and seeds it with demo data
// when seeding is enabled. All data lives in process memory and is
// lost on restart.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) *store.Store {
	s := store.New()
	if cfg.Seed.Enabled {
		seed.CreateDefaultData(s, lgr)
	}
	return s
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(s *store.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Store: s, Logger: lgr}

	deps.AuthService = appServices.NewAuthService(s, lgr)
	deps.UserService = appServices.NewUserService(s, lgr)
	deps.MeetingService = appServices.NewMeetingService(s, lgr)
	deps.FeedService = appServices.NewFeedService(s, lgr)
	deps.NotificationService = appServices.NewNotificationService(s, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.MeetingController = appControllers.NewMeetingController(deps.MeetingService)
	deps.PostController = appControllers.NewPostController(deps.FeedService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.CORS.AllowedOrigins))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.MeetingController,
		deps.PostController,
		deps.NotificationController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	router.NoRoute(func(c *gin.Context) {
		appMiddleware.HandleAPIError(c, apperrors.NewResourceNotFoundError("Route not found: "+c.Request.URL.Path))
	})

	return router
}
