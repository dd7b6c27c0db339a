package router

import (
	"github.com/anonto42/microblog/backend/internal/handlers"
	"github.com/anonto42/microblog/backend/internal/logging"
	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/anonto42/microblog/backend/pkg/storage"
	"github.com/anonto42/microblog/backend/validators"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes and injects dependencies.
// maxBodySize caps request bodies on the routes that accept one (e.g. "16M").
func SetupRoutes(e *echo.Echo, db *gorm.DB, mediaStorage storage.MediaStorage, maxBodySize string) {
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = handlers.ErrorHandler

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Uploaded files, referenced by feed attachments
	e.Static("/uploads", mediaStorage.Dir())

	store := repositories.NewStore(db)
	auth := middleware.APIKeyAuthMiddleware(store.Users)
	bodyLimit := echomw.BodyLimit(maxBodySize)

	api := e.Group("/api")

	tweetHandler := handlers.NewTweetHandler(store)
	tweetHandler.RegisterTweetRoutes(api, auth, bodyLimit)

	feedHandler := handlers.NewFeedHandler(store)
	feedHandler.RegisterFeedRoutes(api, auth)

	mediaHandler := handlers.NewMediaHandler(store, mediaStorage)
	mediaHandler.RegisterMediaRoutes(api, auth, bodyLimit)

	likeHandler := handlers.NewLikeHandler(store)
	likeHandler.RegisterLikeRoutes(api, auth)

	followHandler := handlers.NewFollowHandler(store)
	followHandler.RegisterFollowRoutes(api, auth)

	userHandler := handlers.NewUserHandler(store)
	userHandler.RegisterProfileRoutes(api, auth)

	logging.Debug().Int("routes", len(e.Routes())).Msg("all routes configured")
}
