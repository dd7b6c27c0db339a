package middleware

import (
	"errors"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// APIKeyHeader carries the caller's credential
const APIKeyHeader = "api-key"

const userContextKey = "user"

// APIKeyAuthMiddleware resolves the api-key header to a user and stores it
// in the echo context. It runs before any request validation.
func APIKeyAuthMiddleware(users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey := c.Request().Header.Get(APIKeyHeader)
			if apiKey == "" {
				return models.NewUnauthorizedError("API key is required")
			}

			user, err := users.GetUserByAPIKey(apiKey)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return models.NewUnauthorizedError("Invalid API key")
				}
				return models.NewInternalError(err)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user set by APIKeyAuthMiddleware, or nil.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(userContextKey).(*models.User)
	return user
}
