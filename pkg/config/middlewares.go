package config

import (
	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware installs the global middleware chain. The body limit is
// not part of it; routes that read a body apply it after authentication.
func SetupMiddleware(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())
}
