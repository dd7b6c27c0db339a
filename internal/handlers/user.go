package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to user profiles
type UserHandler struct {
	store *repositories.Store
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(store *repositories.Store) *UserHandler {
	return &UserHandler{store: store}
}

// RegisterProfileRoutes registers profile routes. Only /users/me needs a
// key; any profile can be read by id anonymously.
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/users/me", h.GetCurrentUser, auth)
	g.GET("/users/:id", h.GetUser)
}

// GetCurrentUser returns the authenticated user's profile
func (h *UserHandler) GetCurrentUser(c echo.Context) error {
	user := middleware.CurrentUser(c)

	profile, err := h.loadProfile(c.Request().Context(), user.ID)
	if err != nil {
		return wrapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "user": profile})
}

// GetUser returns another user's profile by ID
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return models.NewBadRequestError("Invalid user ID")
	}

	profile, err := h.loadProfile(c.Request().Context(), id)
	if err != nil {
		return wrapError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"result": true, "user": profile})
}

func (h *UserHandler) loadProfile(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := h.store.Transaction(ctx, func(tx *repositories.Store) error {
		user, err := tx.Users.GetUserByID(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User not found")
			}
			return err
		}
		followers, err := tx.Follows.GetFollowers(user.ID)
		if err != nil {
			return err
		}
		following, err := tx.Follows.GetFollowing(user.ID)
		if err != nil {
			return err
		}
		profile = models.NewUserProfile(user, followers, following)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
