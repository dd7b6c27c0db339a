package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// FollowHandler handles follow/unfollow HTTP requests
type FollowHandler struct {
	store *repositories.Store
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(store *repositories.Store) *FollowHandler {
	return &FollowHandler{store: store}
}

// RegisterFollowRoutes registers follow-related routes
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/users/:id/follow", h.FollowUser, auth)
	g.DELETE("/users/:id/follow", h.UnfollowUser, auth)
}

// FollowUser follows a user
func (h *FollowHandler) FollowUser(c echo.Context) error {
	user := middleware.CurrentUser(c)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.NewBadRequestError("Invalid user ID")
	}

	err = h.store.Transaction(c.Request().Context(), func(tx *repositories.Store) error {
		if err := ensureUserExists(tx, targetID); err != nil {
			return err
		}
		if targetID == user.ID {
			return models.NewBadRequestError("You cannot follow yourself")
		}

		isFollowing, err := tx.Follows.IsFollowing(user.ID, targetID)
		if err != nil {
			return err
		}
		if isFollowing {
			return models.NewConflictError("Already following this user")
		}

		follow := &models.Follow{FollowerID: user.ID, FollowingID: targetID}
		if err := tx.Follows.CreateFollow(follow); err != nil {
			if repositories.IsDuplicateKey(err) {
				return models.NewConflictError("Already following this user")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return wrapError(err)
	}

	return c.JSON(http.StatusOK, success())
}

// UnfollowUser unfollows a user
func (h *FollowHandler) UnfollowUser(c echo.Context) error {
	user := middleware.CurrentUser(c)

	targetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.NewBadRequestError("Invalid user ID")
	}

	err = h.store.Transaction(c.Request().Context(), func(tx *repositories.Store) error {
		if err := ensureUserExists(tx, targetID); err != nil {
			return err
		}
		if err := tx.Follows.DeleteFollow(user.ID, targetID); err != nil {
			if errors.Is(err, repositories.ErrFollowNotFound) {
				return models.NewNotFoundError("Not following this user")
			}
			return err
		}
		return nil
	})
	if err != nil {
		return wrapError(err)
	}

	return c.JSON(http.StatusOK, success())
}

func ensureUserExists(tx *repositories.Store, userID uint) error {
	if _, err := tx.Users.GetUserByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("User not found")
		}
		return err
	}
	return nil
}
