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

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	store *repositories.Store
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(store *repositories.Store) *LikeHandler {
	return &LikeHandler{store: store}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.POST("/tweets/:id/likes", h.LikeTweet, auth)
	g.DELETE("/tweets/:id/likes", h.UnlikeTweet, auth)
}

// LikeTweet handles liking a tweet
func (h *LikeHandler) LikeTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.NewBadRequestError("Invalid tweet ID")
	}

	err = h.store.Transaction(c.Request().Context(), func(tx *repositories.Store) error {
		if err := ensureTweetExists(tx, tweetID); err != nil {
			return err
		}

		hasLiked, err := tx.Likes.HasUserLikedTweet(tweetID, user.ID)
		if err != nil {
			return err
		}
		if hasLiked {
			return models.NewConflictError("Tweet already liked")
		}

		if err := tx.Likes.CreateLike(&models.Like{UserID: user.ID, TweetID: tweetID}); err != nil {
			if repositories.IsDuplicateKey(err) {
				return models.NewConflictError("Tweet already liked")
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

// UnlikeTweet handles removing a like
func (h *LikeHandler) UnlikeTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.NewBadRequestError("Invalid tweet ID")
	}

	err = h.store.Transaction(c.Request().Context(), func(tx *repositories.Store) error {
		if err := ensureTweetExists(tx, tweetID); err != nil {
			return err
		}
		if err := tx.Likes.DeleteLike(tweetID, user.ID); err != nil {
			if errors.Is(err, repositories.ErrLikeNotFound) {
				return models.NewNotFoundError("Like not found")
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

func ensureTweetExists(tx *repositories.Store, tweetID uint) error {
	if _, err := tx.Tweets.GetTweetByID(tweetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("Tweet not found")
		}
		return err
	}
	return nil
}
