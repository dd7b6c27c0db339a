package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/anonto42/microblog/backend/validators"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// TweetHandler handles creating and deleting tweets
type TweetHandler struct {
	store *repositories.Store
}

// NewTweetHandler creates a new TweetHandler
func NewTweetHandler(store *repositories.Store) *TweetHandler {
	return &TweetHandler{store: store}
}

// RegisterTweetRoutes registers tweet routes; all of them require auth.
// bodyLimit runs after auth so an unauthenticated request is always a 401.
func (h *TweetHandler) RegisterTweetRoutes(g *echo.Group, auth, bodyLimit echo.MiddlewareFunc) {
	g.POST("/tweets", h.CreateTweet, auth, bodyLimit)
	g.DELETE("/tweets/:id", h.DeleteTweet, auth)
}

// CreateTweet handles POST /api/tweets. Media ids the caller does not own
// are ignored.
func (h *TweetHandler) CreateTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)

	if c.Request().ContentLength == 0 {
		return models.NewBadRequestError("No data provided")
	}
	var req models.CreateTweetRequest
	if err := (&echo.DefaultBinder{}).BindBody(c, &req); err != nil {
		return models.NewBadRequestError("Invalid request body")
	}

	if req.TweetData == "" && len(req.TweetMediaIDs) == 0 {
		return models.NewValidationError("Either tweet text or media is required")
	}
	if err := c.Validate(&req); err != nil {
		return models.NewValidationError(validators.Message(err))
	}

	var tweet models.Tweet
	err := h.store.Transaction(c.Request().Context(), func(tx *repositories.Store) error {
		media, err := tx.Media.GetOwnedMedia(user.ID, req.TweetMediaIDs)
		if err != nil {
			return err
		}
		tweet = models.Tweet{Content: req.TweetData, AuthorID: user.ID, Media: media}
		return tx.Tweets.CreateTweet(&tweet)
	})
	if err != nil {
		return wrapError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"result": true, "tweet_id": tweet.ID})
}

// DeleteTweet handles DELETE /api/tweets/:id
func (h *TweetHandler) DeleteTweet(c echo.Context) error {
	user := middleware.CurrentUser(c)

	tweetID, err := parseIDParam(c, "id")
	if err != nil {
		return models.NewBadRequestError("Invalid tweet ID")
	}

	err = h.store.Transaction(c.Request().Context(), func(tx *repositories.Store) error {
		tweet, err := tx.Tweets.GetTweetByID(tweetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("Tweet not found")
			}
			return err
		}
		if tweet.AuthorID != user.ID {
			return models.NewForbiddenError("You can only delete your own tweets")
		}
		return tx.Tweets.DeleteTweet(tweet)
	})
	if err != nil {
		return wrapError(err)
	}

	return c.JSON(http.StatusOK, success())
}
