package handlers

import (
	"net/http"

	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	store *repositories.Store
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(store *repositories.Store) *FeedHandler {
	return &FeedHandler{store: store}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group, auth echo.MiddlewareFunc) {
	g.GET("/tweets", h.GetFeed, auth)
}

// GetFeed returns the caller's tweets and those of everyone they follow,
// newest first. There is no pagination.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	user := middleware.CurrentUser(c)

	var tweets []models.Tweet
	err := h.store.Transaction(c.Request().Context(), func(tx *repositories.Store) error {
		authorIDs, err := tx.Follows.GetFollowingIDs(user.ID)
		if err != nil {
			return err
		}
		authorIDs = append(authorIDs, user.ID)

		tweets, err = tx.Tweets.GetTweetsByAuthors(authorIDs)
		return err
	})
	if err != nil {
		return wrapError(err)
	}

	feed := make([]models.FeedTweet, 0, len(tweets))
	for _, t := range tweets {
		feed = append(feed, t.ToFeed())
	}

	return c.JSON(http.StatusOK, echo.Map{"result": true, "tweets": feed})
}
