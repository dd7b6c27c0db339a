package main

import (
	"context"
	"fmt"

	"github.com/anonto42/microblog/backend/internal/logging"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"gorm.io/gorm"
)

var demoUsers = []string{
	"Ivan Ivanov",
	"Maria Smirnova",
	"Alexei Popov",
	"Elena Kuznetsova",
	"Dmitry Volkov",
}

// demoTweets maps author index to content
var demoTweets = []struct {
	author  int
	content string
}{
	{0, "Hi, this is my first tweet!"},
	{1, "How is your day going?"},
	{0, "Great weather today!"},
	{2, "Working on an interesting project"},
	{3, "Meeting friends tonight"},
}

var demoFollows = [][2]int{{1, 0}, {2, 0}, {3, 1}, {0, 2}, {4, 0}}

// demoLikes pairs a user index with a tweet index
var demoLikes = [][2]int{{1, 0}, {2, 0}, {3, 1}, {4, 0}}

func seedDemo(db *gorm.DB) error {
	if err := resetTables(db); err != nil {
		return err
	}

	store := repositories.NewStore(db)
	return store.Transaction(context.Background(), func(tx *repositories.Store) error {
		users := make([]models.User, len(demoUsers))
		for i, name := range demoUsers {
			users[i] = models.User{Name: name, APIKey: fmt.Sprintf("user%d_api_key", i+1)}
			if err := tx.Users.CreateUser(&users[i]); err != nil {
				return err
			}
		}

		tweets := make([]models.Tweet, len(demoTweets))
		for i, t := range demoTweets {
			tweets[i] = models.Tweet{Content: t.content, AuthorID: users[t.author].ID}
			if err := tx.Tweets.CreateTweet(&tweets[i]); err != nil {
				return err
			}
		}

		for _, f := range demoFollows {
			if err := tx.Follows.CreateFollow(&models.Follow{FollowerID: users[f[0]].ID, FollowingID: users[f[1]].ID}); err != nil {
				return err
			}
		}

		for _, l := range demoLikes {
			if err := tx.Likes.CreateLike(&models.Like{UserID: users[l[0]].ID, TweetID: tweets[l[1]].ID}); err != nil {
				return err
			}
		}

		stored, err := tx.Users.GetUsers()
		if err != nil {
			return err
		}
		for _, u := range stored {
			logging.Info().Uint("id", u.ID).Str("name", u.Name).Str("api_key", u.APIKey).Msg("demo user")
		}

		logging.Info().
			Int("users", len(stored)).
			Int("tweets", len(tweets)).
			Int("follows", len(demoFollows)).
			Int("likes", len(demoLikes)).
			Msg("demo data loaded")
		return nil
	})
}

// resetTables empties every table, children first.
func resetTables(db *gorm.DB) error {
	for _, table := range []string{"likes", "follows", "tweet_media", "tweets", "media", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}
	return nil
}
