package handlers

import (
	"net/http"
	"testing"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeTweet(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	tweet := env.createTweet(t, alice, "like me")
	path := "/api/tweets/" + itoa(tweet.ID) + "/likes"

	rec := env.do(t, http.MethodPost, path, bob.APIKey, nil)
	requireSuccess(t, rec, http.StatusOK)

	liked, err := env.store.Likes.HasUserLikedTweet(tweet.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	rec = env.do(t, http.MethodPost, path, bob.APIKey, nil)
	body := requireError(t, rec, http.StatusConflict, models.KindConflict)
	assert.Equal(t, "Tweet already liked", body["error_message"])

	// authors may like their own tweets
	rec = env.do(t, http.MethodPost, path, alice.APIKey, nil)
	requireSuccess(t, rec, http.StatusOK)

	likes, err := env.store.Likes.GetLikesByTweetID(tweet.ID)
	require.NoError(t, err)
	assert.Len(t, likes, 2)
}

func TestLikeMissingTweet(t *testing.T) {
	env := newTestEnv(t)
	bob := env.createUser(t, "bob")

	rec := env.do(t, http.MethodPost, "/api/tweets/4242/likes", bob.APIKey, nil)
	requireError(t, rec, http.StatusNotFound, models.KindNotFound)

	rec = env.do(t, http.MethodDelete, "/api/tweets/4242/likes", bob.APIKey, nil)
	requireError(t, rec, http.StatusNotFound, models.KindNotFound)
}

func TestUnlikeTweet(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	tweet := env.createTweet(t, alice, "like me")
	path := "/api/tweets/" + itoa(tweet.ID) + "/likes"

	rec := env.do(t, http.MethodDelete, path, bob.APIKey, nil)
	body := requireError(t, rec, http.StatusNotFound, models.KindNotFound)
	assert.Equal(t, "Like not found", body["error_message"])

	require.NoError(t, env.store.Likes.CreateLike(&models.Like{UserID: bob.ID, TweetID: tweet.ID}))

	rec = env.do(t, http.MethodDelete, path, bob.APIKey, nil)
	requireSuccess(t, rec, http.StatusOK)

	liked, err := env.store.Likes.HasUserLikedTweet(tweet.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeRequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/tweets/1/likes", "", nil)
	requireError(t, rec, http.StatusUnauthorized, models.KindUnauthorized)

	rec = env.do(t, http.MethodDelete, "/api/tweets/1/likes", "bad", nil)
	requireError(t, rec, http.StatusUnauthorized, models.KindUnauthorized)
}
