package handlers

import (
	"net/http"
	"testing"

	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	path := "/api/users/" + itoa(bob.ID) + "/follow"

	rec := env.do(t, http.MethodPost, path, alice.APIKey, nil)
	requireSuccess(t, rec, http.StatusOK)

	following, err := env.store.Follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, following)

	rec = env.do(t, http.MethodPost, path, alice.APIKey, nil)
	requireError(t, rec, http.StatusConflict, models.KindConflict)

	// the edge is directed
	following, err = env.store.Follows.IsFollowing(bob.ID, alice.ID)
	require.NoError(t, err)
	assert.False(t, following)
}

func TestFollowSelf(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	rec := env.do(t, http.MethodPost, "/api/users/"+itoa(alice.ID)+"/follow", alice.APIKey, nil)
	body := requireError(t, rec, http.StatusBadRequest, models.KindBadRequest)
	assert.Equal(t, "You cannot follow yourself", body["error_message"])
}

func TestFollowMissingUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	rec := env.do(t, http.MethodPost, "/api/users/777/follow", alice.APIKey, nil)
	requireError(t, rec, http.StatusNotFound, models.KindNotFound)

	rec = env.do(t, http.MethodDelete, "/api/users/777/follow", alice.APIKey, nil)
	requireError(t, rec, http.StatusNotFound, models.KindNotFound)

	rec = env.do(t, http.MethodPost, "/api/users/xyz/follow", alice.APIKey, nil)
	requireError(t, rec, http.StatusBadRequest, models.KindBadRequest)
}

func TestUnfollowUser(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")
	bob := env.createUser(t, "bob")
	path := "/api/users/" + itoa(bob.ID) + "/follow"

	rec := env.do(t, http.MethodDelete, path, alice.APIKey, nil)
	body := requireError(t, rec, http.StatusNotFound, models.KindNotFound)
	assert.Equal(t, "Not following this user", body["error_message"])

	require.NoError(t, env.store.Follows.CreateFollow(&models.Follow{FollowerID: alice.ID, FollowingID: bob.ID}))

	rec = env.do(t, http.MethodDelete, path, alice.APIKey, nil)
	requireSuccess(t, rec, http.StatusOK)

	following, err := env.store.Follows.IsFollowing(alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, following)
}
