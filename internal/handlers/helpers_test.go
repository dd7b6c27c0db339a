package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/anonto42/microblog/backend/pkg/config"
	"github.com/anonto42/microblog/backend/pkg/storage"
	"github.com/anonto42/microblog/backend/validators"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	e       *echo.Echo
	db      *gorm.DB
	store   *repositories.Store
	storage *storage.LocalStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := config.OpenDatabase(config.DriverSQLite, filepath.Join(t.TempDir(), "test.db"), "error")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	t.Cleanup(func() { (&config.DB{SQL: db}).CloseDB() })

	mediaStorage, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "uploads"))
	require.NoError(t, err)

	store := repositories.NewStore(db)
	e := echo.New()
	e.Validator = validators.NewValidator()
	e.HTTPErrorHandler = ErrorHandler

	auth := middleware.APIKeyAuthMiddleware(store.Users)
	bodyLimit := echomw.BodyLimit("1M")
	api := e.Group("/api")
	NewTweetHandler(store).RegisterTweetRoutes(api, auth, bodyLimit)
	NewFeedHandler(store).RegisterFeedRoutes(api, auth)
	NewMediaHandler(store, mediaStorage).RegisterMediaRoutes(api, auth, bodyLimit)
	NewLikeHandler(store).RegisterLikeRoutes(api, auth)
	NewFollowHandler(store).RegisterFollowRoutes(api, auth)
	NewUserHandler(store).RegisterProfileRoutes(api, auth)

	return &testEnv{e: e, db: db, store: store, storage: mediaStorage}
}

func (env *testEnv) createUser(t *testing.T, name string) *models.User {
	t.Helper()
	user := &models.User{Name: name, APIKey: name + "_key"}
	require.NoError(t, env.store.Users.CreateUser(user))
	return user
}

func (env *testEnv) createTweet(t *testing.T, author *models.User, content string) *models.Tweet {
	t.Helper()
	tweet := &models.Tweet{Content: content, AuthorID: author.ID}
	require.NoError(t, env.store.Tweets.CreateTweet(tweet))
	return tweet
}

func (env *testEnv) createMedia(t *testing.T, owner *models.User, filename string) *models.Media {
	t.Helper()
	media := &models.Media{Filename: filename, OwnerID: owner.ID}
	require.NoError(t, env.store.Media.CreateMedia(media))
	return media
}

// do sends a request; body is JSON-encoded unless it is already a string.
func (env *testEnv) do(t *testing.T, method, path, apiKey string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if apiKey != "" {
		req.Header.Set(middleware.APIKeyHeader, apiKey)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

// requireError asserts status and the error envelope
func requireError(t *testing.T, rec *httptest.ResponseRecorder, status int, kind models.ErrorKind) map[string]any {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	require.Equal(t, false, body["result"])
	require.Equal(t, string(kind), body["error_type"])
	require.NotEmpty(t, body["error_message"])
	return body
}

func requireSuccess(t *testing.T, rec *httptest.ResponseRecorder, status int) map[string]any {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	require.Equal(t, true, body["result"])
	return body
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
