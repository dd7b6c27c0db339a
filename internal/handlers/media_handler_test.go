package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (env *testEnv) upload(t *testing.T, apiKey, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/medias", &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	if apiKey != "" {
		req.Header.Set(middleware.APIKeyHeader, apiKey)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func TestUploadMedia(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	rec := env.upload(t, alice.APIKey, "file", "../../Holiday.PNG", []byte("fake png"))
	body := requireSuccess(t, rec, http.StatusCreated)

	media, err := env.store.Media.GetMediaByID(uint(body["media_id"].(float64)))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, media.OwnerID)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}\.png$`), media.Filename)

	data, err := os.ReadFile(filepath.Join(env.storage.Dir(), media.Filename))
	require.NoError(t, err)
	assert.Equal(t, "fake png", string(data))
}

func TestUploadMediaNamesAreUnique(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	first := requireSuccess(t, env.upload(t, alice.APIKey, "file", "a.jpg", []byte("1")), http.StatusCreated)
	second := requireSuccess(t, env.upload(t, alice.APIKey, "file", "a.jpg", []byte("2")), http.StatusCreated)

	m1, err := env.store.Media.GetMediaByID(uint(first["media_id"].(float64)))
	require.NoError(t, err)
	m2, err := env.store.Media.GetMediaByID(uint(second["media_id"].(float64)))
	require.NoError(t, err)
	assert.NotEqual(t, m1.Filename, m2.Filename)
}

func TestUploadMediaRejections(t *testing.T) {
	env := newTestEnv(t)
	alice := env.createUser(t, "alice")

	t.Run("no auth", func(t *testing.T) {
		rec := env.upload(t, "", "file", "a.png", []byte("x"))
		requireError(t, rec, http.StatusUnauthorized, models.KindUnauthorized)
	})

	t.Run("no file", func(t *testing.T) {
		rec := env.upload(t, alice.APIKey, "", "", nil)
		requireError(t, rec, http.StatusBadRequest, models.KindBadRequest)
	})

	t.Run("wrong field", func(t *testing.T) {
		rec := env.upload(t, alice.APIKey, "image", "a.png", []byte("x"))
		requireError(t, rec, http.StatusBadRequest, models.KindBadRequest)
	})

	t.Run("disallowed extension", func(t *testing.T) {
		rec := env.upload(t, alice.APIKey, "file", "script.exe", []byte("x"))
		body := requireError(t, rec, http.StatusBadRequest, models.KindValidation)
		assert.Equal(t, "File type not allowed", body["error_message"])
	})

	t.Run("no extension", func(t *testing.T) {
		rec := env.upload(t, alice.APIKey, "file", "png", []byte("x"))
		requireError(t, rec, http.StatusBadRequest, models.KindValidation)
	})

	var count int64
	require.NoError(t, env.db.Model(&models.Media{}).Count(&count).Error)
	assert.Zero(t, count)

	entries, err := os.ReadDir(env.storage.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAllowedExtension(t *testing.T) {
	for _, name := range []string{"a.png", "a.JPG", "a.jpeg", "a.b.gif"} {
		_, ok := allowedExtension(name)
		assert.True(t, ok, name)
	}
	for _, name := range []string{"a.bmp", "a", "a.png.exe", ".png."} {
		_, ok := allowedExtension(name)
		assert.False(t, ok, name)
	}
}
