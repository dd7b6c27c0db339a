package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/anonto42/microblog/backend/internal/logging"
	"github.com/anonto42/microblog/backend/internal/middleware"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/anonto42/microblog/backend/internal/repositories"
	"github.com/anonto42/microblog/backend/pkg/storage"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var allowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
}

// MediaHandler handles media uploads
type MediaHandler struct {
	store   *repositories.Store
	storage storage.MediaStorage
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(store *repositories.Store, mediaStorage storage.MediaStorage) *MediaHandler {
	return &MediaHandler{store: store, storage: mediaStorage}
}

// RegisterMediaRoutes registers media routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group, auth, bodyLimit echo.MiddlewareFunc) {
	g.POST("/medias", h.UploadMedia, auth, bodyLimit)
}

// UploadMedia handles POST /api/medias. The file is stored under a random
// name; the client-supplied name only contributes its extension.
func (h *MediaHandler) UploadMedia(c echo.Context) error {
	user := middleware.CurrentUser(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return he
		}
		return models.NewBadRequestError("No file provided")
	}
	if fileHeader.Filename == "" {
		return models.NewBadRequestError("No file selected")
	}

	ext, ok := allowedExtension(fileHeader.Filename)
	if !ok {
		return models.NewValidationError("File type not allowed")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return models.NewInternalError(err)
	}
	defer src.Close()

	ctx := c.Request().Context()
	filename := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext
	if err := h.storage.Save(ctx, filename, src); err != nil {
		return models.NewInternalError(err)
	}

	media := models.Media{Filename: filename, OwnerID: user.ID}
	err = h.store.Transaction(ctx, func(tx *repositories.Store) error {
		return tx.Media.CreateMedia(&media)
	})
	if err != nil {
		if rmErr := h.storage.Remove(filename); rmErr != nil {
			logging.Warn().Err(rmErr).Str("filename", filename).Msg("failed to remove orphaned upload")
		}
		return wrapError(err)
	}

	return c.JSON(http.StatusCreated, echo.Map{"result": true, "media_id": media.ID})
}

func allowedExtension(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	return ext, allowedExtensions[ext]
}
