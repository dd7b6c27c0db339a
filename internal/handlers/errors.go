package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/microblog/backend/internal/logging"
	"github.com/anonto42/microblog/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every handler error as the JSON error envelope.
// Install it as echo.Echo.HTTPErrorHandler.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	apiErr := toAPIError(err)
	if apiErr.Status >= http.StatusInternalServerError {
		logging.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("request failed")
	}

	var sendErr error
	if c.Request().Method == http.MethodHead {
		sendErr = c.NoContent(apiErr.Status)
	} else {
		sendErr = c.JSON(apiErr.Status, apiErr.Response())
	}
	if sendErr != nil {
		logging.Error().Err(sendErr).Msg("failed to write error response")
	}
}

func toAPIError(err error) *models.APIError {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			return models.NewInternalError(err)
		}
		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok && m != "" {
			message = m
		}
		return &models.APIError{Status: he.Code, Kind: kindForStatus(he.Code), Message: message, Err: he.Internal}
	}

	return models.NewInternalError(err)
}

func kindForStatus(status int) models.ErrorKind {
	switch status {
	case http.StatusUnauthorized:
		return models.KindUnauthorized
	case http.StatusForbidden:
		return models.KindForbidden
	case http.StatusNotFound:
		return models.KindNotFound
	case http.StatusConflict:
		return models.KindConflict
	default:
		return models.KindBadRequest
	}
}

// wrapError passes API errors through and hides everything else behind a
// 500. Used on errors coming back out of a store transaction.
func wrapError(err error) error {
	var apiErr *models.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return models.NewInternalError(err)
}
