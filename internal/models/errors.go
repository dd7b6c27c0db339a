package models

import (
	"fmt"
	"net/http"
)

// ErrorKind is the error_type reported in error responses.
type ErrorKind string

const (
	KindUnauthorized   ErrorKind = "Unauthorized"
	KindBadRequest     ErrorKind = "BadRequest"
	KindValidation     ErrorKind = "ValidationError"
	KindNotFound       ErrorKind = "NotFound"
	KindForbidden      ErrorKind = "Forbidden"
	KindConflict       ErrorKind = "Conflict"
	KindInternalServer ErrorKind = "InternalServerError"
)

// ErrorResponse is the JSON envelope for every failed request
type ErrorResponse struct {
	Result       bool      `json:"result"`
	ErrorType    ErrorKind `json:"error_type"`
	ErrorMessage string    `json:"error_message"`
}

// APIError is returned by handlers and rendered by the HTTP error handler.
type APIError struct {
	Status  int
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Response returns the envelope sent to the client. Internal errors never
// carry the wrapped cause.
func (e *APIError) Response() ErrorResponse {
	return ErrorResponse{Result: false, ErrorType: e.Kind, ErrorMessage: e.Message}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Kind: KindUnauthorized, Message: message}
}

func NewBadRequestError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Kind: KindBadRequest, Message: message}
}

func NewValidationError(message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Kind: KindValidation, Message: message}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Kind: KindNotFound, Message: message}
}

func NewForbiddenError(message string) *APIError {
	return &APIError{Status: http.StatusForbidden, Kind: KindForbidden, Message: message}
}

func NewConflictError(message string) *APIError {
	return &APIError{Status: http.StatusConflict, Kind: KindConflict, Message: message}
}

func NewInternalError(err error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Kind:    KindInternalServer,
		Message: "Internal server error",
		Err:     err,
	}
}
