package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound is returned when no record matches the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a create would break slug or username uniqueness.
	ErrDuplicate = errors.New("duplicate record")
	// ErrInvalidInput is returned when a request payload fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// MessageResponse is the body of every error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToMessageResponse converts an HTTPError to MessageResponse.
func (e *HTTPError) ToMessageResponse() MessageResponse {
	return MessageResponse{Message: e.Message}
}

// Messages holds the caller-facing text for one endpoint.
type Messages struct {
	NotFound string
	Invalid  string
	Conflict string
	Failed   string
}

// MapErrorToHTTP maps domain errors to HTTP errors using the endpoint's messages.
// Anything unrecognised becomes a 500 carrying msgs.Failed.
func MapErrorToHTTP(err error, msgs Messages) *HTTPError {
	switch {
	case errors.Is(err, ErrNotFound) && msgs.NotFound != "":
		return NewHTTPError(http.StatusNotFound, msgs.NotFound)
	case errors.Is(err, ErrInvalidInput) && msgs.Invalid != "":
		return NewHTTPError(http.StatusBadRequest, msgs.Invalid)
	case errors.Is(err, ErrDuplicate) && msgs.Conflict != "":
		return NewHTTPError(http.StatusConflict, msgs.Conflict)
	default:
		failed := msgs.Failed
		if failed == "" {
			failed = "internal server error"
		}
		return NewHTTPError(http.StatusInternalServerError, failed)
	}
}
