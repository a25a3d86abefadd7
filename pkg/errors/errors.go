package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError represents a non-2xx response from the MedTracker API.
// The raw body is kept so callers can surface server-provided detail.
type APIError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Body    []byte `json:"-"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error %d", e.Status)
}

// ErrSessionExpired is returned after the client has wiped the local
// session in response to a 401.
var ErrSessionExpired = errors.New("session expired")

// NewAPIError builds an APIError from a response status and body.
func NewAPIError(status int, message string, body []byte) *APIError {
	return &APIError{
		Status:  status,
		Message: message,
		Body:    body,
	}
}

// IsUnauthorized reports whether err is a 401 API error or the
// session-expired sentinel.
func IsUnauthorized(err error) bool {
	if errors.Is(err, ErrSessionExpired) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// IsNotFound reports whether err is a 404 API error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not
// an API error (transport failures, context cancellation).
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
