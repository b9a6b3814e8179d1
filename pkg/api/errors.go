package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is returned when the backend reports a missing entity.
	ErrNotFound = errors.New("not found")

	// ErrNoToken is returned when a request is attempted without an
	// auth token configured.
	ErrNoToken = errors.New("no auth token configured")
)

// APIError is a non-2xx response from the backend. Detail carries the
// backend's human-readable message verbatim when the payload included
// one; callers show it as-is.
type APIError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// IsConflict reports whether err is a 409/400 validation or conflict
// failure — recoverable, never auto-retried.
func IsConflict(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusConflict || apiErr.Status == http.StatusBadRequest
	}
	return false
}

// IsNotFound reports whether err means the entity no longer exists.
func IsNotFound(err error) bool {
	if errors.Is(err, ErrNotFound) {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound
	}
	return false
}
