package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotJSON      = errors.New("response is not JSON")
	ErrNoToken      = fmt.Errorf("%w: no session token", ErrUnauthorized)
)

// APIError is a failure reported by the API: a non-2xx status or a body
// with success=false. Message is the server's text, when it sent one.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server error: %d", e.Status)
}

// Unwrap lets errors.Is match ErrUnauthorized on 401/403 and ErrUnavailable
// on gateway errors while keeping the server message.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrUnavailable
	}
	return nil
}

// Message extracts a user-facing text from err, falling back to fallback
// for transport and unknown errors.
func Message(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return "Network error. Please check if the server is running."
	}
	return fallback
}
