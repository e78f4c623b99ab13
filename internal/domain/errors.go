package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors shared across packages.
var (
	// ErrKeyNotFound is returned by a KeyStore when the key has no value.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNotAuthenticated is returned by operations that require a bearer
	// token when nobody is logged in.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrActionPending is returned when an action is started while a
	// previous run has not finished.
	ErrActionPending = errors.New("action already pending")
)

// APIError is the single error type every API layer failure normalizes to.
// Message prefers the server-supplied message; Status is the HTTP status
// code, or 0 when the failure happened before a response arrived.
type APIError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d)", e.Op, e.Message, e.Status)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is an APIError for a 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is an APIError for a 401 response.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}
