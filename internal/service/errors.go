package service

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrProjectNotFound = errors.New("no project found")

// AuthError is returned when the api-key exchange is rejected upstream.
type AuthError struct {
	StatusCode int
	Status     string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Status)
}

// UpstreamError reports a failed Endor API call other than authentication.
// Op names the sub-fetch that failed.
type UpstreamError struct {
	Op         string
	StatusCode int
	Status     string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
	}

	return fmt.Sprintf("failed to %s, status code: %d, error msg: %s", e.Op, e.StatusCode, e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound || errors.Is(e.Err, ErrProjectNotFound)
}

// ConfigError is returned when a required identifier is missing.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required %s", e.Field)
}
