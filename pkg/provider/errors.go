package provider

import (
	"errors"
	"fmt"
	"time"
)

// RateLimitError reports the provider refused a call for exceeding the
// per-minute budget. The governor applies RetryAfter as a refill penalty.
type RateLimitError struct {
	APIName    string
	RetryAfter time.Duration
}

// Error returns formatted error message
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("provider rate limit hit on %s (retry after %s)", e.APIName, e.RetryAfter)
}

// IsRateLimit reports whether err is (or wraps) a provider rate-limit error.
func IsRateLimit(err error) bool {
	var rle *RateLimitError
	return errors.As(err, &rle)
}

// APIError is a non-zero provider response code.
type APIError struct {
	APIName string
	Code    int
	Message string
}

// Error returns formatted error message
func (e *APIError) Error() string {
	return fmt.Sprintf("provider error on %s: code=%d msg=%q", e.APIName, e.Code, e.Message)
}
