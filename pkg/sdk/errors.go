package okrsearch

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned by the server.
const (
	CodeSearchUnavailable = "search_unavailable"
	CodeRateLimited       = "rate_limited"
	CodeUnauthorized      = "unauthorized"
	CodeValidationFailed  = "validation_failed"
)

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("okrsearch: http %d", e.StatusCode)
	}
	return fmt.Sprintf("okrsearch: http %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// IsUnavailable reports whether err means every entity store failed for the request.
func IsUnavailable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable
}

// IsRateLimited reports whether err is a 429 response.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}
