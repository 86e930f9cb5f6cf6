package upstream

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// APIError represents a non-2xx response from GitHub.
type APIError struct {
	StatusCode       int
	URL              string
	Message          string
	DocumentationURL string
}

func (err *APIError) Error() string {
	return fmt.Sprintf("github: HTTP %d for %s: %s", err.StatusCode, err.URL, err.Message)
}

// IsNotFound reports whether err is a 404 response, e.g. a fork that moved its models.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// IsRateLimited reports whether err is a GitHub rate limit response. Unauthenticated
// clients hit this quickly; setting a token raises the limit.
func IsRateLimited(err error) bool {
	var apiError *APIError
	if !errors.As(err, &apiError) {
		return false
	}
	if apiError.StatusCode == 429 {
		return true
	}
	lower := strings.ToLower(apiError.Message)
	return apiError.StatusCode == 403 && strings.Contains(lower, "rate limit")
}

func parseAPIError(statusCode int, url string, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode, URL: url}

	var wireError struct {
		Message          string `json:"message"`
		DocumentationURL string `json:"documentation_url"`
	}
	if json.Unmarshal(body, &wireError) == nil && wireError.Message != "" {
		apiError.Message = wireError.Message
		apiError.DocumentationURL = wireError.DocumentationURL
	} else {
		apiError.Message = strings.TrimSpace(string(body))
	}
	return apiError
}
