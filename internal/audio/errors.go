package audio

import "fmt"

// FetchError represents a failed response from a TTS endpoint
type FetchError struct {
	Provider string
	Code     string
	Message  string
}

func (e *FetchError) Error() string {
	return e.Provider + ": " + e.Message
}

// RateLimitError indicates that the endpoint refused the request for rate reasons
type RateLimitError struct {
	Provider   string
	RetryAfter int // Seconds to wait before retry
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: rate limit exceeded, retry after %ds", e.Provider, e.RetryAfter)
}
