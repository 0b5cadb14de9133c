package volumes

import (
	"errors"
	"fmt"
)

// Common volumes API errors.
var (
	// ErrNotFound is returned when a volume does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRateLimited is returned when the daily quota is exhausted.
	ErrRateLimited = errors.New("rate limited: try again later or set an API key")
	// ErrForbidden is returned when the API key is rejected.
	ErrForbidden = errors.New("forbidden: check your API key")
	// ErrMalformedResponse is returned when the body is not valid volumes JSON.
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError carries an unexpected HTTP status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("books API error %d: %s", e.Code, e.Body)
}
