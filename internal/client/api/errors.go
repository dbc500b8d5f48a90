package api

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoSession is returned when an authenticated call is attempted with
	// no token in the store. The call never reaches the network.
	ErrNoSession = errors.New("no active session")

	// ErrUnauthorized is returned when the backend rejects the current
	// token (expired or revoked). The response body is not meaningful.
	ErrUnauthorized = errors.New("unauthorized")
)

// AuthenticationError is a rejected login. Message is the server-provided
// reason, suitable for showing to the user verbatim.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// RateLimitError is a throttled request (HTTP 429). It is not a session
// failure: the token stays valid. RetryAfter is nil when the server did not
// send a usable Retry-After header.
type RateLimitError struct {
	RetryAfter *time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter != nil {
		return fmt.Sprintf("rate limited, retry after %s", *e.RetryAfter)
	}
	return "rate limited"
}

// HTTPError is any other non-2xx response. The body is not inspected here;
// callers decide whether to care.
type HTTPError struct {
	StatusCode int
	Status     string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status: %s", e.Status)
}
