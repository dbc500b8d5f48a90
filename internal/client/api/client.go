// Package api is the HTTP client for the fdatrack backend. Every
// authenticated call goes through (*Client).Do, which decorates the request
// with the current session token and centrally interprets authentication
// and throttling failures.
//
// The pipeline never mutates session state itself: on an authentication
// failure it raises a typed error and notifies the registered listener,
// which the composition root wires to the session service's Logout.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fdatrack/fdatrack/internal/common"
	"github.com/fdatrack/fdatrack/internal/logging"
	"github.com/google/uuid"
)

// TokenReader is the read-only view of the session store the pipeline needs.
type TokenReader interface {
	ReadToken(ctx context.Context) (string, bool, error)
}

type Client struct {
	baseURL       string
	http          *http.Client
	tokens        TokenReader
	onAuthFailure func()
	log           logging.Logger
}

// New builds a Client for the given backend base URL. The underlying
// http.Client carries a cookie jar so backend-set cookies ride along with
// the bearer credential.
func New(baseURL string, tokens TokenReader, timeout time.Duration, log logging.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Jar: jar, Timeout: timeout},
		tokens:  tokens,
		log:     log.With("component", "api"),
	}, nil
}

// SetAuthFailureListener registers the callback invoked whenever the
// pipeline detects an invalid client state (missing token) or a 401.
// At most one listener is supported; the last registration wins.
func (c *Client) SetAuthFailureListener(fn func()) {
	c.onAuthFailure = fn
}

func (c *Client) notifyAuthFailure() {
	if c.onAuthFailure != nil {
		c.onAuthFailure()
	}
}

// Do issues an authenticated request to path (joined onto the base URL).
//
// Outcome mapping:
//   - no token in the store: ErrNoSession, zero network calls, listener notified
//   - 401: ErrUnauthorized, listener notified
//   - 429: *RateLimitError with optional RetryAfter
//   - other non-2xx: *HTTPError
//   - 2xx: the raw response; the caller owns body parsing and closing
//
// Caller-supplied headers are merged in but can never override the
// Authorization header. No retries are performed here.
func (c *Client) Do(ctx context.Context, method, path string, body io.Reader, extra http.Header) (*http.Response, error) {
	tok, ok, err := c.tokens.ReadToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading session token: %w", err)
	}
	if !ok {
		// An authenticated call without a token is an invalid client
		// state; force a clean teardown instead of issuing a request the
		// backend would reject anyway.
		c.log.Warn(ctx, "authenticated call attempted with no session", "path", path)
		c.notifyAuthFailure()
		return nil, ErrNoSession
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	for k, vs := range extra {
		if http.CanonicalHeaderKey(k) == common.AuthorizationHeaderName {
			continue
		}
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+tok)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		drain(resp)
		c.log.Warn(ctx, "session rejected by backend", "path", path)
		c.notifyAuthFailure()
		return nil, ErrUnauthorized

	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		drain(resp)
		return nil, &RateLimitError{RetryAfter: retryAfter}

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		drain(resp)
		return nil, &HTTPError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return resp, nil
}

// getJSON issues an authenticated GET and decodes the JSON body into v.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}

	resp, err := c.Do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return err
	}
	defer drain(resp)

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

// parseRetryAfter interprets the Retry-After header as whole seconds.
// Missing or non-numeric values yield nil.
func parseRetryAfter(value string) *time.Duration {
	if value == "" {
		return nil
	}
	secs, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || secs < 0 {
		return nil
	}
	d := time.Duration(secs) * time.Second
	return &d
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
