package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fdatrack/fdatrack/internal/common"
)

type loginRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	CaptchaProof string `json:"g-recaptcha-response"`
}

type loginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login posts credentials to the backend login endpoint. It is the one
// unauthenticated call in this client, so it deliberately bypasses Do.
//
// A non-2xx status yields *AuthenticationError carrying the server-provided
// message; on success the raw token string is returned for the session
// service to validate and persist.
func (c *Client) Login(ctx context.Context, email, password, captchaProof string) (string, error) {
	payload, err := json.Marshal(loginRequest{Email: email, Password: password, CaptchaProof: captchaProof})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/login", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer drain(resp)

	var body loginResponse
	// A failed decode is tolerated on error statuses: the default message
	// is used instead.
	decodeErr := json.NewDecoder(resp.Body).Decode(&body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := body.Message
		if msg == "" {
			if resp.StatusCode == http.StatusUnauthorized {
				msg = "Invalid email or password"
			} else {
				msg = "Login failed"
			}
		}
		return "", &AuthenticationError{Message: msg}
	}

	if decodeErr != nil {
		return "", fmt.Errorf("decoding login response: %w", decodeErr)
	}
	if body.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	return body.Token, nil
}

// Logout tells the backend to invalidate the given token. It is advisory:
// callers tear the local session down regardless of the outcome here.
func (c *Client) Logout(ctx context.Context, token string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/logout", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	drain(resp)

	// Any response counts as delivered, including non-2xx.
	return nil
}
