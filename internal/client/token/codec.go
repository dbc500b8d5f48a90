// Package token decodes the payload segment of a backend-issued session
// token without contacting the server.
//
// The signature is intentionally never verified client-side: the client
// holds no verification key, and the server remains the sole authority on
// token validity. A stale or revoked token is detected reactively, on the
// first authenticated request that comes back 401.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedToken indicates a token string that cannot be decoded into
// claims: wrong segment count, invalid base64, or an unparseable payload.
// It is a local, non-fatal failure signal; the caller decides what to do.
var ErrMalformedToken = errors.New("malformed session token")

// Claims is the decoded payload of a session token.
type Claims struct {
	Sub          string
	Email        string
	FirstName    string
	LastName     string
	IsSubscribed bool
}

// Decode splits the token into its three dot-separated segments and decodes
// the middle one. Pure function, no side effects, no network access.
//
// Missing firstName/lastName default to "", missing isSubscribed to false.
func Decode(tokenString string) (*Claims, error) {
	payload := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	c := &Claims{}
	c.Sub, _ = payload["sub"].(string)
	c.Email, _ = payload["email"].(string)
	c.FirstName, _ = payload["firstName"].(string)
	c.LastName, _ = payload["lastName"].(string)
	c.IsSubscribed, _ = payload["isSubscribed"].(bool)

	return c, nil
}
