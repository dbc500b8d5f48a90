// Package models defines the client-side data structures for fdatrack:
// the cached user profile plus the regulatory-action records returned by
// the backend API.
package models

// Profile is a cached projection of the session token's payload, persisted
// so identity can be rendered without re-decoding the token on every read.
// It is overwritten on every successful login and deleted on logout.
type Profile struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	IsSubscribed bool   `json:"isSubscribed"`
}

// DisplayName returns a human-readable identity string for prompts.
func (p *Profile) DisplayName() string {
	switch {
	case p.FirstName != "" && p.LastName != "":
		return p.FirstName + " " + p.LastName
	case p.FirstName != "":
		return p.FirstName
	default:
		return p.Email
	}
}
