package models

import "time"

// Credential is the bearer token plus the identity it belongs to. A
// credential is either fully present (token and user) or absent; partial
// values are never persisted.
type Credential struct {
	AccessToken   string    `json:"access_token"`
	User          User      `json:"user"`
	IssuedLocally time.Time `json:"issued_locally"`
}

// Valid reports whether the credential carries both parts.
func (c *Credential) Valid() bool {
	return c != nil && c.AccessToken != "" && c.User.ID != ""
}
