package api

import (
	"context"
	"net/http"

	"github.com/stadtwache/patrol/internal/client/models"
)

// Login exchanges credentials for a token. Anonymous call; the caller (the
// session manager) installs the returned token.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp, false)
	return resp, err
}

// Register creates a new account.
func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &u, false)
	return u, err
}

// Me validates the current session token and returns the identity behind it.
func (c *HTTPClient) Me(ctx context.Context) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &u, true)
	return u, err
}

// MeWithToken validates an explicit token. It bypasses both the token source
// and the recovery protocol, because it is what the recovery protocol itself
// calls.
func (c *HTTPClient) MeWithToken(ctx context.Context, token string) (models.User, error) {
	var u models.User
	resp, err := c.send(ctx, http.MethodGet, "/api/auth/me", nil, token)
	if err != nil {
		return u, err
	}
	err = decode(resp, &u, true)
	return u, err
}

// UpdateProfile changes the signed-in officer's own profile fields.
func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.UserUpdate) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPut, "/api/auth/profile", upd, &u, true)
	return u, err
}
