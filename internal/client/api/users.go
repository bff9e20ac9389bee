package api

import (
	"context"
	"net/http"

	"github.com/stadtwache/patrol/internal/client/models"
)

// UsersByStatus returns the roster grouped by duty status, e.g.
// "Im Dienst" -> officers currently on duty.
func (c *HTTPClient) UsersByStatus(ctx context.Context) (map[string][]models.User, error) {
	var out map[string][]models.User
	err := c.do(ctx, http.MethodGet, "/api/users/by-status", nil, &out, true)
	return out, err
}

// UpdateUser edits another officer's record (admin only on the backend).
func (c *HTTPClient) UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (models.User, error) {
	var u models.User
	err := c.do(ctx, http.MethodPut, "/api/users/"+id, upd, &u, true)
	return u, err
}

func (c *HTTPClient) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/users/"+id, nil, nil, true)
}
