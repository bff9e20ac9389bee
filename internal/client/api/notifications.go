package api

import (
	"context"
	"net/http"

	"github.com/stadtwache/patrol/internal/client/models"
)

func (c *HTTPClient) Notifications(ctx context.Context) ([]models.Notification, error) {
	var out []models.Notification
	err := c.do(ctx, http.MethodGet, "/api/notifications", nil, &out, true)
	return out, err
}

func (c *HTTPClient) CreateNotification(ctx context.Context, n models.NewNotification) (models.Notification, error) {
	var out models.Notification
	err := c.do(ctx, http.MethodPost, "/api/notifications", n, &out, true)
	return out, err
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/notifications/"+id+"/read", struct{}{}, nil, true)
}
