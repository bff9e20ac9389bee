package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/stadtwache/patrol/internal/client/models"
)

func (c *HTTPClient) PrivateMessages(ctx context.Context) ([]models.Message, error) {
	var out []models.Message
	err := c.do(ctx, http.MethodGet, "/api/messages/private", nil, &out, true)
	return out, err
}

func (c *HTTPClient) ChannelMessages(ctx context.Context, channel string) ([]models.Message, error) {
	var out []models.Message
	err := c.do(ctx, http.MethodGet, "/api/messages?channel="+url.QueryEscape(channel), nil, &out, true)
	return out, err
}

func (c *HTTPClient) SendMessage(ctx context.Context, msg models.NewMessage) (models.Message, error) {
	var out models.Message
	err := c.do(ctx, http.MethodPost, "/api/messages", msg, &out, true)
	return out, err
}

func (c *HTTPClient) DeleteMessage(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/messages/"+id, nil, nil, true)
}
