package api

import (
	"context"
	"net/http"

	"github.com/stadtwache/patrol/internal/client/models"
)

func (c *HTTPClient) Reports(ctx context.Context) ([]models.Report, error) {
	var out []models.Report
	err := c.do(ctx, http.MethodGet, "/api/reports", nil, &out, true)
	return out, err
}

func (c *HTTPClient) CreateReport(ctx context.Context, r models.NewReport) (models.Report, error) {
	var out models.Report
	err := c.do(ctx, http.MethodPost, "/api/reports", r, &out, true)
	return out, err
}

func (c *HTTPClient) UpdateReport(ctx context.Context, id string, r models.NewReport) (models.Report, error) {
	var out models.Report
	err := c.do(ctx, http.MethodPut, "/api/reports/"+id, r, &out, true)
	return out, err
}

func (c *HTTPClient) DeleteReport(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/reports/"+id, nil, nil, true)
}
