package api

import (
	"context"
	"net/http"

	"github.com/stadtwache/patrol/internal/client/models"
)

func (c *HTTPClient) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	var out []models.Incident
	err := c.do(ctx, http.MethodGet, "/api/incidents", nil, &out, true)
	return out, err
}

func (c *HTTPClient) CreateIncident(ctx context.Context, inc models.NewIncident) (models.Incident, error) {
	var out models.Incident
	err := c.do(ctx, http.MethodPost, "/api/incidents", inc, &out, true)
	return out, err
}

func (c *HTTPClient) DeleteIncident(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/incidents/"+id, nil, nil, true)
}

// AssignIncident assigns the incident to the calling officer.
func (c *HTTPClient) AssignIncident(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/incidents/"+id+"/assign", struct{}{}, nil, true)
}

func (c *HTTPClient) CompleteIncident(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/api/incidents/"+id+"/complete", struct{}{}, nil, true)
}
