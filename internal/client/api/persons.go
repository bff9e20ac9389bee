package api

import (
	"context"
	"net/http"

	"github.com/stadtwache/patrol/internal/client/models"
)

func (c *HTTPClient) Persons(ctx context.Context) ([]models.Person, error) {
	var out []models.Person
	err := c.do(ctx, http.MethodGet, "/api/persons", nil, &out, true)
	return out, err
}

func (c *HTTPClient) CreatePerson(ctx context.Context, p models.Person) (models.Person, error) {
	var out models.Person
	err := c.do(ctx, http.MethodPost, "/api/persons", p, &out, true)
	return out, err
}

func (c *HTTPClient) UpdatePerson(ctx context.Context, id string, p models.Person) (models.Person, error) {
	var out models.Person
	err := c.do(ctx, http.MethodPut, "/api/persons/"+id, p, &out, true)
	return out, err
}

func (c *HTTPClient) DeletePerson(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/persons/"+id, nil, nil, true)
}

func (c *HTTPClient) PersonStats(ctx context.Context) (models.PersonStats, error) {
	var out models.PersonStats
	err := c.do(ctx, http.MethodGet, "/api/persons/stats/overview", nil, &out, true)
	return out, err
}
