// Package services contains the application services of the Stadtwache
// client: each pairs backend calls with the local state a screen renders,
// and exposes a Refresh method the sync poller drives.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
)

// ErrValidation marks a locally rejected form input.
var ErrValidation = errors.New("validation failed")

// IncidentService owns the incident list and the incident actions.
type IncidentService struct {
	client api.Client

	mu        sync.Mutex
	incidents []models.Incident
}

func NewIncidentService(client api.Client) *IncidentService {
	return &IncidentService{client: client}
}

// Refresh re-fetches the incident list. Poller-driven.
func (s *IncidentService) Refresh(ctx context.Context) error {
	incidents, err := s.client.ListIncidents(ctx)
	if err != nil {
		return fmt.Errorf("loading incidents: %w", err)
	}
	s.mu.Lock()
	s.incidents = incidents
	s.mu.Unlock()
	return nil
}

// List returns the last fetched incidents (possibly stale on fetch errors).
func (s *IncidentService) List() []models.Incident {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Incident, len(s.incidents))
	copy(out, s.incidents)
	return out
}

// Report files a new incident. Title, description and address are required.
func (s *IncidentService) Report(ctx context.Context, inc models.NewIncident) (models.Incident, error) {
	if inc.Title == "" {
		return models.Incident{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if inc.Description == "" {
		return models.Incident{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if inc.Address == "" {
		return models.Incident{}, fmt.Errorf("%w: address is required", ErrValidation)
	}
	if inc.Priority == "" {
		inc.Priority = models.PriorityMedium
	}
	if inc.Images == nil {
		inc.Images = []string{}
	}

	created, err := s.client.CreateIncident(ctx, inc)
	if err != nil {
		return models.Incident{}, fmt.Errorf("reporting incident: %w", err)
	}

	s.mu.Lock()
	s.incidents = append(s.incidents, created)
	s.mu.Unlock()
	return created, nil
}

// Assign takes over an incident for the calling officer.
func (s *IncidentService) Assign(ctx context.Context, id string) error {
	if err := s.client.AssignIncident(ctx, id); err != nil {
		return fmt.Errorf("assigning incident: %w", err)
	}
	return nil
}

// Complete marks an incident as resolved.
func (s *IncidentService) Complete(ctx context.Context, id string) error {
	if err := s.client.CompleteIncident(ctx, id); err != nil {
		return fmt.Errorf("completing incident: %w", err)
	}
	return nil
}

// Delete removes an incident (admin action).
func (s *IncidentService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteIncident(ctx, id); err != nil {
		return fmt.Errorf("deleting incident: %w", err)
	}
	s.mu.Lock()
	for i, inc := range s.incidents {
		if inc.ID == id {
			s.incidents = append(s.incidents[:i], s.incidents[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
