package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
)

// ReportService owns the shift report list.
type ReportService struct {
	client api.Client

	mu      sync.Mutex
	reports []models.Report
}

func NewReportService(client api.Client) *ReportService {
	return &ReportService{client: client}
}

// Refresh re-fetches the report list. Poller-driven.
func (s *ReportService) Refresh(ctx context.Context) error {
	reports, err := s.client.Reports(ctx)
	if err != nil {
		return fmt.Errorf("loading reports: %w", err)
	}
	s.mu.Lock()
	s.reports = reports
	s.mu.Unlock()
	return nil
}

func (s *ReportService) List() []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

// Create files a new shift report.
func (s *ReportService) Create(ctx context.Context, r models.NewReport) (models.Report, error) {
	if r.Title == "" || r.Content == "" {
		return models.Report{}, fmt.Errorf("%w: title and content are required", ErrValidation)
	}
	created, err := s.client.CreateReport(ctx, r)
	if err != nil {
		return models.Report{}, fmt.Errorf("creating report: %w", err)
	}
	s.mu.Lock()
	s.reports = append(s.reports, created)
	s.mu.Unlock()
	return created, nil
}

// Update edits an existing shift report.
func (s *ReportService) Update(ctx context.Context, id string, r models.NewReport) (models.Report, error) {
	updated, err := s.client.UpdateReport(ctx, id, r)
	if err != nil {
		return models.Report{}, fmt.Errorf("updating report: %w", err)
	}
	return updated, nil
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeleteReport(ctx, id); err != nil {
		return fmt.Errorf("deleting report: %w", err)
	}
	s.mu.Lock()
	for i, rep := range s.reports {
		if rep.ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
