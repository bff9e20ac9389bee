package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
)

// profileUpdater is the slice of the session manager the team service
// needs: after the backend accepts a status change, the local user record
// is updated too.
type profileUpdater interface {
	UpdateUser(ctx context.Context, upd models.UserUpdate)
}

// TeamService owns the duty roster and the officer's own status.
type TeamService struct {
	client  api.Client
	session profileUpdater

	mu     sync.Mutex
	roster map[string][]models.User
}

func NewTeamService(client api.Client, session profileUpdater) *TeamService {
	return &TeamService{client: client, session: session}
}

// Refresh re-fetches the roster grouped by duty status. Poller-driven.
func (s *TeamService) Refresh(ctx context.Context) error {
	roster, err := s.client.UsersByStatus(ctx)
	if err != nil {
		return fmt.Errorf("loading roster: %w", err)
	}
	s.mu.Lock()
	s.roster = roster
	s.mu.Unlock()
	return nil
}

// Roster returns the last fetched roster.
func (s *TeamService) Roster() map[string][]models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string][]models.User, len(s.roster))
	for k, v := range s.roster {
		out[k] = v
	}
	return out
}

// OnDutyCount returns how many officers are currently on duty.
func (s *TeamService) OnDutyCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.roster["Im Dienst"])
}

// SetStatus changes the calling officer's duty status and mirrors the
// change into the session's user record.
func (s *TeamService) SetStatus(ctx context.Context, status string) error {
	upd := models.UserUpdate{Status: &status}
	if _, err := s.client.UpdateProfile(ctx, upd); err != nil {
		return fmt.Errorf("updating status: %w", err)
	}
	s.session.UpdateUser(ctx, upd)
	return nil
}
