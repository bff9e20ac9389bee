package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
)

// PersonService owns the missing/wanted persons registry view.
type PersonService struct {
	client api.Client

	mu      sync.Mutex
	persons []models.Person
	stats   models.PersonStats
}

func NewPersonService(client api.Client) *PersonService {
	return &PersonService{client: client}
}

// Refresh re-fetches the registry and its stats overview. Poller-driven.
// A stats failure does not discard a successfully fetched person list.
func (s *PersonService) Refresh(ctx context.Context) error {
	persons, err := s.client.Persons(ctx)
	if err != nil {
		return fmt.Errorf("loading persons: %w", err)
	}
	s.mu.Lock()
	s.persons = persons
	s.mu.Unlock()

	stats, err := s.client.PersonStats(ctx)
	if err != nil {
		return fmt.Errorf("loading person stats: %w", err)
	}
	s.mu.Lock()
	s.stats = stats
	s.mu.Unlock()
	return nil
}

func (s *PersonService) List() []models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Person, len(s.persons))
	copy(out, s.persons)
	return out
}

func (s *PersonService) Stats() models.PersonStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Save creates or updates a registry entry; first and last name are
// required, as on the entry form.
func (s *PersonService) Save(ctx context.Context, p models.Person) (models.Person, error) {
	if p.FirstName == "" || p.LastName == "" {
		return models.Person{}, fmt.Errorf("%w: first and last name are required", ErrValidation)
	}
	if p.Status == "" {
		p.Status = models.PersonMissing
	}

	var (
		saved models.Person
		err   error
	)
	if p.ID == "" {
		saved, err = s.client.CreatePerson(ctx, p)
	} else {
		saved, err = s.client.UpdatePerson(ctx, p.ID, p)
	}
	if err != nil {
		return models.Person{}, fmt.Errorf("saving person: %w", err)
	}
	return saved, nil
}

func (s *PersonService) Delete(ctx context.Context, id string) error {
	if err := s.client.DeletePerson(ctx, id); err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}
	s.mu.Lock()
	for i, p := range s.persons {
		if p.ID == id {
			s.persons = append(s.persons[:i], s.persons[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}
