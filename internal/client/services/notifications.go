package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
)

// NotificationService owns the notification feed.
type NotificationService struct {
	client api.Client

	mu   sync.Mutex
	feed []models.Notification
}

func NewNotificationService(client api.Client) *NotificationService {
	return &NotificationService{client: client}
}

// Refresh re-fetches the feed. Poller-driven.
func (s *NotificationService) Refresh(ctx context.Context) error {
	feed, err := s.client.Notifications(ctx)
	if err != nil {
		return fmt.Errorf("loading notifications: %w", err)
	}
	s.mu.Lock()
	s.feed = feed
	s.mu.Unlock()
	return nil
}

func (s *NotificationService) Feed() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Notification, len(s.feed))
	copy(out, s.feed)
	return out
}

// UnreadCount counts unread entries in the last fetched feed.
func (s *NotificationService) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, item := range s.feed {
		if !item.Read {
			n++
		}
	}
	return n
}

// MarkRead flags one notification as read, locally too.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.client.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("marking notification read: %w", err)
	}
	s.mu.Lock()
	for i := range s.feed {
		if s.feed[i].ID == id {
			s.feed[i].Read = true
			break
		}
	}
	s.mu.Unlock()
	return nil
}
