package services

import (
	"context"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
	"github.com/stadtwache/patrol/internal/client/repositories/messages"
	"github.com/stadtwache/patrol/internal/common"
	"github.com/stadtwache/patrol/internal/logging"
)

// identitySource provides the sender identity for outgoing messages.
type identitySource interface {
	Current() *models.Credential
}

// MessageService owns the chat conversations. Sends are optimistic: the
// message appears immediately as DeliveryPending under a temporary id and
// is replaced in place once the backend acknowledges it, so exactly one
// representation of each logical message is ever visible.
type MessageService struct {
	client  api.Client
	cache   messages.Repository
	session identitySource
	log     logging.Logger

	mu            sync.Mutex
	conversations map[string][]models.Message
}

func NewMessageService(client api.Client, cache messages.Repository, session identitySource, log logging.Logger) *MessageService {
	if log == nil {
		log = logging.Nop()
	}
	return &MessageService{
		client:        client,
		cache:         cache,
		session:       session,
		log:           log,
		conversations: make(map[string][]models.Message),
	}
}

// Conversation returns the visible messages of a channel ("private" for
// direct messages). When nothing has been fetched yet, the local cache
// backs the view so a failed first poll still shows history.
func (s *MessageService) Conversation(ctx context.Context, channel string) []models.Message {
	s.mu.Lock()
	msgs, ok := s.conversations[channel]
	if ok {
		out := make([]models.Message, len(msgs))
		copy(out, msgs)
		s.mu.Unlock()
		return out
	}
	s.mu.Unlock()

	cached, err := s.cache.Conversation(ctx, channel)
	if err != nil {
		s.log.Warn(ctx, "failed to read message cache", "channel", channel, "error", err)
		return nil
	}
	return cached
}

// RefreshPrivate re-fetches direct messages. Poller-driven.
func (s *MessageService) RefreshPrivate(ctx context.Context) error {
	msgs, err := s.client.PrivateMessages(ctx)
	if err != nil {
		return fmt.Errorf("loading private messages: %w", err)
	}
	s.merge(ctx, common.ChannelPrivate, msgs)
	return nil
}

// RefreshChannel re-fetches one channel. Poller-driven per active channel.
func (s *MessageService) RefreshChannel(ctx context.Context, channel string) error {
	msgs, err := s.client.ChannelMessages(ctx, channel)
	if err != nil {
		return fmt.Errorf("loading channel %s: %w", channel, err)
	}
	s.merge(ctx, channel, msgs)
	return nil
}

// merge replaces the confirmed part of a conversation with the server's
// view and keeps still-pending messages visible at the end. Confirmed
// messages are written through to the cache.
func (s *MessageService) merge(ctx context.Context, channel string, incoming []models.Message) {
	for i := range incoming {
		incoming[i].Delivery = models.DeliveryConfirmed
		if incoming[i].Channel == "" {
			incoming[i].Channel = channel
		}
	}

	s.mu.Lock()
	seen := make(map[string]struct{}, len(incoming))
	for _, m := range incoming {
		seen[m.ID] = struct{}{}
	}
	merged := incoming
	for _, m := range s.conversations[channel] {
		if m.Delivery != models.DeliveryPending {
			continue
		}
		if _, ok := seen[m.ID]; ok {
			continue
		}
		merged = append(merged, m)
	}
	s.conversations[channel] = merged
	s.mu.Unlock()

	if err := s.cache.Upsert(ctx, incoming); err != nil {
		s.log.Warn(ctx, "failed to cache messages", "channel", channel, "error", err)
	}
}

// SendPrivate sends a direct message to an officer, optimistically.
func (s *MessageService) SendPrivate(ctx context.Context, recipientID, content string) (models.Message, error) {
	msg, err := s.send(ctx, models.NewMessage{
		Content:     content,
		RecipientID: recipientID,
		Channel:     common.ChannelPrivate,
		MessageType: "text",
	})
	if err != nil {
		return models.Message{}, err
	}

	// Notify the recipient; a failed notification never fails the send.
	sender := "Stadtwache"
	if cred := s.session.Current(); cred != nil {
		sender = cred.User.Username
	}
	notification := models.NewNotification{
		RecipientID:      recipientID,
		Title:            "Nachricht von " + sender,
		Content:          truncate(content, 100),
		NotificationType: "private_message",
	}
	if _, err := s.client.CreateNotification(ctx, notification); err != nil {
		s.log.Warn(ctx, "notification failed, message sent anyway", "error", err)
	}
	return msg, nil
}

// SendChannel sends a message into a channel, optimistically.
func (s *MessageService) SendChannel(ctx context.Context, channel, content string) (models.Message, error) {
	return s.send(ctx, models.NewMessage{
		Content:     content,
		Channel:     channel,
		MessageType: "text",
	})
}

func (s *MessageService) send(ctx context.Context, out models.NewMessage) (models.Message, error) {
	pending := models.Message{
		ID:          uuid.NewString(),
		Content:     out.Content,
		RecipientID: out.RecipientID,
		Channel:     out.Channel,
		MessageType: out.MessageType,
		Delivery:    models.DeliveryPending,
	}
	if cred := s.session.Current(); cred != nil {
		pending.SenderID = cred.User.ID
		pending.SenderName = cred.User.Username
	}

	s.mu.Lock()
	s.conversations[out.Channel] = append(s.conversations[out.Channel], pending)
	s.mu.Unlock()

	confirmed, err := s.client.SendMessage(ctx, out)
	if err != nil {
		// The optimistic entry is withdrawn; the caller surfaces the error.
		s.remove(out.Channel, pending.ID)
		return models.Message{}, fmt.Errorf("sending message: %w", err)
	}
	confirmed.Delivery = models.DeliveryConfirmed
	if confirmed.Channel == "" {
		confirmed.Channel = out.Channel
	}

	s.replace(out.Channel, pending.ID, confirmed)

	if err := s.cache.Upsert(ctx, []models.Message{confirmed}); err != nil {
		s.log.Warn(ctx, "failed to cache sent message", "error", err)
	}
	return confirmed, nil
}

// replace swaps the pending entry for the confirmed record by temp id. When
// a poll has already delivered the confirmed record, the pending entry is
// dropped instead, so a message never appears twice.
func (s *MessageService) replace(channel, tempID string, confirmed models.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.conversations[channel]

	confirmedPresent := false
	for _, m := range conv {
		if m.ID == confirmed.ID {
			confirmedPresent = true
			break
		}
	}

	for i, m := range conv {
		if m.ID != tempID {
			continue
		}
		if confirmedPresent {
			s.conversations[channel] = append(conv[:i], conv[i+1:]...)
		} else {
			conv[i] = confirmed
		}
		return
	}
	// Pending entry already gone (e.g. poll replaced the conversation);
	// append only if the poll did not bring the record itself.
	if !confirmedPresent {
		s.conversations[channel] = append(conv, confirmed)
	}
}

func (s *MessageService) remove(channel, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	conv := s.conversations[channel]
	for i, m := range conv {
		if m.ID == id {
			s.conversations[channel] = append(conv[:i], conv[i+1:]...)
			return
		}
	}
}

// Delete removes a message on the backend and locally.
func (s *MessageService) Delete(ctx context.Context, channel, id string) error {
	if err := s.client.DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("deleting message: %w", err)
	}
	s.remove(channel, id)
	return nil
}

// truncate shortens s to at most n bytes without splitting a UTF-8 rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
