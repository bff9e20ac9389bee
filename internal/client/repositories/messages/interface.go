// Package messages caches confirmed chat messages locally so conversations
// remain readable when a refresh fails or the device is offline.
package messages

import (
	"context"

	"github.com/stadtwache/patrol/internal/client/models"
)

type Repository interface {
	// Upsert stores or replaces messages by id. Pending (unconfirmed)
	// messages are skipped — only server-acknowledged records are cached.
	Upsert(ctx context.Context, msgs []models.Message) error

	// Conversation returns cached messages for a channel ("private" for
	// direct messages) ordered by creation time.
	Conversation(ctx context.Context, channel string) ([]models.Message, error)

	// Clear wipes the cache, e.g. on logout.
	Clear(ctx context.Context) error
}
