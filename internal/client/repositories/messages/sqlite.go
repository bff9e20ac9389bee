package messages

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stadtwache/patrol/internal/client/models"
	"github.com/stadtwache/patrol/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Upsert(ctx context.Context, msgs []models.Message) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, m := range msgs {
			if m.Delivery == models.DeliveryPending {
				continue
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO message_cache (id, channel, sender_id, sender_name, recipient_id, content, message_type, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT(id) DO UPDATE SET
					content = excluded.content,
					message_type = excluded.message_type
			`, m.ID, m.Channel, m.SenderID, m.SenderName, m.RecipientID, m.Content, m.MessageType, m.CreatedAt)
			if err != nil {
				return fmt.Errorf("failed to cache message %s: %w", m.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Conversation(ctx context.Context, channel string) ([]models.Message, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, channel, sender_id, sender_name, recipient_id, content, message_type, created_at
		FROM message_cache
		WHERE channel = ?
		ORDER BY created_at
	`, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to read message cache: %w", err)
	}
	defer rows.Close()

	var result []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Channel, &m.SenderID, &m.SenderName, &m.RecipientID, &m.Content, &m.MessageType, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cached message: %w", err)
		}
		m.Delivery = models.DeliveryConfirmed
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM message_cache`)
	if err != nil {
		return fmt.Errorf("failed to clear message cache: %w", err)
	}
	return nil
}
