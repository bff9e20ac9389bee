package models

import "time"

// Notification is one entry in the officer's notification feed.
type Notification struct {
	ID               string    `json:"id"`
	RecipientID      string    `json:"recipient_id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	NotificationType string    `json:"notification_type"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewNotification is the creation payload for POST /api/notifications.
type NewNotification struct {
	RecipientID      string `json:"recipient_id"`
	Title            string `json:"title"`
	Content          string `json:"content"`
	NotificationType string `json:"notification_type"`
}
