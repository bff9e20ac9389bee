package models

import "time"

// Delivery is the client-side delivery state of a chat message. A message
// sent optimistically starts as DeliveryPending under a temporary id and is
// replaced in place by the confirmed server record; exactly one
// representation of a logical message is visible at any time.
type Delivery string

const (
	DeliveryPending   Delivery = "pending"
	DeliveryConfirmed Delivery = "confirmed"
)

// Message is a chat message, private or channel.
type Message struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	SenderID    string    `json:"sender_id"`
	SenderName  string    `json:"sender_name,omitempty"`
	RecipientID string    `json:"recipient_id,omitempty"`
	Channel     string    `json:"channel"`
	MessageType string    `json:"message_type"`
	CreatedAt   time.Time `json:"created_at"`

	// Delivery is local-only and never serialized to the backend.
	Delivery Delivery `json:"-"`
}

// NewMessage is the creation payload for POST /api/messages.
type NewMessage struct {
	Content     string `json:"content"`
	RecipientID string `json:"recipient_id,omitempty"`
	Channel     string `json:"channel"`
	MessageType string `json:"message_type"`
}
