package store

import "time"

// User is an officer account. The password hash never leaves the store.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Status        string `json:"status"`
	Department    string `json:"department,omitempty"`
	Rank          string `json:"rank,omitempty"`
	ServiceNumber string `json:"service_number,omitempty"`
	Phone         string `json:"phone,omitempty"`

	PasswordHash []byte `json:"-"`
}

// UserUpdate carries optional profile fields; nil fields stay untouched.
type UserUpdate struct {
	Username      *string `json:"username,omitempty"`
	Status        *string `json:"status,omitempty"`
	Department    *string `json:"department,omitempty"`
	Rank          *string `json:"rank,omitempty"`
	ServiceNumber *string `json:"service_number,omitempty"`
	Phone         *string `json:"phone,omitempty"`
}

// Location is a WGS84 coordinate pair.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Incident is a reported event.
type Incident struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Location    Location  `json:"location"`
	Address     string    `json:"address"`
	Images      []string  `json:"images,omitempty"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

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
}

// Notification is one feed entry for a recipient.
type Notification struct {
	ID               string    `json:"id"`
	RecipientID      string    `json:"recipient_id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	NotificationType string    `json:"notification_type"`
	Read             bool      `json:"read"`
	CreatedAt        time.Time `json:"created_at"`
}

// Person is an entry in the missing/wanted registry.
type Person struct {
	ID          string    `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Age         *int      `json:"age,omitempty"`
	Status      string    `json:"status"`
	Description string    `json:"description,omitempty"`
	LastSeenAt  string    `json:"last_seen_at,omitempty"`
	CaseNumber  string    `json:"case_number,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// PersonStats is the aggregate for /api/persons/stats/overview.
type PersonStats struct {
	TotalPersons   int `json:"total_persons"`
	MissingPersons int `json:"missing_persons"`
	WantedPersons  int `json:"wanted_persons"`
	FoundPersons   int `json:"found_persons"`
}

// Report is a shift report.
type Report struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ShiftDate string    `json:"shift_date"`
	AuthorID  string    `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
