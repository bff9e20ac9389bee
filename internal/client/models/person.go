package models

import "time"

// Person statuses in the missing/wanted registry.
const (
	PersonMissing = "missing"
	PersonWanted  = "wanted"
	PersonFound   = "found"
)

// Person is an entry in the missing/wanted persons registry.
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

// PersonStats is the aggregate returned by /api/persons/stats/overview.
type PersonStats struct {
	TotalPersons   int `json:"total_persons"`
	MissingPersons int `json:"missing_persons"`
	WantedPersons  int `json:"wanted_persons"`
	FoundPersons   int `json:"found_persons"`
}
