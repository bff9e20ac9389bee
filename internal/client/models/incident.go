package models

import "time"

// Location is a WGS84 coordinate pair attached to an incident.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Incident is a reported event on the patrol map.
type Incident struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Priority    string    `json:"priority"`
	Status      string    `json:"status"`
	Location    Location  `json:"location"`
	Address     string    `json:"address"`
	AssignedTo  string    `json:"assigned_to,omitempty"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewIncident is the creation payload for POST /api/incidents.
type NewIncident struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Location    Location `json:"location"`
	Address     string   `json:"address"`
	Images      []string `json:"images"`
}

// Incident priorities accepted by the backend.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)
