package models

import "time"

// Report is a shift report.
type Report struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ShiftDate string    `json:"shift_date"`
	AuthorID  string    `json:"author_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReport is the creation payload for POST /api/reports.
type NewReport struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ShiftDate string `json:"shift_date"`
}
