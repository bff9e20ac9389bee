// Package models defines the client-side data model for the Stadtwache app:
// the authenticated credential, the officer identity, and the records served
// by the backend (incidents, messages, notifications, persons, reports).
package models

// User is the identity record the backend returns from /api/auth/me and
// embeds in login responses.
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
}

// UserUpdate carries the optional profile fields a PUT /api/auth/profile may
// change. Nil fields are left untouched.
type UserUpdate struct {
	Username      *string `json:"username,omitempty"`
	Status        *string `json:"status,omitempty"`
	Department    *string `json:"department,omitempty"`
	Rank          *string `json:"rank,omitempty"`
	ServiceNumber *string `json:"service_number,omitempty"`
	Phone         *string `json:"phone,omitempty"`
}

// Apply merges the update into a copy of u and returns it.
func (upd UserUpdate) Apply(u User) User {
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Status != nil {
		u.Status = *upd.Status
	}
	if upd.Department != nil {
		u.Department = *upd.Department
	}
	if upd.Rank != nil {
		u.Rank = *upd.Rank
	}
	if upd.ServiceNumber != nil {
		u.ServiceNumber = *upd.ServiceNumber
	}
	if upd.Phone != nil {
		u.Phone = *upd.Phone
	}
	return u
}
