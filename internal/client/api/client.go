// Package api is the HTTP/JSON transport layer of the Stadtwache client.
// It owns the wire contract with the backend: endpoint paths, bearer
// authentication, error mapping, and the 401 recover-and-replay protocol.
package api

import (
	"context"

	"github.com/stadtwache/patrol/internal/client/models"
)

// Client is the backend surface consumed by services and the session
// manager. Tests substitute a fake.
type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	Register(ctx context.Context, req RegisterRequest) (models.User, error)
	Me(ctx context.Context) (models.User, error)
	MeWithToken(ctx context.Context, token string) (models.User, error)
	UpdateProfile(ctx context.Context, upd models.UserUpdate) (models.User, error)

	// Incidents.
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	CreateIncident(ctx context.Context, inc models.NewIncident) (models.Incident, error)
	DeleteIncident(ctx context.Context, id string) error
	AssignIncident(ctx context.Context, id string) error
	CompleteIncident(ctx context.Context, id string) error

	// Team roster.
	UsersByStatus(ctx context.Context) (map[string][]models.User, error)
	UpdateUser(ctx context.Context, id string, upd models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, id string) error

	// Messages.
	PrivateMessages(ctx context.Context) ([]models.Message, error)
	ChannelMessages(ctx context.Context, channel string) ([]models.Message, error)
	SendMessage(ctx context.Context, msg models.NewMessage) (models.Message, error)
	DeleteMessage(ctx context.Context, id string) error

	// Notifications.
	Notifications(ctx context.Context) ([]models.Notification, error)
	CreateNotification(ctx context.Context, n models.NewNotification) (models.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) error

	// Persons registry.
	Persons(ctx context.Context) ([]models.Person, error)
	CreatePerson(ctx context.Context, p models.Person) (models.Person, error)
	UpdatePerson(ctx context.Context, id string, p models.Person) (models.Person, error)
	DeletePerson(ctx context.Context, id string) error
	PersonStats(ctx context.Context) (models.PersonStats, error)

	// Reports.
	Reports(ctx context.Context) ([]models.Report, error)
	CreateReport(ctx context.Context, r models.NewReport) (models.Report, error)
	UpdateReport(ctx context.Context, id string, r models.NewReport) (models.Report, error)
	DeleteReport(ctx context.Context, id string) error
}

// LoginResponse is the payload of a successful POST /api/auth/login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// RegisterRequest is the payload of POST /api/auth/register.
type RegisterRequest struct {
	Email         string `json:"email"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Department    string `json:"department,omitempty"`
	Rank          string `json:"rank,omitempty"`
	ServiceNumber string `json:"service_number,omitempty"`
}
