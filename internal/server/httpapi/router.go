package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/stadtwache/patrol/internal/server/store"
)

// API bundles the store with the token settings and builds the router.
type API struct {
	store         *store.Store
	secret        []byte
	tokenValidity time.Duration
	logger        *slog.Logger
}

func New(st *store.Store, secret []byte, tokenValidity time.Duration, logger *slog.Logger) *API {
	if logger == nil {
		logger = slog.Default()
	}
	return &API{store: st, secret: secret, tokenValidity: tokenValidity, logger: logger}
}

// Router assembles the full REST surface under /api.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", a.handleLogin)
		r.Post("/auth/register", a.handleRegister)

		r.Group(func(r chi.Router) {
			r.Use(a.requireAuth)

			r.Get("/auth/me", a.handleMe)
			r.Put("/auth/profile", a.handleUpdateProfile)

			r.Route("/incidents", func(r chi.Router) {
				r.Get("/", a.handleListIncidents)
				r.Post("/", a.handleCreateIncident)
				r.Put("/{id}/assign", a.handleAssignIncident)
				r.Put("/{id}/complete", a.handleCompleteIncident)
				r.Delete("/{id}", a.handleDeleteIncident)
			})

			r.Get("/users/by-status", a.handleUsersByStatus)
			r.Put("/users/{id}", a.handleUpdateUser)
			r.Delete("/users/{id}", a.handleDeleteUser)

			r.Route("/messages", func(r chi.Router) {
				r.Get("/", a.handleChannelMessages)
				r.Get("/private", a.handlePrivateMessages)
				r.Post("/", a.handleSendMessage)
				r.Delete("/{id}", a.handleDeleteMessage)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", a.handleNotifications)
				r.Post("/", a.handleCreateNotification)
				r.Put("/{id}/read", a.handleMarkNotificationRead)
			})

			r.Route("/persons", func(r chi.Router) {
				r.Get("/", a.handlePersons)
				r.Post("/", a.handleCreatePerson)
				r.Get("/stats/overview", a.handlePersonStats)
				r.Put("/{id}", a.handleUpdatePerson)
				r.Delete("/{id}", a.handleDeletePerson)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", a.handleReports)
				r.Post("/", a.handleCreateReport)
				r.Put("/{id}", a.handleUpdateReport)
				r.Delete("/{id}", a.handleDeleteReport)
			})
		})
	})

	return r
}
