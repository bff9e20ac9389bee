package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stadtwache/patrol/internal/server/store"
)

func (a *API) handleNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.NotificationsFor(callingUser(r.Context()).ID))
}

func (a *API) handleCreateNotification(w http.ResponseWriter, r *http.Request) {
	var n store.Notification
	if !decodeBody(w, r, &n) {
		return
	}
	if n.RecipientID == "" || n.Title == "" {
		writeDetail(w, http.StatusBadRequest, "Empfänger und Titel sind erforderlich")
		return
	}
	writeJSON(w, http.StatusCreated, a.store.AddNotification(n))
}

func (a *API) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if err := a.store.MarkNotificationRead(chi.URLParam(r, "id"), callingUser(r.Context()).ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
