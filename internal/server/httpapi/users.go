package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stadtwache/patrol/internal/server/store"
)

func (a *API) handleUsersByStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.UsersByStatus())
}

func (a *API) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var upd store.UserUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	user, err := a.store.UpdateUser(chi.URLParam(r, "id"), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (a *API) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteUser(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
