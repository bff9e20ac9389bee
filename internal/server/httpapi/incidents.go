package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stadtwache/patrol/internal/server/store"
)

func (a *API) handleListIncidents(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Incidents())
}

func (a *API) handleCreateIncident(w http.ResponseWriter, r *http.Request) {
	var inc store.Incident
	if !decodeBody(w, r, &inc) {
		return
	}
	if inc.Title == "" || inc.Description == "" || inc.Address == "" {
		writeDetail(w, http.StatusBadRequest, "Titel, Beschreibung und Adresse sind erforderlich")
		return
	}
	if inc.Priority == "" {
		inc.Priority = "medium"
	}
	inc.CreatedBy = callingUser(r.Context()).ID

	writeJSON(w, http.StatusCreated, a.store.CreateIncident(inc))
}

func (a *API) handleAssignIncident(w http.ResponseWriter, r *http.Request) {
	if err := a.store.AssignIncident(chi.URLParam(r, "id"), callingUser(r.Context()).ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (a *API) handleCompleteIncident(w http.ResponseWriter, r *http.Request) {
	if err := a.store.CompleteIncident(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}

func (a *API) handleDeleteIncident(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteIncident(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
