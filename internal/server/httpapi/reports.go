package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stadtwache/patrol/internal/server/store"
)

func (a *API) handleReports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Reports())
}

func (a *API) handleCreateReport(w http.ResponseWriter, r *http.Request) {
	var rep store.Report
	if !decodeBody(w, r, &rep) {
		return
	}
	rep.AuthorID = callingUser(r.Context()).ID

	created, err := a.store.CreateReport(rep)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateReport(w http.ResponseWriter, r *http.Request) {
	var rep store.Report
	if !decodeBody(w, r, &rep) {
		return
	}
	updated, err := a.store.UpdateReport(chi.URLParam(r, "id"), rep)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteReport(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
