package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stadtwache/patrol/internal/server/store"
)

func (a *API) handlePersons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.Persons())
}

func (a *API) handlePersonStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.PersonStats())
}

func (a *API) handleCreatePerson(w http.ResponseWriter, r *http.Request) {
	var p store.Person
	if !decodeBody(w, r, &p) {
		return
	}
	created, err := a.store.CreatePerson(p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdatePerson(w http.ResponseWriter, r *http.Request) {
	var p store.Person
	if !decodeBody(w, r, &p) {
		return
	}
	updated, err := a.store.UpdatePerson(chi.URLParam(r, "id"), p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleDeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeletePerson(chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
