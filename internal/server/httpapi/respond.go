// Package httpapi exposes the development server's REST surface. All error
// responses use the backend's `{"detail": "..."}` shape.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stadtwache/patrol/internal/common"
)

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// writeError maps the store's sentinel errors onto HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrNotFound):
		writeDetail(w, http.StatusNotFound, "Nicht gefunden")
	case errors.Is(err, common.ErrUnauthorized):
		writeDetail(w, http.StatusForbidden, "Keine Berechtigung")
	case errors.Is(err, common.ErrValidation):
		writeDetail(w, http.StatusBadRequest, "Ungültige Eingabe")
	case errors.Is(err, common.ErrAlreadyExists):
		writeDetail(w, http.StatusConflict, "Existiert bereits")
	default:
		writeDetail(w, http.StatusInternalServerError, "Interner Fehler")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeDetail(w, http.StatusBadRequest, "Ungültiger Request-Body")
		return false
	}
	return true
}
