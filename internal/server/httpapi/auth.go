package httpapi

import (
	"net/http"

	"github.com/stadtwache/patrol/internal/server/auth"
	"github.com/stadtwache/patrol/internal/server/store"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        store.User `json:"user"`
}

type registerRequest struct {
	Email         string `json:"email"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Department    string `json:"department"`
	Rank          string `json:"rank"`
	ServiceNumber string `json:"service_number"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := a.store.Authenticate(req.Email, req.Password)
	if err != nil {
		writeDetail(w, http.StatusUnauthorized, "Ungültige Anmeldedaten")
		return
	}

	token, err := auth.GenerateToken(user.ID, a.secret, a.tokenValidity)
	if err != nil {
		a.logger.Error("signing token", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Interner Fehler")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{AccessToken: token, TokenType: "bearer", User: user})
}

func (a *API) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := a.store.CreateUser(req.Email, req.Username, req.Password, req.Department, req.Rank, req.ServiceNumber)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

func (a *API) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, callingUser(r.Context()))
}

func (a *API) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd store.UserUpdate
	if !decodeBody(w, r, &upd) {
		return
	}

	user, err := a.store.UpdateUser(callingUser(r.Context()).ID, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
