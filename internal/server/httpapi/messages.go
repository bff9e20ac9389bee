package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/stadtwache/patrol/internal/common"
	"github.com/stadtwache/patrol/internal/server/store"
)

func (a *API) handleChannelMessages(w http.ResponseWriter, r *http.Request) {
	channel := r.URL.Query().Get("channel")
	if channel == "" {
		channel = "allgemein"
	}
	writeJSON(w, http.StatusOK, a.store.ChannelMessages(channel))
}

func (a *API) handlePrivateMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.store.PrivateMessagesFor(callingUser(r.Context()).ID))
}

func (a *API) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	var msg store.Message
	if !decodeBody(w, r, &msg) {
		return
	}
	if msg.Content == "" {
		writeDetail(w, http.StatusBadRequest, "Nachricht darf nicht leer sein")
		return
	}
	if msg.RecipientID != "" {
		msg.Channel = common.ChannelPrivate
	}
	msg.SenderID = callingUser(r.Context()).ID

	writeJSON(w, http.StatusCreated, a.store.AddMessage(msg))
}

func (a *API) handleDeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteMessage(chi.URLParam(r, "id"), callingUser(r.Context()).ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
