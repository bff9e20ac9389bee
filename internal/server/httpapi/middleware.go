package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/stadtwache/patrol/internal/common"
	"github.com/stadtwache/patrol/internal/server/auth"
	"github.com/stadtwache/patrol/internal/server/store"
)

type ctxKey int

const userKey ctxKey = iota

// requireAuth verifies the bearer token and resolves the calling user. The
// user value is stored in the request context for handlers.
func (a *API) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(common.AuthorizationHeader)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			writeDetail(w, http.StatusUnauthorized, "Nicht angemeldet")
			return
		}
		token := strings.TrimPrefix(header, common.BearerPrefix)

		userID, err := auth.GetUserIDFromToken(token, a.secret)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Sitzung abgelaufen")
			return
		}

		user, err := a.store.UserByID(userID)
		if err != nil {
			writeDetail(w, http.StatusUnauthorized, "Unbekannter Benutzer")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// callingUser returns the authenticated user installed by requireAuth.
func callingUser(ctx context.Context) store.User {
	u, _ := ctx.Value(userKey).(store.User)
	return u
}
