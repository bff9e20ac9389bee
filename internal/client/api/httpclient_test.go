package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stadtwache/patrol/internal/client/models"
)

// ---- helpers ----

type staticTokens struct{ token string }

func (s *staticTokens) Token() string { return s.token }

type fakeRecoverer struct {
	calls int32
	token string
	err   error
}

func (f *fakeRecoverer) RecoverUnauthorized(ctx context.Context) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.token, f.err
}

func newClient(t *testing.T, srv *httptest.Server) *HTTPClient {
	t.Helper()
	return New(srv.URL, 2*time.Second, nil)
}

// ---- tests ----

func TestLogin_Success_SendsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "a@x.com", body["email"])
		require.Equal(t, "secret", body["password"])

		json.NewEncoder(w).Encode(LoginResponse{
			AccessToken: "tok1",
			User:        models.User{ID: "1", Username: "a"},
		})
	}))
	defer srv.Close()

	c := newClient(t, srv)
	resp, err := c.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok1", resp.AccessToken)
	require.Equal(t, "a", resp.User.Username)
}

func TestLogin_Failure_CarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Falsche Zugangsdaten"})
	}))
	defer srv.Close()

	c := newClient(t, srv)
	_, err := c.Login(context.Background(), "a@x.com", "wrong")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.Status)
	require.Equal(t, "Falsche Zugangsdaten", apiErr.Detail)
}

func TestLogin_Rejected401_CarriesDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Ungültige Anmeldedaten"})
	}))
	defer srv.Close()

	c := newClient(t, srv)
	_, err := c.Login(context.Background(), "a@x.com", "wrong")

	// An anonymous 401 is a login rejection, not a stale session: the
	// backend's message must survive for display.
	require.NotErrorIs(t, err, ErrUnauthorized)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Ungültige Anmeldedaten", apiErr.Detail)
}

func TestDo_AttachesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok1", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Incident{})
	}))
	defer srv.Close()

	c := newClient(t, srv)
	c.Bind(&staticTokens{token: "tok1"}, nil)

	_, err := c.ListIncidents(context.Background())
	require.NoError(t, err)
}

func TestDo_Unauthorized_RecoversAndReplaysOnce(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			require.Equal(t, "Bearer stale", r.Header.Get("Authorization"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		// Replay must carry the recovered token.
		require.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]models.Incident{{ID: "i1", Title: "Ruhestörung"}})
	}))
	defer srv.Close()

	rec := &fakeRecoverer{token: "fresh"}
	c := newClient(t, srv)
	c.Bind(&staticTokens{token: "stale"}, rec)

	incidents, err := c.ListIncidents(context.Background())
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	require.Equal(t, int32(1), atomic.LoadInt32(&rec.calls))
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDo_Unauthorized_ReplayAlso401_NoSecondRecovery(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	rec := &fakeRecoverer{token: "fresh"}
	c := newClient(t, srv)
	c.Bind(&staticTokens{token: "stale"}, rec)

	_, err := c.ListIncidents(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, int32(1), atomic.LoadInt32(&rec.calls), "exactly one recovery attempt")
	require.Equal(t, int32(2), atomic.LoadInt32(&calls), "exactly one replay")
}

func TestDo_Unauthorized_RecoveryFails_PropagatesUnauthorized(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	rec := &fakeRecoverer{err: errors.New("session dead")}
	c := newClient(t, srv)
	c.Bind(&staticTokens{token: "stale"}, rec)

	_, err := c.ListIncidents(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls), "no replay after failed recovery")
}

func TestDo_TwoSequentialUnauthorizedRequests_RecoverIndependently(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		// Every odd call 401s, every even call (the replay) succeeds.
		if n%2 == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]models.Incident{})
	}))
	defer srv.Close()

	rec := &fakeRecoverer{token: "fresh"}
	c := newClient(t, srv)
	c.Bind(&staticTokens{token: "stale"}, rec)

	_, err := c.ListIncidents(context.Background())
	require.NoError(t, err)
	_, err = c.ListIncidents(context.Background())
	require.NoError(t, err)

	require.Equal(t, int32(2), atomic.LoadInt32(&rec.calls),
		"each failed request re-validates, no shared state between requests")
}

func TestDo_ConnectionFailure_IsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, time.Second, nil)
	_, err := c.ListIncidents(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestMeWithToken_BypassesRecovery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer explicit", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	rec := &fakeRecoverer{token: "fresh"}
	c := newClient(t, srv)
	c.Bind(&staticTokens{token: "other"}, rec)

	_, err := c.MeWithToken(context.Background(), "explicit")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.Equal(t, int32(0), atomic.LoadInt32(&rec.calls))
}

func TestChannelMessages_EscapesChannelName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "allgemein", r.URL.Query().Get("channel"))
		json.NewEncoder(w).Encode([]models.Message{})
	}))
	defer srv.Close()

	c := newClient(t, srv)
	c.Bind(&staticTokens{token: "t"}, nil)
	_, err := c.ChannelMessages(context.Background(), "allgemein")
	require.NoError(t, err)
}
