// Package session owns the single authenticated credential of the process:
// it logs in, persists the session across restarts, validates it at startup,
// and recovers transparently from server-side session loss. Nothing else
// writes the credential; everything else borrows the token per request.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
	"github.com/stadtwache/patrol/internal/client/repositories/credentials"
	"github.com/stadtwache/patrol/internal/logging"
)

// State is the session lifecycle state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateValidating      State = "validating"
	StateAuthenticated   State = "authenticated"
)

// TaskCanceller is the slice of the sync poller the manager needs: logout
// must tear down every registered refresh task.
type TaskCanceller interface {
	UnregisterAll()
}

// Backend is the slice of the API client the manager uses.
type Backend interface {
	Login(ctx context.Context, email, password string) (api.LoginResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (models.User, error)
	MeWithToken(ctx context.Context, token string) (models.User, error)
}

// Manager maintains exactly one authenticated identity for the process
// lifetime. The credential is an immutable value installed with a single
// pointer assignment, so readers always observe either the old or the new
// credential, never a partial one.
type Manager struct {
	backend        Backend
	store          credentials.Repository
	poller         TaskCanceller
	restoreMinWait time.Duration
	log            logging.Logger

	mu    sync.RWMutex
	state State
	cred  *models.Credential

	// recoverMu serializes concurrent 401 recoveries; each still issues
	// its own validation call.
	recoverMu sync.Mutex
}

func NewManager(backend Backend, store credentials.Repository, poller TaskCanceller, restoreMinWait time.Duration, log logging.Logger) *Manager {
	if log == nil {
		log = logging.Nop()
	}
	return &Manager{
		backend:        backend,
		store:          store,
		poller:         poller,
		restoreMinWait: restoreMinWait,
		log:            log,
		state:          StateUnauthenticated,
	}
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Token returns the current bearer token, or "" when signed out. Implements
// api.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.cred == nil {
		return ""
	}
	return m.cred.AccessToken
}

// Current returns the active credential, or nil when signed out.
func (m *Manager) Current() *models.Credential {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cred
}

func (m *Manager) install(cred *models.Credential, state State) {
	m.mu.Lock()
	m.cred = cred
	m.state = state
	m.mu.Unlock()
}

// Login exchanges credentials for a session. On success the credential is
// active immediately and persisted for the next start. On failure the
// returned error is an *AuthError with a user-displayable message; login is
// never retried automatically.
func (m *Manager) Login(ctx context.Context, email, password string) (*models.Credential, error) {
	resp, err := m.backend.Login(ctx, email, password)
	if err != nil {
		return nil, authErrorFrom(err)
	}

	cred := &models.Credential{
		AccessToken:   resp.AccessToken,
		User:          resp.User,
		IssuedLocally: time.Now(),
	}
	m.install(cred, StateAuthenticated)

	if err := m.store.Save(ctx, cred); err != nil {
		// The session works for this process either way.
		m.log.Warn(ctx, "failed to persist credential", "error", err)
	}

	m.log.Info(ctx, "signed in", "user", cred.User.Username)
	return cred, nil
}

// Register creates a new account. It does not sign the new account in.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) (models.User, error) {
	user, err := m.backend.Register(ctx, req)
	if err != nil {
		return models.User{}, authErrorFrom(err)
	}
	return user, nil
}

// Restore runs once at startup. A persisted credential is never trusted
// blindly: it is validated against the backend, and any validation failure
// (including plain network errors) drops the session — fail closed. The
// call never resolves faster than the configured minimum wait.
//
// A nil result means unauthenticated; no separate error is reported.
func (m *Manager) Restore(ctx context.Context) *models.Credential {
	started := time.Now()
	defer m.holdFloor(ctx, started)

	cred, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted credential", "error", err)
		return nil
	}
	if cred == nil {
		return nil
	}

	m.install(nil, StateValidating)

	user, err := m.backend.MeWithToken(ctx, cred.AccessToken)
	if err != nil {
		m.log.Info(ctx, "persisted session invalid, deleting", "error", err)
		if cerr := m.store.Clear(ctx); cerr != nil {
			m.log.Warn(ctx, "failed to delete persisted credential", "error", cerr)
		}
		m.install(nil, StateUnauthenticated)
		return nil
	}

	// Take the identity the backend just confirmed rather than the stale
	// stored copy.
	cred = &models.Credential{
		AccessToken:   cred.AccessToken,
		User:          user,
		IssuedLocally: cred.IssuedLocally,
	}
	m.install(cred, StateAuthenticated)
	m.log.Info(ctx, "session restored", "user", user.Username)
	return cred
}

// holdFloor blocks until restoreMinWait has elapsed since started.
func (m *Manager) holdFloor(ctx context.Context, started time.Time) {
	remaining := m.restoreMinWait - time.Since(started)
	if remaining <= 0 {
		return
	}
	select {
	case <-time.After(remaining):
	case <-ctx.Done():
	}
}

// Logout clears the in-memory credential, deletes the persisted one, and
// tears down all refresh tasks.
func (m *Manager) Logout(ctx context.Context) {
	m.install(nil, StateUnauthenticated)

	if err := m.store.Clear(ctx); err != nil {
		m.log.Warn(ctx, "failed to delete persisted credential", "error", err)
	}
	if m.poller != nil {
		m.poller.UnregisterAll()
	}
	m.log.Info(ctx, "signed out")
}

// UpdateUser merges partial fields into the current user record and
// re-persists it. The token is untouched. Silently a no-op when signed out.
func (m *Manager) UpdateUser(ctx context.Context, upd models.UserUpdate) {
	m.mu.Lock()
	if m.cred == nil {
		m.mu.Unlock()
		return
	}
	cred := &models.Credential{
		AccessToken:   m.cred.AccessToken,
		User:          upd.Apply(m.cred.User),
		IssuedLocally: m.cred.IssuedLocally,
	}
	m.cred = cred
	m.mu.Unlock()

	if err := m.store.Save(ctx, cred); err != nil {
		m.log.Warn(ctx, "failed to persist updated user", "error", err)
	}
}

// RecoverUnauthorized implements the 401 retry protocol (api.Recoverer).
// The persisted token is re-validated once; on success it becomes the
// active credential again and is returned for the replay. On failure the
// session is terminated: logout semantics apply and the caller propagates
// the original unauthorized error. The at-most-one-replay guarantee is
// enforced by the HTTP client per logical request.
func (m *Manager) RecoverUnauthorized(ctx context.Context) (string, error) {
	m.recoverMu.Lock()
	defer m.recoverMu.Unlock()

	cred, err := m.store.Load(ctx)
	if err == nil && cred == nil {
		err = api.ErrUnauthorized
	}

	var user models.User
	if err == nil {
		user, err = m.backend.MeWithToken(ctx, cred.AccessToken)
	}

	if err != nil {
		m.log.Info(ctx, "session recovery failed, signing out", "error", err)
		m.Logout(ctx)
		return "", err
	}

	restored := &models.Credential{
		AccessToken:   cred.AccessToken,
		User:          user,
		IssuedLocally: cred.IssuedLocally,
	}
	m.install(restored, StateAuthenticated)
	m.log.Info(ctx, "session recovered after unauthorized response")
	return restored.AccessToken, nil
}
