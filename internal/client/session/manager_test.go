package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/stadtwache/patrol/internal/client/api"
	"github.com/stadtwache/patrol/internal/client/models"
)

// ---- fakes ----

type fakeBackend struct {
	loginResp api.LoginResponse
	loginErr  error

	registerUser models.User
	registerErr  error

	meUser  models.User
	meErr   error
	meCalls int
	meSeen  []string
}

func (f *fakeBackend) Login(ctx context.Context, email, password string) (api.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeBackend) Register(ctx context.Context, req api.RegisterRequest) (models.User, error) {
	return f.registerUser, f.registerErr
}

func (f *fakeBackend) MeWithToken(ctx context.Context, token string) (models.User, error) {
	f.meCalls++
	f.meSeen = append(f.meSeen, token)
	return f.meUser, f.meErr
}

type fakeStore struct {
	mu   sync.Mutex
	cred *models.Credential

	loadErr error
}

func (f *fakeStore) Load(ctx context.Context) (*models.Credential, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.cred, nil
}

func (f *fakeStore) Save(ctx context.Context, cred *models.Credential) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := *cred
	f.cred = &c
	return nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cred = nil
	return nil
}

func (f *fakeStore) stored() *models.Credential {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cred
}

type spyPoller struct {
	unregisterAll int
}

func (s *spyPoller) UnregisterAll() { s.unregisterAll++ }

func newManager(backend *fakeBackend, store *fakeStore, poller *spyPoller) *Manager {
	return NewManager(backend, store, poller, 0, nil)
}

// ---- login ----

func TestLogin_Success_InstallsAndPersists(t *testing.T) {
	backend := &fakeBackend{
		loginResp: api.LoginResponse{
			AccessToken: "tok1",
			User:        models.User{ID: "1", Username: "a"},
		},
	}
	store := &fakeStore{}
	m := newManager(backend, store, &spyPoller{})

	cred, err := m.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok1", cred.AccessToken)
	require.Equal(t, "a", cred.User.Username)

	require.Equal(t, StateAuthenticated, m.State())
	require.Equal(t, "tok1", m.Token())

	stored := store.stored()
	require.NotNil(t, stored)
	require.Equal(t, "tok1", stored.AccessToken)
	require.Equal(t, "a", stored.User.Username)
}

func TestLogin_BackendDetail_BecomesAuthErrorMessage(t *testing.T) {
	backend := &fakeBackend{
		loginErr: &api.APIError{Status: 403, Detail: "Falsche Zugangsdaten"},
	}
	m := newManager(backend, &fakeStore{}, &spyPoller{})

	_, err := m.Login(context.Background(), "a@x.com", "wrong")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "Falsche Zugangsdaten", authErr.Message)
	require.Equal(t, StateUnauthenticated, m.State())
}

func TestLogin_NetworkFailure_GenericMessage(t *testing.T) {
	backend := &fakeBackend{loginErr: api.ErrUnavailable}
	m := newManager(backend, &fakeStore{}, &spyPoller{})

	_, err := m.Login(context.Background(), "a@x.com", "secret")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, loginFailedMessage, authErr.Message)
	require.ErrorIs(t, err, api.ErrUnavailable)
}

// ---- restore ----

func TestRestore_NoStoredCredential_NoNetworkCall(t *testing.T) {
	backend := &fakeBackend{}
	m := newManager(backend, &fakeStore{}, &spyPoller{})

	cred := m.Restore(context.Background())
	require.Nil(t, cred)
	require.Equal(t, StateUnauthenticated, m.State())
	require.Zero(t, backend.meCalls, "no validation call without a stored credential")
}

func TestRestore_ValidCredential_BecomesActive(t *testing.T) {
	backend := &fakeBackend{
		meUser: models.User{ID: "1", Username: "a", Status: "Im Dienst"},
	}
	store := &fakeStore{cred: &models.Credential{
		AccessToken: "tok1",
		User:        models.User{ID: "1", Username: "a"},
	}}
	m := newManager(backend, store, &spyPoller{})

	cred := m.Restore(context.Background())
	require.NotNil(t, cred)
	require.Equal(t, "tok1", cred.AccessToken)
	require.Equal(t, "Im Dienst", cred.User.Status, "identity refreshed from backend")
	require.Equal(t, StateAuthenticated, m.State())
	require.Equal(t, []string{"tok1"}, backend.meSeen)
}

func TestRestore_ValidationFails_DeletesStoredCredential(t *testing.T) {
	backend := &fakeBackend{meErr: api.ErrUnauthorized}
	store := &fakeStore{cred: &models.Credential{
		AccessToken: "stale",
		User:        models.User{ID: "1", Username: "a"},
	}}
	m := newManager(backend, store, &spyPoller{})

	cred := m.Restore(context.Background())
	require.Nil(t, cred)
	require.Equal(t, StateUnauthenticated, m.State())
	require.Nil(t, store.stored(), "persisted credential must be deleted")
}

func TestRestore_NetworkError_FailsClosed(t *testing.T) {
	backend := &fakeBackend{meErr: api.ErrUnavailable}
	store := &fakeStore{cred: &models.Credential{
		AccessToken: "tok1",
		User:        models.User{ID: "1", Username: "a"},
	}}
	m := newManager(backend, store, &spyPoller{})

	cred := m.Restore(context.Background())
	require.Nil(t, cred)
	require.Nil(t, store.stored())
}

func TestRestore_HoldsMinimumDuration(t *testing.T) {
	m := NewManager(&fakeBackend{}, &fakeStore{}, &spyPoller{}, 80*time.Millisecond, nil)

	started := time.Now()
	m.Restore(context.Background())
	require.GreaterOrEqual(t, time.Since(started), 80*time.Millisecond)
}

func TestRestore_FloorCancellableByContext(t *testing.T) {
	m := NewManager(&fakeBackend{}, &fakeStore{}, &spyPoller{}, 10*time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	started := time.Now()
	m.Restore(ctx)
	require.Less(t, time.Since(started), time.Second)
}

// ---- logout ----

func TestLogout_ClearsEverything_AndCancelsTasks(t *testing.T) {
	backend := &fakeBackend{
		loginResp: api.LoginResponse{AccessToken: "tok1", User: models.User{ID: "1", Username: "a"}},
	}
	store := &fakeStore{}
	poller := &spyPoller{}
	m := newManager(backend, store, poller)

	_, err := m.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	m.Logout(context.Background())

	require.Equal(t, StateUnauthenticated, m.State())
	require.Empty(t, m.Token())
	require.Nil(t, store.stored())
	require.Equal(t, 1, poller.unregisterAll)
}

// ---- update user ----

func TestUpdateUser_MergesAndPersists(t *testing.T) {
	backend := &fakeBackend{
		loginResp: api.LoginResponse{AccessToken: "tok1", User: models.User{ID: "1", Username: "a", Status: "Im Dienst"}},
	}
	store := &fakeStore{}
	m := newManager(backend, store, &spyPoller{})

	_, err := m.Login(context.Background(), "a@x.com", "secret")
	require.NoError(t, err)

	status := "Streife"
	m.UpdateUser(context.Background(), models.UserUpdate{Status: &status})

	require.Equal(t, "Streife", m.Current().User.Status)
	require.Equal(t, "tok1", m.Token(), "token untouched")
	require.Equal(t, "Streife", store.stored().User.Status)
}

func TestUpdateUser_SignedOut_SilentNoOp(t *testing.T) {
	store := &fakeStore{}
	m := newManager(&fakeBackend{}, store, &spyPoller{})

	status := "Pause"
	m.UpdateUser(context.Background(), models.UserUpdate{Status: &status})

	require.Nil(t, store.stored())
	require.Equal(t, StateUnauthenticated, m.State())
}

// ---- recovery ----

func TestRecoverUnauthorized_Success_ReinstallsCredential(t *testing.T) {
	backend := &fakeBackend{meUser: models.User{ID: "1", Username: "a"}}
	store := &fakeStore{cred: &models.Credential{
		AccessToken: "tok1",
		User:        models.User{ID: "1", Username: "a"},
	}}
	m := newManager(backend, store, &spyPoller{})

	token, err := m.RecoverUnauthorized(context.Background())
	require.NoError(t, err)
	require.Equal(t, "tok1", token)
	require.Equal(t, StateAuthenticated, m.State())
}

func TestRecoverUnauthorized_TwoSequentialCalls_TwoValidations(t *testing.T) {
	backend := &fakeBackend{meUser: models.User{ID: "1", Username: "a"}}
	store := &fakeStore{cred: &models.Credential{
		AccessToken: "tok1",
		User:        models.User{ID: "1", Username: "a"},
	}}
	m := newManager(backend, store, &spyPoller{})

	_, err := m.RecoverUnauthorized(context.Background())
	require.NoError(t, err)
	_, err = m.RecoverUnauthorized(context.Background())
	require.NoError(t, err)

	require.Equal(t, 2, backend.meCalls, "every recovery re-validates, none are coalesced")
}

func TestRecoverUnauthorized_ValidationFails_LogoutSemantics(t *testing.T) {
	backend := &fakeBackend{meErr: api.ErrUnauthorized}
	store := &fakeStore{cred: &models.Credential{
		AccessToken: "dead",
		User:        models.User{ID: "1", Username: "a"},
	}}
	poller := &spyPoller{}
	m := newManager(backend, store, poller)

	_, err := m.RecoverUnauthorized(context.Background())
	require.Error(t, err)
	require.Equal(t, StateUnauthenticated, m.State())
	require.Nil(t, store.stored())
	require.Equal(t, 1, poller.unregisterAll)
}

func TestRecoverUnauthorized_NoPersistedCredential_Fails(t *testing.T) {
	backend := &fakeBackend{}
	m := newManager(backend, &fakeStore{}, &spyPoller{})

	_, err := m.RecoverUnauthorized(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
	require.Zero(t, backend.meCalls)
}

func TestRecoverUnauthorized_StoreReadError_Fails(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk broken")}
	m := newManager(&fakeBackend{}, store, &spyPoller{})

	_, err := m.RecoverUnauthorized(context.Background())
	require.Error(t, err)
	require.Equal(t, StateUnauthenticated, m.State())
}
