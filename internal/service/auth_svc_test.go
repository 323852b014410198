package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nischal373/PAILA/internal/model"
	"github.com/Nischal373/PAILA/internal/repository"
	"github.com/Nischal373/PAILA/pkg/password"
)

// fakeUserStore is an in-memory UserStore for service tests.
type fakeUserStore struct {
	users map[string]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*model.User)}
}

func (f *fakeUserStore) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) Create(_ context.Context, u *model.User) error {
	if _, ok := f.users[u.Username]; ok {
		return repository.ErrUsernameTaken
	}
	cp := *u
	f.users[u.Username] = &cp
	return nil
}

func newTestAuthService(store *fakeUserStore, bootstrap []model.BootstrapAccount) *AuthService {
	return NewAuthService(store, bootstrap, zerolog.Nop())
}

func TestRegisterCreatesUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	u, err := svc.Register(context.Background(), "alice", "hunter22", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, model.RoleUser, u.Role)
	assert.Equal(t, "Alice", u.DisplayName)

	stored := store.users["alice"]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.ID)
	assert.NotContains(t, stored.PasswordHash, "hunter22")
	assert.True(t, password.Verify("hunter22", stored.PasswordHash))
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(newFakeUserStore(), nil)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"short username", "ab", "hunter22"},
		{"whitespace-only username", "   ", "hunter22"},
		{"short password", "alice", "12345"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.username, tt.password, "")
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestRegisterTrimsUsername(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	u, err := svc.Register(context.Background(), "  alice  ", "hunter22", "")
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	_, err := svc.Register(context.Background(), "alice", "hunter22", "")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "alice", "other-pass", "")
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestRegisterRejectsBootstrapUsername(t *testing.T) {
	bootstrap := []model.BootstrapAccount{
		{Username: "admin", Password: "root-pass", Role: model.RoleSuperAdmin},
	}
	svc := newTestAuthService(newFakeUserStore(), bootstrap)

	_, err := svc.Register(context.Background(), "admin", "hunter22", "")
	assert.ErrorIs(t, err, repository.ErrUsernameTaken)
}

func TestLoginBootstrapAccount(t *testing.T) {
	bootstrap := []model.BootstrapAccount{
		{Username: "admin", Password: "root-pass", Role: model.RoleSuperAdmin, DisplayName: "Admin"},
	}
	svc := newTestAuthService(newFakeUserStore(), bootstrap)

	u, err := svc.Login(context.Background(), "admin", "root-pass")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, model.RoleSuperAdmin, u.Role)
	assert.Equal(t, "Admin", u.DisplayName)

	u, err = svc.Login(context.Background(), "admin", "wrong")
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestLoginDatabaseUser(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	_, err := svc.Register(context.Background(), "alice", "hunter22", "Alice")
	require.NoError(t, err)

	u, err := svc.Login(context.Background(), "alice", "hunter22")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, model.RoleUser, u.Role)
}

func TestLoginRejections(t *testing.T) {
	store := newFakeUserStore()
	svc := newTestAuthService(store, nil)

	_, err := svc.Register(context.Background(), "alice", "hunter22", "")
	require.NoError(t, err)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"unknown user", "nobody", "hunter22"},
		{"wrong password", "alice", "wrong-pass"},
		{"empty password", "alice", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.Login(context.Background(), tt.username, tt.password)
			require.NoError(t, err)
			assert.Nil(t, u)
		})
	}
}
