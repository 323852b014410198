package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Nischal373/PAILA/internal/model"
	"github.com/Nischal373/PAILA/internal/repository"
	"github.com/Nischal373/PAILA/pkg/password"
)

// ValidationError marks a user-facing input problem, as opposed to an
// internal failure. Handlers translate it to a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UserStore is the persistence surface AuthService needs.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}

// AuthService implements registration and credential verification. Bootstrap
// accounts come from configuration and are checked before the database, so a
// fresh deployment always has a working superadmin.
type AuthService struct {
	users     UserStore
	bootstrap []model.BootstrapAccount
	logger    zerolog.Logger
}

func NewAuthService(users UserStore, bootstrap []model.BootstrapAccount, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, bootstrap: bootstrap, logger: logger}
}

// Register creates a new database-backed account with the "user" role.
// Usernames are unique across both bootstrap accounts and the database;
// concurrent signups with the same name are resolved by the unique
// constraint, so at most one succeeds.
func (s *AuthService) Register(ctx context.Context, username, pass, displayName string) (*model.SessionUser, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 {
		return nil, &ValidationError{Message: "Username must be at least 3 characters"}
	}
	if len(pass) < 6 {
		return nil, &ValidationError{Message: "Password must be at least 6 characters"}
	}

	for _, acct := range s.bootstrap {
		if acct.Username == username {
			return nil, repository.ErrUsernameTaken
		}
	}

	hash, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Role:         model.RoleUser,
		DisplayName:  strings.TrimSpace(displayName),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Msg("user registered")
	return &model.SessionUser{
		Username:    u.Username,
		Role:        u.Role,
		DisplayName: u.DisplayName,
	}, nil
}

// Login verifies credentials against bootstrap accounts first, then the
// database. It returns (nil, nil) when the credentials don't match — unknown
// usernames and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, pass string) (*model.SessionUser, error) {
	username = strings.TrimSpace(username)

	for _, acct := range s.bootstrap {
		if acct.Username == username {
			if !password.Equal(acct.Password, pass) {
				return nil, nil
			}
			return &model.SessionUser{
				Username:    acct.Username,
				Role:        acct.Role,
				DisplayName: acct.DisplayName,
			}, nil
		}
	}

	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !password.Verify(pass, u.PasswordHash) {
		return nil, nil
	}

	return &model.SessionUser{
		Username:    u.Username,
		Role:        u.Role,
		DisplayName: u.DisplayName,
	}, nil
}
