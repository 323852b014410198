package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nischal373/PAILA/internal/model"
)

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// FindByUsername returns the user with the exact (case-sensitive) username,
// or ErrNotFound.
func (r *UserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
		SELECT id, username, password_hash, role, COALESCE(display_name, ''), created_at
		FROM paila_users
		WHERE username = $1`

	var u model.User
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.DisplayName, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user. The unique constraint on username backs the
// registration conflict check against concurrent signups; a violation maps
// to ErrUsernameTaken.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	query := `
		INSERT INTO paila_users (id, username, password_hash, role, display_name, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)`

	_, err := r.pool.Exec(ctx, query,
		u.ID, u.Username, u.PasswordHash, u.Role, u.DisplayName, u.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}
