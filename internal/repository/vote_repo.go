package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nischal373/PAILA/internal/model"
)

type VoteRepo struct {
	pool *pgxpool.Pool
}

func NewVoteRepo(pool *pgxpool.Pool) *VoteRepo {
	return &VoteRepo{pool: pool}
}

// CastVote records one vote and bumps the matching counter in a single
// transaction. The report_votes primary key rejects a second vote from the
// same voter (ErrDuplicateVote); the foreign key rejects unknown reports
// (ErrNotFound). The counter update is an atomic in-place increment, so
// concurrent votes on the same report from different voters cannot lose
// updates.
func (r *VoteRepo) CastVote(ctx context.Context, reportID, voterID string, direction model.VoteDirection) (*model.Report, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO report_votes (report_id, voter_id, value)
		VALUES ($1, $2, $3)`,
		reportID, voterID, direction.Value())
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, ErrDuplicateVote
		case isForeignKeyViolation(err):
			return nil, ErrNotFound
		}
		return nil, err
	}

	counter := `upvotes = upvotes + 1`
	if direction == model.VoteDown {
		counter = `downvotes = downvotes + 1`
	}

	row := tx.QueryRow(ctx,
		`UPDATE reports SET `+counter+` WHERE id = $1 RETURNING `+reportColumns,
		reportID)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return rep, nil
}
