package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nischal373/PAILA/internal/model"
)

type CommentRepo struct {
	pool *pgxpool.Pool
}

func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

// ListByReport returns all comments on a report, newest first.
func (r *CommentRepo) ListByReport(ctx context.Context, reportID string) ([]model.Comment, error) {
	query := `
		SELECT id, report_id, COALESCE(author, ''), body, created_at
		FROM report_comments
		WHERE report_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []model.Comment
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.ReportID, &c.Author, &c.Body, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

// Add inserts a comment. An unknown report id maps to ErrNotFound via the
// foreign key.
func (r *CommentRepo) Add(ctx context.Context, c *model.Comment) error {
	query := `
		INSERT INTO report_comments (id, report_id, author, body, created_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)`

	_, err := r.pool.Exec(ctx, query, c.ID, c.ReportID, c.Author, c.Body, c.CreatedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
