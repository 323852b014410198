package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nischal373/PAILA/internal/model"
)

// reportColumns is the shared select list for report rows; every scan of a
// report goes through scanReport so the order stays in one place.
const reportColumns = `id, title, description, latitude, longitude,
	district, municipality, ward_number, ward, department, severity,
	confidence, status, upvotes, downvotes, reporter_name, report_time,
	fixed_time, image_url`

type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

type reportRow interface {
	Scan(dest ...any) error
}

func scanReport(row reportRow) (*model.Report, error) {
	var rep model.Report
	err := row.Scan(
		&rep.ID, &rep.Title, &rep.Description, &rep.Latitude, &rep.Longitude,
		&rep.District, &rep.Municipality, &rep.WardNumber, &rep.Ward,
		&rep.Department, &rep.Severity, &rep.Confidence, &rep.Status,
		&rep.Upvotes, &rep.Downvotes, &rep.ReporterName, &rep.ReportTime,
		&rep.FixedTime, &rep.ImageURL,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

// List returns all reports, newest first.
func (r *ReportRepo) List(ctx context.Context) ([]model.Report, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+reportColumns+` FROM reports ORDER BY report_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []model.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, *rep)
	}
	return reports, rows.Err()
}

// GetByID returns a single report or ErrNotFound.
func (r *ReportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+reportColumns+` FROM reports WHERE id = $1`, id)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rep, nil
}

// Create inserts a new report row.
func (r *ReportRepo) Create(ctx context.Context, rep *model.Report) error {
	query := `
		INSERT INTO reports (id, title, description, latitude, longitude,
			district, municipality, ward_number, ward, department, severity,
			confidence, status, upvotes, downvotes, reporter_name, report_time,
			fixed_time, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := r.pool.Exec(ctx, query,
		rep.ID, rep.Title, rep.Description, rep.Latitude, rep.Longitude,
		rep.District, rep.Municipality, rep.WardNumber, rep.Ward,
		rep.Department, rep.Severity, rep.Confidence, rep.Status,
		rep.Upvotes, rep.Downvotes, rep.ReporterName, rep.ReportTime,
		rep.FixedTime, rep.ImageURL,
	)
	return err
}

// UpdateStatus transitions a report's repair status and returns the updated
// row. fixedTime is stored only for the fixed status and cleared otherwise.
func (r *ReportRepo) UpdateStatus(ctx context.Context, id string, status model.ReportStatus, fixedTime *time.Time) (*model.Report, error) {
	query := `
		UPDATE reports SET status = $1, fixed_time = $2
		WHERE id = $3
		RETURNING ` + reportColumns

	row := r.pool.QueryRow(ctx, query, status, fixedTime, id)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rep, nil
}

// Stats returns aggregate counts across all tables in a single round trip.
func (r *ReportRepo) Stats(ctx context.Context) (*model.StatsResponse, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM reports)                         AS total_reports,
			(SELECT COUNT(*) FROM report_votes)                    AS total_votes,
			(SELECT COUNT(*) FROM paila_users)                     AS total_users,
			(SELECT COUNT(*) FROM report_comments)                 AS total_comments,
			(SELECT COUNT(*) FROM reports WHERE status = 'fixed')  AS fixed_reports`

	var stats model.StatsResponse
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalReports, &stats.TotalVotes, &stats.TotalUsers,
		&stats.TotalComments, &stats.FixedReports,
	)
	if err != nil {
		return nil, err
	}

	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM reports GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats.ReportsByStatus = make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ReportsByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &stats, nil
}
