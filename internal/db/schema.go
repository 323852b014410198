package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schemaStatements create the tables the application needs. Statements are
// idempotent so Ensure can run on every startup. pgx uses the extended
// protocol, so each statement is executed on its own.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS paila_users (
		id            UUID PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role          TEXT NOT NULL DEFAULT 'user',
		display_name  TEXT,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS reports (
		id            UUID PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		latitude      DOUBLE PRECISION NOT NULL,
		longitude     DOUBLE PRECISION NOT NULL,
		district      TEXT,
		municipality  TEXT,
		ward_number   TEXT,
		ward          TEXT,
		department    TEXT NOT NULL,
		severity      TEXT NOT NULL DEFAULT 'medium',
		confidence    DOUBLE PRECISION,
		status        TEXT NOT NULL DEFAULT 'reported',
		upvotes       INTEGER NOT NULL DEFAULT 0,
		downvotes     INTEGER NOT NULL DEFAULT 0,
		reporter_name TEXT,
		report_time   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		fixed_time    TIMESTAMPTZ,
		image_url     TEXT
	)`,

	// The primary key is the vote-idempotency guarantee: a second vote from
	// the same voter on the same report is a unique violation.
	`CREATE TABLE IF NOT EXISTS report_votes (
		report_id  UUID NOT NULL REFERENCES reports(id) ON DELETE CASCADE,
		voter_id   TEXT NOT NULL,
		value      SMALLINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (report_id, voter_id)
	)`,

	`CREATE TABLE IF NOT EXISTS report_comments (
		id         UUID PRIMARY KEY,
		report_id  UUID NOT NULL REFERENCES reports(id) ON DELETE CASCADE,
		author     TEXT,
		body       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_report_comments_report
		ON report_comments(report_id, created_at DESC)`,

	`CREATE INDEX IF NOT EXISTS idx_reports_report_time
		ON reports(report_time DESC)`,
}

// Ensure creates any missing tables and indexes.
func Ensure(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
