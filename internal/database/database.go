package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func Connect(ctx context.Context, dbURL string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = 20
	cfg.MaxConnLifetime = time.Hour
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Migrate bootstraps the schema. Statements are idempotent so it runs on
// every start. Timestamps are stored as the ISO-8601 strings the API serves;
// id sequences back the text ids ("4", "c6", "t3") so deletes never recycle
// an id.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS interviews (
			id              text PRIMARY KEY,
			candidate_id    text NOT NULL DEFAULT '',
			candidate_name  text NOT NULL DEFAULT '',
			candidate_email text NOT NULL DEFAULT '',
			job_position    text NOT NULL DEFAULT '',
			completed_at    text NOT NULL DEFAULT '',
			duration        integer NOT NULL DEFAULT 0,
			status          text NOT NULL DEFAULT 'scheduled',
			score           double precision NOT NULL DEFAULT 0,
			recommendation  text NOT NULL DEFAULT '',
			competencies    jsonb NOT NULL DEFAULT '{}',
			summary         text NOT NULL DEFAULT '',
			transcript      text NOT NULL DEFAULT '',
			audio_url       text NOT NULL DEFAULT '',
			created_at      text NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id             text PRIMARY KEY,
			name           text NOT NULL DEFAULT '',
			email          text NOT NULL DEFAULT '',
			phone          text NOT NULL DEFAULT '',
			applied_for    text NOT NULL DEFAULT '',
			status         text NOT NULL DEFAULT 'pending',
			invited_at     text NOT NULL DEFAULT '',
			interviewed_at text NOT NULL DEFAULT '',
			source         text NOT NULL DEFAULT '',
			created_at     text NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS interview_templates (
			id           text PRIMARY KEY,
			name         text NOT NULL DEFAULT '',
			job_position text NOT NULL DEFAULT '',
			duration     integer NOT NULL DEFAULT 0,
			questions    jsonb NOT NULL DEFAULT '[]',
			competencies jsonb NOT NULL DEFAULT '[]',
			created_at   text NOT NULL DEFAULT ''
		)`,
		`CREATE SEQUENCE IF NOT EXISTS interview_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS candidate_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS template_id_seq`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
