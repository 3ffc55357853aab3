package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
)

type interviewRepo struct {
	db *pgxpool.Pool
}

const interviewColumns = `
	id, candidate_id, candidate_name, candidate_email, job_position,
	completed_at, duration, status, score, recommendation, competencies,
	summary, transcript, audio_url, created_at`

func scanInterview(row pgx.Row) (*model.Interview, error) {
	var iv model.Interview
	err := row.Scan(
		&iv.ID, &iv.CandidateID, &iv.CandidateName, &iv.CandidateEmail, &iv.JobPosition,
		&iv.CompletedAt, &iv.Duration, &iv.Status, &iv.Score, &iv.Recommendation, &iv.Competencies,
		&iv.Summary, &iv.Transcript, &iv.AudioURL, &iv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &iv, nil
}

func (r *interviewRepo) List(ctx context.Context) ([]model.Interview, error) {
	q := `SELECT` + interviewColumns + ` FROM interviews ORDER BY id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query interviews: %w", err)
	}
	defer rows.Close()

	out := make([]model.Interview, 0)
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview row: %w", err)
		}
		out = append(out, *iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *interviewRepo) Get(ctx context.Context, id string) (*model.Interview, error) {
	q := `SELECT` + interviewColumns + ` FROM interviews WHERE id = $1`
	iv, err := scanInterview(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get interview: %w", err)
	}
	return iv, nil
}

func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error) {
	q := `SELECT` + interviewColumns + ` FROM interviews WHERE candidate_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, q, candidateID)
	if err != nil {
		return nil, fmt.Errorf("query interviews by candidate: %w", err)
	}
	defer rows.Close()

	out := make([]model.Interview, 0)
	for rows.Next() {
		iv, err := scanInterview(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interview row: %w", err)
		}
		out = append(out, *iv)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *interviewRepo) Create(ctx context.Context, interview model.Interview) (*model.Interview, error) {
	const q = `
INSERT INTO interviews (
	id, candidate_id, candidate_name, candidate_email, job_position,
	completed_at, duration, status, score, recommendation, competencies,
	summary, transcript, audio_url, created_at
) VALUES (
	nextval('interview_id_seq')::text, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
) RETURNING id`
	row := r.db.QueryRow(ctx, q,
		interview.CandidateID, interview.CandidateName, interview.CandidateEmail, interview.JobPosition,
		interview.CompletedAt, interview.Duration, interview.Status, interview.Score,
		interview.Recommendation, interview.Competencies,
		interview.Summary, interview.Transcript, interview.AudioURL, interview.CreatedAt,
	)
	if err := row.Scan(&interview.ID); err != nil {
		return nil, fmt.Errorf("insert interview: %w", err)
	}
	return &interview, nil
}
