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

type candidateRepo struct {
	db *pgxpool.Pool
}

const candidateColumns = `
	id, name, email, phone, applied_for, status,
	invited_at, interviewed_at, source, created_at`

func scanCandidate(row pgx.Row) (*model.Candidate, error) {
	var c model.Candidate
	err := row.Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.AppliedFor, &c.Status,
		&c.InvitedAt, &c.InterviewedAt, &c.Source, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *candidateRepo) List(ctx context.Context) ([]model.Candidate, error) {
	q := `SELECT` + candidateColumns + ` FROM candidates ORDER BY id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	out := make([]model.Candidate, 0)
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan candidate row: %w", err)
		}
		out = append(out, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *candidateRepo) Get(ctx context.Context, id string) (*model.Candidate, error) {
	q := `SELECT` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := scanCandidate(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate: %w", err)
	}
	return c, nil
}

func (r *candidateRepo) Create(ctx context.Context, candidate model.Candidate) (*model.Candidate, error) {
	const q = `
INSERT INTO candidates (
	id, name, email, phone, applied_for, status,
	invited_at, interviewed_at, source, created_at
) VALUES (
	'c' || nextval('candidate_id_seq')::text, $1, $2, $3, $4, $5, $6, $7, $8, $9
) RETURNING id`
	row := r.db.QueryRow(ctx, q,
		candidate.Name, candidate.Email, candidate.Phone, candidate.AppliedFor, candidate.Status,
		candidate.InvitedAt, candidate.InterviewedAt, candidate.Source, candidate.CreatedAt,
	)
	if err := row.Scan(&candidate.ID); err != nil {
		return nil, fmt.Errorf("insert candidate: %w", err)
	}
	candidate.Interviews = nil
	return &candidate, nil
}

func (r *candidateRepo) BulkCreate(ctx context.Context, candidates []model.Candidate) ([]model.Candidate, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin bulk create: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
INSERT INTO candidates (
	id, name, email, phone, applied_for, status,
	invited_at, interviewed_at, source, created_at
) VALUES (
	'c' || nextval('candidate_id_seq')::text, $1, $2, $3, $4, $5, $6, $7, $8, $9
) RETURNING id`

	created := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		row := tx.QueryRow(ctx, q,
			c.Name, c.Email, c.Phone, c.AppliedFor, c.Status,
			c.InvitedAt, c.InterviewedAt, c.Source, c.CreatedAt,
		)
		if err := row.Scan(&c.ID); err != nil {
			return nil, fmt.Errorf("insert candidate: %w", err)
		}
		created = append(created, c)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit bulk create: %w", err)
	}
	return created, nil
}

func (r *candidateRepo) Update(ctx context.Context, id string, patch model.CandidatePatch) (*model.Candidate, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.AppliedFor != nil {
		updates["applied_for"] = *patch.AppliedFor
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.InvitedAt != nil {
		updates["invited_at"] = *patch.InvitedAt
	}
	if patch.InterviewedAt != nil {
		updates["interviewed_at"] = *patch.InterviewedAt
	}
	if patch.Source != nil {
		updates["source"] = *patch.Source
	}
	if len(updates) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE candidates SET "
	args := []interface{}{}
	for col, val := range updates {
		if len(args) > 0 {
			query += ", "
		}
		args = append(args, val)
		query += fmt.Sprintf("%s = $%d", col, len(args))
	}
	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.Get(ctx, id)
}
