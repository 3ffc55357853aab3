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

type templateRepo struct {
	db *pgxpool.Pool
}

const templateColumns = `
	id, name, job_position, duration, questions, competencies, created_at`

func scanTemplate(row pgx.Row) (*model.InterviewTemplate, error) {
	var t model.InterviewTemplate
	err := row.Scan(
		&t.ID, &t.Name, &t.JobPosition, &t.Duration, &t.Questions, &t.Competencies, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *templateRepo) List(ctx context.Context) ([]model.InterviewTemplate, error) {
	q := `SELECT` + templateColumns + ` FROM interview_templates ORDER BY id`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	defer rows.Close()

	out := make([]model.InterviewTemplate, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("scan template row: %w", err)
		}
		out = append(out, *t)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *templateRepo) Get(ctx context.Context, id string) (*model.InterviewTemplate, error) {
	q := `SELECT` + templateColumns + ` FROM interview_templates WHERE id = $1`
	t, err := scanTemplate(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get template: %w", err)
	}
	return t, nil
}

func (r *templateRepo) Create(ctx context.Context, template model.InterviewTemplate) (*model.InterviewTemplate, error) {
	const q = `
INSERT INTO interview_templates (
	id, name, job_position, duration, questions, competencies, created_at
) VALUES (
	't' || nextval('template_id_seq')::text, $1, $2, $3, $4, $5, $6
) RETURNING id`
	row := r.db.QueryRow(ctx, q,
		template.Name, template.JobPosition, template.Duration,
		template.Questions, template.Competencies, template.CreatedAt,
	)
	if err := row.Scan(&template.ID); err != nil {
		return nil, fmt.Errorf("insert template: %w", err)
	}
	return &template, nil
}

func (r *templateRepo) Update(ctx context.Context, id string, patch model.TemplatePatch) (*model.InterviewTemplate, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.JobPosition != nil {
		updates["job_position"] = *patch.JobPosition
	}
	if patch.Duration != nil {
		updates["duration"] = *patch.Duration
	}
	if patch.Questions != nil {
		questions := make([]model.Question, 0, len(*patch.Questions))
		for _, q := range *patch.Questions {
			questions = append(questions, q.Question())
		}
		updates["questions"] = questions
	}
	if patch.Competencies != nil {
		updates["competencies"] = *patch.Competencies
	}
	if len(updates) == 0 {
		return r.Get(ctx, id)
	}

	query := "UPDATE interview_templates SET "
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
		return nil, fmt.Errorf("update template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, repository.ErrNotFound
	}
	return r.Get(ctx, id)
}

func (r *templateRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM interview_templates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
