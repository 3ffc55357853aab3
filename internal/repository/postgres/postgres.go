// Package postgres adapts the storage port to a relational store, for
// deployments that need the dashboard data to outlive the process.
package postgres

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/javiercriado/interview-dashboard/internal/repository"
)

func NewRepository(pool *pgxpool.Pool) *repository.Repository {
	return &repository.Repository{
		Interviews: &interviewRepo{db: pool},
		Candidates: &candidateRepo{db: pool},
		Templates:  &templateRepo{db: pool},
	}
}
