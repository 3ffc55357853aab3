package repository

import (
	"context"
	"errors"

	"github.com/javiercriado/interview-dashboard/pkg/model"
)

// ErrNotFound is returned by every adapter when a record id does not exist.
var ErrNotFound = errors.New("record not found")

// InterviewRepository owns the interview collection. Create assigns the id;
// the caller decides status and timestamps. Interviews are never deleted.
type InterviewRepository interface {
	List(ctx context.Context) ([]model.Interview, error)
	Get(ctx context.Context, id string) (*model.Interview, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error)
	Create(ctx context.Context, interview model.Interview) (*model.Interview, error)
}

// CandidateRepository owns the candidate collection. Update shallow-merges
// the patch and returns the merged record.
type CandidateRepository interface {
	List(ctx context.Context) ([]model.Candidate, error)
	Get(ctx context.Context, id string) (*model.Candidate, error)
	Create(ctx context.Context, candidate model.Candidate) (*model.Candidate, error)
	BulkCreate(ctx context.Context, candidates []model.Candidate) ([]model.Candidate, error)
	Update(ctx context.Context, id string, patch model.CandidatePatch) (*model.Candidate, error)
}

// TemplateRepository owns the interview template collection. Delete is
// permanent; nothing else references templates.
type TemplateRepository interface {
	List(ctx context.Context) ([]model.InterviewTemplate, error)
	Get(ctx context.Context, id string) (*model.InterviewTemplate, error)
	Create(ctx context.Context, template model.InterviewTemplate) (*model.InterviewTemplate, error)
	Update(ctx context.Context, id string, patch model.TemplatePatch) (*model.InterviewTemplate, error)
	Delete(ctx context.Context, id string) error
}

type Repository struct {
	Interviews InterviewRepository
	Candidates CandidateRepository
	Templates  TemplateRepository
}
