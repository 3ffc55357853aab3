package memory

import (
	"context"
	"strconv"

	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
)

type candidateRepo struct {
	store *Store
}

func (r *candidateRepo) List(ctx context.Context) ([]model.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Candidate, 0, len(s.candidates))
	for _, c := range s.candidates {
		out = append(out, cloneCandidate(c))
	}
	return out, nil
}

func (r *candidateRepo) Get(ctx context.Context, id string) (*model.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.candidates {
		if c.ID == id {
			found := cloneCandidate(c)
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *candidateRepo) Create(ctx context.Context, candidate model.Candidate) (*model.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate.ID = s.nextCandidateID()
	s.candidates = append(s.candidates, cloneCandidate(candidate))
	return &candidate, nil
}

func (r *candidateRepo) BulkCreate(ctx context.Context, candidates []model.Candidate) ([]model.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	created := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		c.ID = s.nextCandidateID()
		s.candidates = append(s.candidates, cloneCandidate(c))
		created = append(created, c)
	}
	return created, nil
}

func (r *candidateRepo) Update(ctx context.Context, id string, patch model.CandidatePatch) (*model.Candidate, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.candidates {
		if s.candidates[i].ID == id {
			patch.Apply(&s.candidates[i])
			merged := cloneCandidate(s.candidates[i])
			return &merged, nil
		}
	}
	return nil, repository.ErrNotFound
}

// nextCandidateID must be called with the store lock held.
func (s *Store) nextCandidateID() string {
	s.candidateSeq++
	return "c" + strconv.Itoa(s.candidateSeq)
}
