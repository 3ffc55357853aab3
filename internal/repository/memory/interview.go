package memory

import (
	"context"
	"strconv"

	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
)

type interviewRepo struct {
	store *Store
}

func (r *interviewRepo) List(ctx context.Context) ([]model.Interview, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Interview, 0, len(s.interviews))
	for _, iv := range s.interviews {
		out = append(out, cloneInterview(iv))
	}
	return out, nil
}

func (r *interviewRepo) Get(ctx context.Context, id string) (*model.Interview, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, iv := range s.interviews {
		if iv.ID == id {
			found := cloneInterview(iv)
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *interviewRepo) ListByCandidate(ctx context.Context, candidateID string) ([]model.Interview, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Interview, 0)
	for _, iv := range s.interviews {
		if iv.CandidateID == candidateID {
			out = append(out, cloneInterview(iv))
		}
	}
	return out, nil
}

func (r *interviewRepo) Create(ctx context.Context, interview model.Interview) (*model.Interview, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interviewSeq++
	interview.ID = strconv.Itoa(s.interviewSeq)
	s.interviews = append(s.interviews, cloneInterview(interview))
	return &interview, nil
}
