// Package memory is the in-process storage adapter backing the mock
// dashboard API. All three collections live in one mutex-guarded store so
// every mutation is a critical section, and ids come from monotonic
// counters that survive deletes without ever recycling a value.
package memory

import (
	"sync"

	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
)

type Store struct {
	mu sync.Mutex

	interviews []model.Interview
	candidates []model.Candidate
	templates  []model.InterviewTemplate

	interviewSeq int
	candidateSeq int
	templateSeq  int
}

func NewStore() *Store {
	return &Store{}
}

// NewSeededStore returns a store preloaded with the demo data set the
// dashboard ships with.
func NewSeededStore() *Store {
	s := NewStore()
	s.seed()
	return s
}

func (s *Store) Repository() *repository.Repository {
	return &repository.Repository{
		Interviews: &interviewRepo{store: s},
		Candidates: &candidateRepo{store: s},
		Templates:  &templateRepo{store: s},
	}
}

func cloneInterview(iv model.Interview) model.Interview {
	out := iv
	if iv.Competencies != nil {
		out.Competencies = make(map[string]float64, len(iv.Competencies))
		for k, v := range iv.Competencies {
			out.Competencies[k] = v
		}
	}
	return out
}

func cloneCandidate(c model.Candidate) model.Candidate {
	out := c
	out.Interviews = nil
	return out
}

func cloneTemplate(t model.InterviewTemplate) model.InterviewTemplate {
	out := t
	out.Questions = make([]model.Question, len(t.Questions))
	for i, q := range t.Questions {
		cq := q
		cq.FollowUps = append([]string(nil), q.FollowUps...)
		out.Questions[i] = cq
	}
	out.Competencies = append([]string(nil), t.Competencies...)
	return out
}
