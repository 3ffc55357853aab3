// Package analytics derives the dashboard overview metrics from the store.
// Nothing is persisted; every summary is a fresh O(n) scan, optionally
// memoized in a snapshot cache between mutations.
package analytics

import (
	"context"

	"github.com/javiercriado/interview-dashboard/internal/repository"
	"github.com/javiercriado/interview-dashboard/pkg/model"
)

// SnapshotCache memoizes the last summary. Implementations may lose entries
// at any time; the service recomputes on every miss.
type SnapshotCache interface {
	Get(ctx context.Context) (*model.Analytics, bool)
	Set(ctx context.Context, a *model.Analytics)
	Invalidate(ctx context.Context)
}

type Service struct {
	repo  *repository.Repository
	cache SnapshotCache
}

// NewService wires the aggregation over the storage port. cache may be nil.
func NewService(repo *repository.Repository, cache SnapshotCache) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) Summary(ctx context.Context) (*model.Analytics, error) {
	if s.cache != nil {
		if a, ok := s.cache.Get(ctx); ok {
			return a, nil
		}
	}
	interviews, err := s.repo.Interviews.List(ctx)
	if err != nil {
		return nil, err
	}
	candidates, err := s.repo.Candidates.List(ctx)
	if err != nil {
		return nil, err
	}
	a := Summarize(interviews, candidates)
	if s.cache != nil {
		s.cache.Set(ctx, &a)
	}
	return &a, nil
}

// Invalidate drops the cached snapshot after a store mutation.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// Summarize computes the overview metrics in a single pass per collection.
// The funnel's invited stage counts every candidate, matching the numbers
// the dashboard has always shown. An empty store yields an average of zero
// rather than an undefined value, since the result must serialize to JSON.
func Summarize(interviews []model.Interview, candidates []model.Candidate) model.Analytics {
	a := model.Analytics{
		Total:      len(interviews),
		ByPosition: map[string]int{},
	}

	var scoreSum float64
	for _, iv := range interviews {
		scoreSum += iv.Score
		if iv.Status == model.InterviewCompleted {
			a.Completed++
		}
		a.ByPosition[iv.JobPosition]++
		switch iv.Recommendation {
		case model.RecommendationHire, model.RecommendationStrongHire:
			a.Recommendations.Hire++
		case model.RecommendationMaybe:
			a.Recommendations.Maybe++
		case model.RecommendationNoHire:
			a.Recommendations.NoHire++
		}
	}
	if a.Total > 0 {
		a.AvgScore = scoreSum / float64(a.Total)
	}

	a.Funnel = model.Funnel{
		Invited:   len(candidates),
		Started:   len(interviews),
		Completed: a.Completed,
	}
	return a
}
