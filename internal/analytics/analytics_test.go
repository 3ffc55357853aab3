package analytics

import (
	"context"
	"math"
	"testing"

	"github.com/javiercriado/interview-dashboard/internal/repository/memory"
	"github.com/javiercriado/interview-dashboard/pkg/model"
)

func TestSummarize(t *testing.T) {
	interviews := []model.Interview{
		{JobPosition: "Senior Software Engineer", Status: model.InterviewCompleted, Score: 85, Recommendation: model.RecommendationHire},
		{JobPosition: "Product Manager", Status: model.InterviewCompleted, Score: 72, Recommendation: model.RecommendationMaybe},
		{JobPosition: "Senior Software Engineer", Status: model.InterviewScheduled, Score: 92, Recommendation: model.RecommendationStrongHire},
	}
	candidates := []model.Candidate{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}, {ID: "c4"}, {ID: "c5"}}

	a := Summarize(interviews, candidates)

	if a.Total != 3 {
		t.Errorf("Total = %d, want 3", a.Total)
	}
	if a.Completed != 2 {
		t.Errorf("Completed = %d, want 2", a.Completed)
	}
	wantAvg := (85.0 + 72.0 + 92.0) / 3.0
	if math.Abs(a.AvgScore-wantAvg) > 1e-9 {
		t.Errorf("AvgScore = %v, want %v", a.AvgScore, wantAvg)
	}
	if a.Funnel.Invited != 5 || a.Funnel.Started != 3 || a.Funnel.Completed != 2 {
		t.Errorf("Funnel = %+v, want {5 3 2}", a.Funnel)
	}
	if a.ByPosition["Senior Software Engineer"] != 2 || a.ByPosition["Product Manager"] != 1 {
		t.Errorf("ByPosition = %v", a.ByPosition)
	}
	// hire aggregates hire and strong_hire
	if a.Recommendations.Hire != 2 {
		t.Errorf("Recommendations.Hire = %d, want 2", a.Recommendations.Hire)
	}
	if a.Recommendations.Maybe != 1 {
		t.Errorf("Recommendations.Maybe = %d, want 1", a.Recommendations.Maybe)
	}
	if a.Recommendations.NoHire != 0 {
		t.Errorf("Recommendations.NoHire = %d, want 0", a.Recommendations.NoHire)
	}
}

func TestSummarizeEmptyStore(t *testing.T) {
	a := Summarize(nil, nil)
	if a.Total != 0 || a.Completed != 0 {
		t.Fatalf("empty store counts = %+v", a)
	}
	if a.AvgScore != 0 {
		t.Errorf("AvgScore = %v, want 0 for empty store", a.AvgScore)
	}
	if len(a.ByPosition) != 0 {
		t.Errorf("ByPosition = %v, want empty map", a.ByPosition)
	}
}

type stubCache struct {
	stored      *model.Analytics
	gets, sets  int
	invalidated int
}

func (s *stubCache) Get(ctx context.Context) (*model.Analytics, bool) {
	s.gets++
	if s.stored == nil {
		return nil, false
	}
	return s.stored, true
}

func (s *stubCache) Set(ctx context.Context, a *model.Analytics) {
	s.sets++
	s.stored = a
}

func (s *stubCache) Invalidate(ctx context.Context) {
	s.invalidated++
	s.stored = nil
}

func TestServiceSummaryUsesCache(t *testing.T) {
	repo := memory.NewSeededStore().Repository()
	sc := &stubCache{}
	svc := NewService(repo, sc)
	ctx := context.Background()

	first, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if first.Total != 3 {
		t.Fatalf("seeded Total = %d, want 3", first.Total)
	}
	if sc.sets != 1 {
		t.Fatalf("cache sets = %d, want 1", sc.sets)
	}

	second, err := svc.Summary(ctx)
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if sc.sets != 1 {
		t.Errorf("cache sets = %d after hit, want still 1", sc.sets)
	}
	if second.Total != first.Total {
		t.Errorf("cached summary differs: %d vs %d", second.Total, first.Total)
	}

	svc.Invalidate(ctx)
	if sc.invalidated != 1 {
		t.Errorf("invalidations = %d, want 1", sc.invalidated)
	}
	if _, err := svc.Summary(ctx); err != nil {
		t.Fatalf("Summary after invalidate: %v", err)
	}
	if sc.sets != 2 {
		t.Errorf("cache sets = %d after invalidate, want 2", sc.sets)
	}
}

func TestServiceWithoutCache(t *testing.T) {
	repo := memory.NewSeededStore().Repository()
	svc := NewService(repo, nil)

	a, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary error: %v", err)
	}
	if a.Funnel.Invited != 5 {
		t.Errorf("Funnel.Invited = %d, want 5 (every candidate counts)", a.Funnel.Invited)
	}
	svc.Invalidate(context.Background()) // must be a no-op, not a panic
}
