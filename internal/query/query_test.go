package query

import (
	"testing"

	"github.com/javiercriado/interview-dashboard/pkg/model"
)

func sampleInterviews() []model.Interview {
	return []model.Interview{
		{
			ID: "1", CandidateName: "Sarah Johnson", CandidateEmail: "sarah.j@email.com",
			JobPosition: "Senior Software Engineer", CompletedAt: "2025-10-10T14:30:00Z",
			Status: model.InterviewCompleted, Score: 85,
		},
		{
			ID: "2", CandidateName: "Michael Chen", CandidateEmail: "mchen@email.com",
			JobPosition: "Product Manager", CompletedAt: "2025-10-09T10:15:00Z",
			Status: model.InterviewCompleted, Score: 72,
		},
		{
			ID: "3", CandidateName: "Emily Rodriguez", CandidateEmail: "emily.r@email.com",
			JobPosition: "Senior Software Engineer", CompletedAt: "2025-10-08T16:45:00Z",
			Status: model.InterviewScheduled, Score: 92,
		},
	}
}

func ids(interviews []model.Interview) []string {
	out := make([]string, 0, len(interviews))
	for _, iv := range interviews {
		out = append(out, iv.ID)
	}
	return out
}

func equalIDs(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestInterviewsFiltering(t *testing.T) {
	tests := []struct {
		name   string
		params InterviewParams
		want   []string
	}{
		{
			name:   "no params returns everything",
			params: InterviewParams{},
			want:   []string{"1", "2", "3"},
		},
		{
			name:   "status exact match",
			params: InterviewParams{Status: "completed"},
			want:   []string{"1", "2"},
		},
		{
			name:   "job position exact match",
			params: InterviewParams{JobPosition: "Product Manager"},
			want:   []string{"2"},
		},
		{
			name:   "search is case-insensitive on name",
			params: InterviewParams{Search: "sarah"},
			want:   []string{"1"},
		},
		{
			name:   "search matches email too",
			params: InterviewParams{Search: "MCHEN"},
			want:   []string{"2"},
		},
		{
			name:   "empty search filters nothing",
			params: InterviewParams{Search: ""},
			want:   []string{"1", "2", "3"},
		},
		{
			name:   "filters compose by AND",
			params: InterviewParams{Status: "completed", JobPosition: "Senior Software Engineer"},
			want:   []string{"1"},
		},
		{
			name:   "single-day range is inclusive",
			params: InterviewParams{StartDate: "2025-10-10", EndDate: "2025-10-10"},
			want:   []string{"1"},
		},
		{
			name:   "start date alone applies",
			params: InterviewParams{StartDate: "2025-10-09"},
			want:   []string{"1", "2"},
		},
		{
			name:   "end date alone applies",
			params: InterviewParams{EndDate: "2025-10-08"},
			want:   []string{"3"},
		},
		{
			name:   "range covering all days",
			params: InterviewParams{StartDate: "2025-10-08", EndDate: "2025-10-10"},
			want:   []string{"1", "2", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interviews(sampleInterviews(), tt.params)
			if !equalIDs(ids(got), tt.want) {
				t.Errorf("Interviews() = %v, want %v", ids(got), tt.want)
			}
		})
	}
}

func TestInterviewsStatusPartition(t *testing.T) {
	all := sampleInterviews()
	seen := map[string]bool{}
	for _, status := range []string{"scheduled", "in_progress", "completed", "cancelled"} {
		for _, iv := range Interviews(all, InterviewParams{Status: status}) {
			if string(iv.Status) != status {
				t.Errorf("status filter %q returned interview with status %q", status, iv.Status)
			}
			if seen[iv.ID] {
				t.Errorf("interview %s appeared in more than one status partition", iv.ID)
			}
			seen[iv.ID] = true
		}
	}
	if len(seen) != len(all) {
		t.Errorf("status partitions covered %d interviews, want %d", len(seen), len(all))
	}
}

func TestInterviewsSorting(t *testing.T) {
	t.Run("score descending", func(t *testing.T) {
		got := Interviews(sampleInterviews(), InterviewParams{SortBy: "score"})
		want := []float64{92, 85, 72}
		for i, iv := range got {
			if iv.Score != want[i] {
				t.Fatalf("position %d: score %v, want %v", i, iv.Score, want[i])
			}
		}
	})

	t.Run("date descending", func(t *testing.T) {
		got := Interviews(sampleInterviews(), InterviewParams{SortBy: "date"})
		if !equalIDs(ids(got), []string{"1", "2", "3"}) {
			t.Fatalf("date sort order = %v", ids(got))
		}
	})

	t.Run("unknown sortBy leaves order untouched", func(t *testing.T) {
		got := Interviews(sampleInterviews(), InterviewParams{SortBy: "duration"})
		if !equalIDs(ids(got), []string{"1", "2", "3"}) {
			t.Fatalf("order = %v", ids(got))
		}
	})
}

func TestInterviewsDoesNotMutateInput(t *testing.T) {
	all := sampleInterviews()
	Interviews(all, InterviewParams{SortBy: "score", Status: "completed"})
	if !equalIDs(ids(all), []string{"1", "2", "3"}) {
		t.Errorf("input slice was reordered: %v", ids(all))
	}
}

func TestCandidates(t *testing.T) {
	all := []model.Candidate{
		{ID: "c1", Name: "Sarah Johnson", Email: "sarah.j@email.com", AppliedFor: "Senior Software Engineer", Status: model.CandidateInterviewed},
		{ID: "c2", Name: "David Kim", Email: "dkim@email.com", AppliedFor: "Data Scientist", Status: model.CandidateInvited},
		{ID: "c3", Name: "Lisa Wang", Email: "lwang@email.com", AppliedFor: "Senior Software Engineer", Status: model.CandidatePending},
	}

	tests := []struct {
		name   string
		params CandidateParams
		want   int
	}{
		{"no params", CandidateParams{}, 3},
		{"status", CandidateParams{Status: "pending"}, 1},
		{"applied position", CandidateParams{JobPosition: "Senior Software Engineer"}, 2},
		{"search by name fragment", CandidateParams{Search: "kim"}, 1},
		{"status and position", CandidateParams{Status: "interviewed", JobPosition: "Senior Software Engineer"}, 1},
		{"no match", CandidateParams{Status: "hired"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Candidates(all, tt.params)
			if len(got) != tt.want {
				t.Errorf("Candidates() returned %d records, want %d", len(got), tt.want)
			}
		})
	}
}
