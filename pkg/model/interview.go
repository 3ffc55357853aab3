package model

type InterviewStatus string

const (
	InterviewScheduled  InterviewStatus = "scheduled"
	InterviewInProgress InterviewStatus = "in_progress"
	InterviewCompleted  InterviewStatus = "completed"
	InterviewCancelled  InterviewStatus = "cancelled"
)

type Recommendation string

const (
	RecommendationHire       Recommendation = "hire"
	RecommendationStrongHire Recommendation = "strong_hire"
	RecommendationMaybe      Recommendation = "maybe"
	RecommendationNoHire     Recommendation = "no_hire"
)

// Interview is one AI-conducted interview session. Timestamps stay ISO-8601
// strings end to end; the dashboard renders them unmodified.
type Interview struct {
	ID             string             `json:"id" db:"id"`
	CandidateID    string             `json:"candidateId" db:"candidate_id"`
	CandidateName  string             `json:"candidateName" db:"candidate_name"`
	CandidateEmail string             `json:"candidateEmail" db:"candidate_email"`
	JobPosition    string             `json:"jobPosition" db:"job_position"`
	CompletedAt    string             `json:"completedAt" db:"completed_at"`
	Duration       int                `json:"duration" db:"duration"` // seconds
	Status         InterviewStatus    `json:"status" db:"status"`
	Score          float64            `json:"score" db:"score"`
	Recommendation Recommendation     `json:"recommendation" db:"recommendation"`
	Competencies   map[string]float64 `json:"competencies" db:"competencies"`
	Summary        string             `json:"summary" db:"summary"`
	Transcript     string             `json:"transcript" db:"transcript"`
	AudioURL       string             `json:"audioUrl" db:"audio_url"`
	CreatedAt      string             `json:"createdAt,omitempty" db:"created_at"`
}

// CreateInterviewReq carries the caller-supplied fields for a new interview.
// The server overrides status, stamps createdAt, and the store assigns the id.
type CreateInterviewReq struct {
	CandidateID    string             `json:"candidateId"`
	CandidateName  string             `json:"candidateName"`
	CandidateEmail string             `json:"candidateEmail"`
	JobPosition    string             `json:"jobPosition"`
	CompletedAt    string             `json:"completedAt"`
	Duration       int                `json:"duration"`
	Score          float64            `json:"score"`
	Recommendation Recommendation     `json:"recommendation"`
	Competencies   map[string]float64 `json:"competencies"`
	Summary        string             `json:"summary"`
	Transcript     string             `json:"transcript"`
	AudioURL       string             `json:"audioUrl"`
}

func (r CreateInterviewReq) Interview() Interview {
	return Interview{
		CandidateID:    r.CandidateID,
		CandidateName:  r.CandidateName,
		CandidateEmail: r.CandidateEmail,
		JobPosition:    r.JobPosition,
		CompletedAt:    r.CompletedAt,
		Duration:       r.Duration,
		Score:          r.Score,
		Recommendation: r.Recommendation,
		Competencies:   r.Competencies,
		Summary:        r.Summary,
		Transcript:     r.Transcript,
		AudioURL:       r.AudioURL,
	}
}
