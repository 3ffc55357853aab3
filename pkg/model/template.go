package model

// Question is one scripted prompt inside a template. FollowUps are asked
// verbatim when the candidate's answer needs probing.
type Question struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Competency string   `json:"competency"`
	FollowUps  []string `json:"followUps"`
	IsRequired bool     `json:"isRequired"`
}

// InterviewTemplate is a reusable question script for a job position.
type InterviewTemplate struct {
	ID           string     `json:"id" db:"id"`
	Name         string     `json:"name" db:"name"`
	JobPosition  string     `json:"jobPosition" db:"job_position"`
	Duration     int        `json:"duration" db:"duration"` // minutes
	Questions    []Question `json:"questions" db:"questions"`
	Competencies []string   `json:"competencies" db:"competencies"`
	CreatedAt    string     `json:"createdAt" db:"created_at"`
}

// QuestionReq mirrors the template form payload: followUps and isRequired are
// optional there, defaulting to empty and true.
type QuestionReq struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Competency string   `json:"competency"`
	FollowUps  []string `json:"followUps"`
	IsRequired *bool    `json:"isRequired"`
}

func (r QuestionReq) Question() Question {
	q := Question{
		ID:         r.ID,
		Text:       r.Text,
		Competency: r.Competency,
		FollowUps:  r.FollowUps,
		IsRequired: true,
	}
	if q.FollowUps == nil {
		q.FollowUps = []string{}
	}
	if r.IsRequired != nil {
		q.IsRequired = *r.IsRequired
	}
	return q
}

type CreateTemplateReq struct {
	Name         string        `json:"name"`
	JobPosition  string        `json:"jobPosition"`
	Duration     int           `json:"duration"`
	Questions    []QuestionReq `json:"questions"`
	Competencies []string      `json:"competencies"`
}

func (r CreateTemplateReq) Template() InterviewTemplate {
	questions := make([]Question, 0, len(r.Questions))
	for _, q := range r.Questions {
		questions = append(questions, q.Question())
	}
	return InterviewTemplate{
		Name:         r.Name,
		JobPosition:  r.JobPosition,
		Duration:     r.Duration,
		Questions:    questions,
		Competencies: r.Competencies,
	}
}

// TemplatePatch shallow-merges over a stored template. Questions and
// competencies are replaced wholesale when present, never deep-merged.
type TemplatePatch struct {
	Name         *string        `json:"name,omitempty"`
	JobPosition  *string        `json:"jobPosition,omitempty"`
	Duration     *int           `json:"duration,omitempty"`
	Questions    *[]QuestionReq `json:"questions,omitempty"`
	Competencies *[]string      `json:"competencies,omitempty"`
}

// Apply merges the patch over t. The stored id always wins.
func (p TemplatePatch) Apply(t *InterviewTemplate) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.JobPosition != nil {
		t.JobPosition = *p.JobPosition
	}
	if p.Duration != nil {
		t.Duration = *p.Duration
	}
	if p.Questions != nil {
		questions := make([]Question, 0, len(*p.Questions))
		for _, q := range *p.Questions {
			questions = append(questions, q.Question())
		}
		t.Questions = questions
	}
	if p.Competencies != nil {
		t.Competencies = *p.Competencies
	}
}
