package model

type CandidateStatus string

const (
	CandidatePending     CandidateStatus = "pending"
	CandidateInvited     CandidateStatus = "invited"
	CandidateInterviewed CandidateStatus = "interviewed"
	CandidateRejected    CandidateStatus = "rejected"
	CandidateHired       CandidateStatus = "hired"
)

// Candidate is a person in the hiring pipeline. Interviews is populated only
// when a single candidate is fetched; it is derived, never stored.
type Candidate struct {
	ID            string          `json:"id" db:"id"`
	Name          string          `json:"name" db:"name"`
	Email         string          `json:"email" db:"email"`
	Phone         string          `json:"phone,omitempty" db:"phone"`
	AppliedFor    string          `json:"appliedFor" db:"applied_for"`
	Status        CandidateStatus `json:"status" db:"status"`
	InvitedAt     string          `json:"invitedAt,omitempty" db:"invited_at"`
	InterviewedAt string          `json:"interviewedAt,omitempty" db:"interviewed_at"`
	Source        string          `json:"source" db:"source"`
	CreatedAt     string          `json:"createdAt,omitempty" db:"created_at"`
	Interviews    []Interview     `json:"interviews,omitempty" db:"-"`
}

type CreateCandidateReq struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	AppliedFor string `json:"appliedFor"`
	Source     string `json:"source"`
}

func (r CreateCandidateReq) Candidate() Candidate {
	return Candidate{
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		AppliedFor: r.AppliedFor,
		Source:     r.Source,
	}
}

// CandidatePatch is a shallow merge: nil means "leave the field alone",
// a set pointer overwrites the stored value.
type CandidatePatch struct {
	Name          *string          `json:"name,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	AppliedFor    *string          `json:"appliedFor,omitempty"`
	Status        *CandidateStatus `json:"status,omitempty"`
	InvitedAt     *string          `json:"invitedAt,omitempty"`
	InterviewedAt *string          `json:"interviewedAt,omitempty"`
	Source        *string          `json:"source,omitempty"`
}

// Apply merges the patch over c, field-level replace.
func (p CandidatePatch) Apply(c *Candidate) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Phone != nil {
		c.Phone = *p.Phone
	}
	if p.AppliedFor != nil {
		c.AppliedFor = *p.AppliedFor
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.InvitedAt != nil {
		c.InvitedAt = *p.InvitedAt
	}
	if p.InterviewedAt != nil {
		c.InterviewedAt = *p.InterviewedAt
	}
	if p.Source != nil {
		c.Source = *p.Source
	}
}

type BulkCreateCandidatesReq struct {
	Candidates []CreateCandidateReq `json:"candidates" binding:"required,min=1"`
}

type BulkCreateResult struct {
	Created    int         `json:"created"`
	Candidates []Candidate `json:"candidates"`
}
