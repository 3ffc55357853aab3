package memory

import "github.com/javiercriado/interview-dashboard/pkg/model"

// seed loads the demo data set and advances the id counters past it.
func (s *Store) seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.interviews = []model.Interview{
		{
			ID:             "1",
			CandidateID:    "c1",
			CandidateName:  "Sarah Johnson",
			CandidateEmail: "sarah.j@email.com",
			JobPosition:    "Senior Software Engineer",
			CompletedAt:    "2025-10-10T14:30:00Z",
			Duration:       1847,
			Status:         model.InterviewCompleted,
			Score:          85,
			Recommendation: model.RecommendationHire,
			Competencies: map[string]float64{
				"Technical Skills": 90,
				"Problem Solving":  85,
				"Communication":    80,
				"Cultural Fit":     85,
			},
			Summary:    "Strong technical candidate with excellent problem-solving skills. Demonstrated deep knowledge of system design and algorithms. Communication was clear and concise.",
			Transcript: "AI: Tell me about your experience with distributed systems...\nCandidate: I have worked extensively with microservices...",
			AudioURL:   "/audio/interview-1.mp3",
		},
		{
			ID:             "2",
			CandidateID:    "c2",
			CandidateName:  "Michael Chen",
			CandidateEmail: "mchen@email.com",
			JobPosition:    "Product Manager",
			CompletedAt:    "2025-10-09T10:15:00Z",
			Duration:       2134,
			Status:         model.InterviewCompleted,
			Score:          72,
			Recommendation: model.RecommendationMaybe,
			Competencies: map[string]float64{
				"Product Strategy":       75,
				"Stakeholder Management": 70,
				"Data Analysis":          68,
				"Leadership":             75,
			},
			Summary:    "Decent product sense but lacks senior-level strategic thinking. Would benefit from more experience in larger organizations.",
			Transcript: "AI: Describe a time you had to make a difficult product decision...\nCandidate: At my previous company...",
			AudioURL:   "/audio/interview-2.mp3",
		},
		{
			ID:             "3",
			CandidateID:    "c3",
			CandidateName:  "Emily Rodriguez",
			CandidateEmail: "emily.r@email.com",
			JobPosition:    "Senior Software Engineer",
			CompletedAt:    "2025-10-08T16:45:00Z",
			Duration:       1654,
			Status:         model.InterviewCompleted,
			Score:          92,
			Recommendation: model.RecommendationStrongHire,
			Competencies: map[string]float64{
				"Technical Skills": 95,
				"Problem Solving":  92,
				"Communication":    88,
				"Cultural Fit":     92,
			},
			Summary:    "Exceptional candidate. Deep technical expertise, excellent communication, strong culture fit. Highly recommended for hire.",
			Transcript: "AI: Walk me through how you would design a URL shortener...\nCandidate: I would start by considering the scale...",
			AudioURL:   "/audio/interview-3.mp3",
		},
	}
	s.interviewSeq = 3

	s.candidates = []model.Candidate{
		{
			ID:            "c1",
			Name:          "Sarah Johnson",
			Email:         "sarah.j@email.com",
			Phone:         "+1-555-0101",
			AppliedFor:    "Senior Software Engineer",
			Status:        model.CandidateInterviewed,
			InvitedAt:     "2025-10-09T09:00:00Z",
			InterviewedAt: "2025-10-10T14:30:00Z",
			Source:        "LinkedIn",
		},
		{
			ID:            "c2",
			Name:          "Michael Chen",
			Email:         "mchen@email.com",
			Phone:         "+1-555-0102",
			AppliedFor:    "Product Manager",
			Status:        model.CandidateInterviewed,
			InvitedAt:     "2025-10-08T10:00:00Z",
			InterviewedAt: "2025-10-09T10:15:00Z",
			Source:        "Job Board",
		},
		{
			ID:            "c3",
			Name:          "Emily Rodriguez",
			Email:         "emily.r@email.com",
			Phone:         "+1-555-0103",
			AppliedFor:    "Senior Software Engineer",
			Status:        model.CandidateInterviewed,
			InvitedAt:     "2025-10-07T14:00:00Z",
			InterviewedAt: "2025-10-08T16:45:00Z",
			Source:        "Referral",
		},
		{
			ID:         "c4",
			Name:       "David Kim",
			Email:      "dkim@email.com",
			Phone:      "+1-555-0104",
			AppliedFor: "Data Scientist",
			Status:     model.CandidateInvited,
			InvitedAt:  "2025-10-10T08:00:00Z",
			Source:     "LinkedIn",
		},
		{
			ID:         "c5",
			Name:       "Lisa Wang",
			Email:      "lwang@email.com",
			Phone:      "+1-555-0105",
			AppliedFor: "Senior Software Engineer",
			Status:     model.CandidatePending,
			Source:     "Company Website",
		},
	}
	s.candidateSeq = 5

	s.templates = []model.InterviewTemplate{
		{
			ID:          "t1",
			Name:        "Senior Software Engineer Interview",
			JobPosition: "Senior Software Engineer",
			Duration:    30,
			Questions: []model.Question{
				{
					ID:         "q1",
					Text:       "Tell me about your experience with distributed systems.",
					Competency: "Technical Skills",
					FollowUps:  []string{"What challenges did you face?", "How did you solve them?"},
					IsRequired: true,
				},
				{
					ID:         "q2",
					Text:       "Describe a time you had to make a technical trade-off.",
					Competency: "Problem Solving",
					FollowUps:  []string{"What factors did you consider?"},
					IsRequired: true,
				},
				{
					ID:         "q3",
					Text:       "How do you approach code reviews?",
					Competency: "Communication",
					FollowUps:  []string{"Give an example of feedback you provided."},
					IsRequired: true,
				},
			},
			Competencies: []string{"Technical Skills", "Problem Solving", "Communication", "Cultural Fit"},
			CreatedAt:    "2025-09-01T10:00:00Z",
		},
		{
			ID:          "t2",
			Name:        "Product Manager Interview",
			JobPosition: "Product Manager",
			Duration:    30,
			Questions: []model.Question{
				{
					ID:         "q1",
					Text:       "Describe your product development process.",
					Competency: "Product Strategy",
					FollowUps:  []string{"How do you prioritize features?"},
					IsRequired: true,
				},
				{
					ID:         "q2",
					Text:       "Tell me about a time you had to influence without authority.",
					Competency: "Stakeholder Management",
					FollowUps:  []string{"What was the outcome?"},
					IsRequired: true,
				},
			},
			Competencies: []string{"Product Strategy", "Stakeholder Management", "Data Analysis", "Leadership"},
			CreatedAt:    "2025-09-01T10:00:00Z",
		},
	}
	s.templateSeq = 2
}
