package model

// Funnel counts candidates and interviews at each pipeline stage.
type Funnel struct {
	Invited   int `json:"invited"`
	Started   int `json:"started"`
	Completed int `json:"completed"`
}

// RecommendationCounts buckets interview verdicts for the dashboard chart.
// Hire aggregates both "hire" and "strong_hire".
type RecommendationCounts struct {
	Hire   int `json:"hire"`
	Maybe  int `json:"maybe"`
	NoHire int `json:"no_hire"`
}

// Analytics is fully derived from the store on each request, never persisted.
type Analytics struct {
	Total           int                  `json:"total"`
	Completed       int                  `json:"completed"`
	AvgScore        float64              `json:"avgScore"`
	Funnel          Funnel               `json:"funnel"`
	ByPosition      map[string]int       `json:"byPosition"`
	Recommendations RecommendationCounts `json:"recommendations"`
}
