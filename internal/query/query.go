// Package query narrows and orders in-memory collections from request
// parameters. Functions are pure: inputs are never mutated, filters compose
// by AND, and an empty parameter means no constraint.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/javiercriado/interview-dashboard/pkg/model"
)

const (
	SortByScore = "score"
	SortByDate  = "date"
)

// InterviewParams are the recognized query parameters of the interview list
// endpoint, all optional.
type InterviewParams struct {
	Status      string `form:"status"`
	JobPosition string `form:"jobPosition"`
	Search      string `form:"search"`
	StartDate   string `form:"startDate"`
	EndDate     string `form:"endDate"`
	SortBy      string `form:"sortBy"`
}

// CandidateParams are the recognized query parameters of the candidate list
// endpoint. Candidates have no date range and no sort.
type CandidateParams struct {
	Status      string `form:"status"`
	JobPosition string `form:"jobPosition"`
	Search      string `form:"search"`
}

// Interviews returns the subset of all matching p, in a fresh slice,
// optionally sorted descending by score or completion date.
func Interviews(all []model.Interview, p InterviewParams) []model.Interview {
	filtered := make([]model.Interview, 0, len(all))
	for _, iv := range all {
		if p.Status != "" && string(iv.Status) != p.Status {
			continue
		}
		if p.JobPosition != "" && iv.JobPosition != p.JobPosition {
			continue
		}
		if !inDateRange(iv.CompletedAt, p.StartDate, p.EndDate) {
			continue
		}
		if !matchesSearch(p.Search, iv.CandidateName, iv.CandidateEmail) {
			continue
		}
		filtered = append(filtered, iv)
	}

	switch p.SortBy {
	case SortByScore:
		sort.Slice(filtered, func(i, j int) bool {
			return filtered[i].Score > filtered[j].Score
		})
	case SortByDate:
		sort.Slice(filtered, func(i, j int) bool {
			return parseTimestamp(filtered[i].CompletedAt).After(parseTimestamp(filtered[j].CompletedAt))
		})
	}
	return filtered
}

// Candidates returns the subset of all matching p, in a fresh slice.
// The jobPosition parameter matches the position applied for.
func Candidates(all []model.Candidate, p CandidateParams) []model.Candidate {
	filtered := make([]model.Candidate, 0, len(all))
	for _, c := range all {
		if p.Status != "" && string(c.Status) != p.Status {
			continue
		}
		if p.JobPosition != "" && c.AppliedFor != p.JobPosition {
			continue
		}
		if !matchesSearch(p.Search, c.Name, c.Email) {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}

// matchesSearch is a case-insensitive substring match against name or email.
// An empty term matches everything.
func matchesSearch(term, name, email string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(name), term) ||
		strings.Contains(strings.ToLower(email), term)
}

// inDateRange checks completedAt against an inclusive calendar-day range.
// The start bound is normalized to 00:00:00.000 UTC and the end bound to
// 23:59:59.999 UTC of its day. Unparsable bounds are ignored; an unparsable
// completedAt is excluded once a bound is active.
func inDateRange(completedAt, startDate, endDate string) bool {
	start, hasStart := parseBound(startDate)
	end, hasEnd := parseBound(endDate)
	if !hasStart && !hasEnd {
		return true
	}

	ts := parseTimestamp(completedAt)
	if ts.IsZero() {
		return false
	}
	if hasStart {
		start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
		if ts.Before(start) {
			return false
		}
	}
	if hasEnd {
		end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, time.UTC)
		if ts.After(end) {
			return false
		}
	}
	return true
}

func parseBound(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t.UTC()
}
