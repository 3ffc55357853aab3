// Package importer parses bulk candidate CSV uploads. The format is the one
// the dashboard's template hands out: a header row, then comma-delimited
// rows of name,email,appliedFor,phone,source with no quoting or escaping.
package importer

import (
	"bytes"
	"encoding/csv"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/javiercriado/interview-dashboard/pkg/model"
)

const defaultSource = "CSV Import"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Row is one parsed CSV line with its validation verdict. Invalid rows are
// reported back for review, never created.
type Row struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	AppliedFor string   `json:"appliedFor"`
	Phone      string   `json:"phone"`
	Source     string   `json:"source"`
	IsValid    bool     `json:"isValid"`
	Errors     []string `json:"errors"`
}

func (r Row) Candidate() model.CreateCandidateReq {
	return model.CreateCandidateReq{
		Name:       r.Name,
		Email:      r.Email,
		AppliedFor: r.AppliedFor,
		Phone:      r.Phone,
		Source:     r.Source,
	}
}

// Parse splits raw CSV text into validated rows. Blank lines are dropped and
// the first remaining line is treated as the header. Fields are split on
// bare commas and trimmed; a missing source defaults to "CSV Import".
func Parse(text string) []Row {
	lines := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) <= 1 {
		return []Row{}
	}

	rows := make([]Row, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		row := Row{
			Name:       field(fields, 0),
			Email:      field(fields, 1),
			AppliedFor: field(fields, 2),
			Phone:      field(fields, 3),
			Source:     field(fields, 4),
			Errors:     []string{},
		}
		if row.Source == "" {
			row.Source = defaultSource
		}

		if utf8.RuneCountInString(row.Name) < 2 {
			row.Errors = append(row.Errors, "Name must be at least 2 characters")
		}
		if !emailPattern.MatchString(row.Email) {
			row.Errors = append(row.Errors, "Invalid email")
		}
		if row.AppliedFor == "" {
			row.Errors = append(row.Errors, "Position is required")
		}
		row.IsValid = len(row.Errors) == 0
		rows = append(rows, row)
	}
	return rows
}

func field(fields []string, i int) string {
	if i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

// Valid returns the subset of rows that passed validation.
func Valid(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if r.IsValid {
			out = append(out, r)
		}
	}
	return out
}

// Template renders the downloadable CSV template with two example rows.
func Template() []byte {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	_ = w.Write([]string{"name", "email", "appliedFor", "phone", "source"})
	_ = w.Write([]string{"John Doe", "john@example.com", "Software Engineer", "+1234567890", "LinkedIn"})
	_ = w.Write([]string{"Jane Smith", "jane@example.com", "Product Manager", "", "Referral"})
	w.Flush()
	return buf.Bytes()
}
