package importer

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	csvText := "name,email,appliedFor,phone,source\n" +
		"John Doe,john@example.com,Software Engineer,+1234567890,LinkedIn\n" +
		",missing@example.com,Software Engineer,,\n" +
		"Jane Smith,not-an-email,Product Manager,,Referral\n" +
		"Bob Brown,bob@example.com,,,\n" +
		"Amy Adams , amy@example.com , Designer , , \n"

	rows := Parse(csvText)
	if len(rows) != 5 {
		t.Fatalf("parsed %d rows, want 5", len(rows))
	}

	t.Run("valid row", func(t *testing.T) {
		r := rows[0]
		if !r.IsValid {
			t.Fatalf("row flagged invalid: %v", r.Errors)
		}
		if r.Name != "John Doe" || r.Email != "john@example.com" || r.Source != "LinkedIn" {
			t.Errorf("unexpected fields: %+v", r)
		}
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		r := rows[1]
		if r.IsValid {
			t.Fatal("row with empty name passed validation")
		}
		if len(r.Errors) == 0 || !strings.Contains(r.Errors[0], "Name") {
			t.Errorf("errors = %v", r.Errors)
		}
	})

	t.Run("bad email is rejected", func(t *testing.T) {
		r := rows[2]
		if r.IsValid {
			t.Fatal("row with bad email passed validation")
		}
		found := false
		for _, e := range r.Errors {
			if e == "Invalid email" {
				found = true
			}
		}
		if !found {
			t.Errorf("errors = %v, want Invalid email", r.Errors)
		}
	})

	t.Run("missing position is rejected", func(t *testing.T) {
		r := rows[3]
		if r.IsValid {
			t.Fatal("row without position passed validation")
		}
	})

	t.Run("fields are trimmed and source defaults", func(t *testing.T) {
		r := rows[4]
		if r.Name != "Amy Adams" || r.Email != "amy@example.com" || r.AppliedFor != "Designer" {
			t.Errorf("fields not trimmed: %+v", r)
		}
		if r.Source != "CSV Import" {
			t.Errorf("Source = %q, want CSV Import default", r.Source)
		}
		if !r.IsValid {
			t.Errorf("row flagged invalid: %v", r.Errors)
		}
	})
}

func TestParseEdgeCases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty input", "", 0},
		{"header only", "name,email,appliedFor,phone,source\n", 0},
		{"blank lines are skipped", "name,email,appliedFor,phone,source\n\n\nJohn Doe,john@example.com,Engineer,,\n\n", 1},
		{"short row still parses", "name,email,appliedFor,phone,source\nJohn Doe,john@example.com,Engineer\n", 1},
		{"crlf line endings", "name,email,appliedFor,phone,source\r\nJohn Doe,john@example.com,Engineer,,LinkedIn\r\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := Parse(tt.text)
			if len(rows) != tt.want {
				t.Errorf("parsed %d rows, want %d", len(rows), tt.want)
			}
			for _, r := range rows {
				if !r.IsValid {
					t.Errorf("row invalid: %+v", r)
				}
			}
		})
	}
}

func TestValid(t *testing.T) {
	rows := Parse("name,email,appliedFor,phone,source\n" +
		"John Doe,john@example.com,Engineer,,\n" +
		"X,bad,,,\n")
	valid := Valid(rows)
	if len(valid) != 1 {
		t.Fatalf("valid rows = %d, want 1", len(valid))
	}
	if valid[0].Name != "John Doe" {
		t.Errorf("kept the wrong row: %+v", valid[0])
	}
}

func TestTemplate(t *testing.T) {
	content := string(Template())
	lines := strings.Split(strings.TrimSpace(content), "\n")
	if len(lines) != 3 {
		t.Fatalf("template has %d lines, want header plus two examples", len(lines))
	}
	if lines[0] != "name,email,appliedFor,phone,source" {
		t.Errorf("header = %q", lines[0])
	}
	// the example rows must pass our own validation
	rows := Parse(content)
	for _, r := range rows {
		if !r.IsValid {
			t.Errorf("template example row is invalid: %+v", r)
		}
	}
}
