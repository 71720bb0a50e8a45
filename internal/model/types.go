// Package model defines shared data structures.
package model

import "time"

// Config defines drill settings resolved from flags and the config file.
type Config struct {
	Mode        string
	Tense       string
	Subject     string
	Direction   string
	VerbType    string
	Count       int
	CatalogPath string
	History     bool
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Mode        string
	Since       *time.Time
	Last        int
	CurveWindow int
	TopMissed   int
}

// Field identifies one graded answer slot.
type Field string

const (
	FieldPraesens    Field = "praesens"
	FieldPraeteritum Field = "praeteritum"
	FieldPerfekt     Field = "perfekt"
	FieldMeaning     Field = "meaning"
)

// Label returns the display name of the field.
func (f Field) Label() string {
	switch f {
	case FieldPraesens:
		return "Präsens"
	case FieldPraeteritum:
		return "Präteritum"
	case FieldPerfekt:
		return "Partizip Perfekt"
	case FieldMeaning:
		return "Meaning"
	default:
		return string(f)
	}
}

// FieldResult is the outcome of grading a single field.
type FieldResult struct {
	Field    Field
	Expected string
	Given    string
	Correct  bool
}

// Mistake is a snapshot of one incorrectly answered item.
type Mistake struct {
	Infinitive  string
	Translation string
	Direction   string
	Fields      []FieldResult
}

// Wrong returns only the fields that were answered incorrectly.
func (m Mistake) Wrong() []FieldResult {
	out := make([]FieldResult, 0, len(m.Fields))
	for _, f := range m.Fields {
		if !f.Correct {
			out = append(out, f)
		}
	}
	return out
}

// DrillRecord captures a completed drill for the history log.
type DrillRecord struct {
	ID         string
	StartedAt  time.Time
	EndedAt    time.Time
	Mode       string
	Tense      string
	Subject    string
	Direction  string
	VerbType   string
	Items      int
	Score      int
	Total      int
	DurationMs int64
}

// DrillAggregate summarizes a stored drill for reporting.
type DrillAggregate struct {
	DrillID    string
	EndedAt    time.Time
	Mode       string
	Tense      string
	Items      int
	Score      int
	Total      int
	DurationMs int64
}

// VerbAggregate aggregates mistakes for one verb across drills.
type VerbAggregate struct {
	Infinitive  string
	Translation string
	Misses      int
	Praesens    int
	Praeteritum int
	Perfekt     int
	Meaning     int
}
