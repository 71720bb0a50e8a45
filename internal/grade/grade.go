// Package grade evaluates a submission for one verb against the stored
// conjugation templates.
package grade

import (
	"strings"

	"github.com/verte-zerg/verbdrill/internal/answer"
	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

const emptyAnswer = "(empty)"

// Submission holds the user's answers for one verb. Auxiliary is one of
// the two choices returned by verbs.AuxiliaryChoices.
type Submission struct {
	Praesens    string
	Praeteritum string
	Auxiliary   string
	Participle  string
}

// Verdict is the result of grading a submission. Fields that are not
// asked for under the tense are reported as correct.
type Verdict struct {
	PraesensCorrect    bool
	PraeteritumCorrect bool
	PerfektCorrect     bool
	AuxiliaryCorrect   bool
	ParticipleCorrect  bool

	Passed  bool
	Points  int
	Fields  []model.FieldResult
	Mistake *model.Mistake
}

// Correct reports the flag for a single field.
func (v Verdict) Correct(f model.Field) bool {
	switch f {
	case model.FieldPraesens:
		return v.PraesensCorrect
	case model.FieldPraeteritum:
		return v.PraeteritumCorrect
	case model.FieldPerfekt:
		return v.PerfektCorrect
	default:
		return true
	}
}

// Evaluate grades sub for verb under tense and subject. Every asked field
// is incorrect when subject is not one of verbs.Subjects.
func Evaluate(verb verbs.Verb, tense verbs.Tense, subject verbs.Subject, sub Submission) Verdict {
	v := Verdict{
		PraesensCorrect:    true,
		PraeteritumCorrect: true,
		PerfektCorrect:     true,
		AuxiliaryCorrect:   true,
		ParticipleCorrect:  true,
	}

	known := subject.Valid()
	fields := tense.Fields()
	v.Fields = make([]model.FieldResult, 0, len(fields))
	for _, f := range fields {
		expected := verb.Template(f, subject)
		res := model.FieldResult{Field: f, Expected: expected}
		switch f {
		case model.FieldPraesens:
			v.PraesensCorrect = known && answer.Matches(sub.Praesens, expected)
			res.Correct = v.PraesensCorrect
			res.Given = displayGiven(sub.Praesens)
		case model.FieldPraeteritum:
			v.PraeteritumCorrect = known && answer.Matches(sub.Praeteritum, expected)
			res.Correct = v.PraeteritumCorrect
			res.Given = displayGiven(sub.Praeteritum)
		case model.FieldPerfekt:
			c := answer.ParseAuxiliaryParticiple(expected)
			v.AuxiliaryCorrect = known && c.HasAuxiliary(sub.Auxiliary)
			v.ParticipleCorrect = known && c.HasParticiple(sub.Participle)
			v.PerfektCorrect = v.AuxiliaryCorrect && v.ParticipleCorrect
			res.Correct = v.PerfektCorrect
			res.Given = displayPerfekt(sub.Auxiliary, sub.Participle)
		}
		if res.Correct {
			v.Points++
		}
		v.Fields = append(v.Fields, res)
	}

	v.Passed = v.Points == len(fields)
	if !v.Passed {
		v.Mistake = &model.Mistake{
			Infinitive:  verb.Infinitive,
			Translation: verb.Translation,
			Fields:      append([]model.FieldResult(nil), v.Fields...),
		}
	}
	return v
}

func displayGiven(s string) string {
	if strings.TrimSpace(s) == "" {
		return emptyAnswer
	}
	return s
}

func displayPerfekt(aux, participle string) string {
	aux = strings.TrimSpace(aux)
	if aux == "" {
		return displayGiven(participle)
	}
	return aux + " " + participle
}
