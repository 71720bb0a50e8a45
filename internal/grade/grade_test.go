package grade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

func sameForAll(german string) map[verbs.Subject]verbs.Form {
	out := map[verbs.Subject]verbs.Form{}
	for _, s := range verbs.Subjects {
		out[s] = verbs.Form{German: german}
	}
	return out
}

func gehen() verbs.Verb {
	v := verbs.Verb{
		Infinitive:  "gehen",
		Translation: "to go",
		Irregular:   true,
		Present:     sameForAll("gehen"),
		Imperfekt:   sameForAll("gingen"),
		Perfekt:     sameForAll("sind gegangen"),
	}
	v.Present[verbs.SubjectIch] = verbs.Form{German: "gehe"}
	v.Imperfekt[verbs.SubjectIch] = verbs.Form{German: "ging"}
	v.Perfekt[verbs.SubjectIch] = verbs.Form{German: "bin/habe gegangen"}
	return v
}

func fahren() verbs.Verb {
	return verbs.Verb{
		Infinitive:  "fahren",
		Translation: "to drive",
		Irregular:   true,
		Present:     sameForAll("fährt"),
		Imperfekt:   sameForAll("fuhr"),
		Perfekt:     sameForAll("ist/hat gefahren/gefahren"),
	}
}

func TestEvaluatePerfektBothAuxiliariesAccepted(t *testing.T) {
	for _, aux := range []string{"habe", "bin"} {
		v := Evaluate(gehen(), verbs.TensePerfekt, verbs.SubjectIch, Submission{Auxiliary: aux, Participle: "gegangen"})
		assert.True(t, v.Passed, aux)
		assert.Equal(t, 1, v.Points)
		assert.Nil(t, v.Mistake)
	}
}

func TestEvaluateParticipleTrailingSpace(t *testing.T) {
	v := Evaluate(gehen(), verbs.TensePerfekt, verbs.SubjectIch, Submission{Auxiliary: "habe", Participle: "gegangen "})
	assert.True(t, v.Passed)
}

func TestEvaluateWrongAuxiliaryAlwaysIncorrect(t *testing.T) {
	for _, participle := range []string{"gefahren", "Gefahren", "", "x"} {
		v := Evaluate(fahren(), verbs.TensePerfekt, verbs.SubjectIch, Submission{Auxiliary: "bin", Participle: participle})
		assert.False(t, v.PerfektCorrect, participle)
		assert.False(t, v.AuxiliaryCorrect)
		assert.False(t, v.Passed)
		require.NotNil(t, v.Mistake)
	}
}

func TestEvaluateAllAwardsThree(t *testing.T) {
	v := Evaluate(gehen(), verbs.TenseAll, verbs.SubjectIch, Submission{
		Praesens:    "Gehe",
		Praeteritum: " ging",
		Auxiliary:   "bin",
		Participle:  "gegangen",
	})
	assert.True(t, v.Passed)
	assert.Equal(t, 3, v.Points)
	assert.Len(t, v.Fields, 3)
}

func TestEvaluateUngradedFieldsAreVacuouslyCorrect(t *testing.T) {
	v := Evaluate(gehen(), verbs.TensePraesens, verbs.SubjectIch, Submission{Praesens: "gehe"})
	assert.True(t, v.PraeteritumCorrect)
	assert.True(t, v.PerfektCorrect)
	assert.Equal(t, 1, v.Points)
	assert.Len(t, v.Fields, 1)
}

func TestEvaluateEmptySubmissionFails(t *testing.T) {
	v := Evaluate(gehen(), verbs.TenseAll, verbs.SubjectIch, Submission{})
	assert.False(t, v.Passed)
	assert.Zero(t, v.Points)
	require.NotNil(t, v.Mistake)
	assert.Equal(t, "gehen", v.Mistake.Infinitive)
	assert.Equal(t, "to go", v.Mistake.Translation)
	for _, f := range v.Mistake.Fields {
		assert.False(t, f.Correct)
		assert.Equal(t, "(empty)", f.Given)
	}
}

func TestEvaluateMistakeSnapshot(t *testing.T) {
	v := Evaluate(gehen(), verbs.TenseAll, verbs.SubjectIch, Submission{
		Praesens:    "gehe",
		Praeteritum: "gang",
		Auxiliary:   "habe",
		Participle:  "gegeht",
	})
	assert.Equal(t, 1, v.Points)
	require.NotNil(t, v.Mistake)
	wrong := v.Mistake.Wrong()
	require.Len(t, wrong, 2)
	assert.Equal(t, model.FieldPraeteritum, wrong[0].Field)
	assert.Equal(t, "ging", wrong[0].Expected)
	assert.Equal(t, "gang", wrong[0].Given)
	assert.Equal(t, model.FieldPerfekt, wrong[1].Field)
	assert.Equal(t, "bin/habe gegangen", wrong[1].Expected)
	assert.Equal(t, "habe gegeht", wrong[1].Given)
	assert.True(t, v.AuxiliaryCorrect)
	assert.False(t, v.ParticipleCorrect)
}

func TestEvaluateUsesSubjectColumn(t *testing.T) {
	v := Evaluate(gehen(), verbs.TensePraesens, verbs.SubjectWir, Submission{Praesens: "gehe"})
	assert.False(t, v.Passed)
	v = Evaluate(gehen(), verbs.TensePraesens, verbs.SubjectWir, Submission{Praesens: "gehen"})
	assert.True(t, v.Passed)
}

func TestEvaluateUnknownSubjectNeverPasses(t *testing.T) {
	unknown := verbs.Subject("man")
	v := Evaluate(gehen(), verbs.TenseAll, unknown, Submission{})
	assert.False(t, v.Passed)
	assert.Zero(t, v.Points)
	require.NotNil(t, v.Mistake)
	assert.Len(t, v.Mistake.Wrong(), 3)

	v = Evaluate(gehen(), verbs.TensePraesens, unknown, Submission{Praesens: "gehe"})
	assert.False(t, v.PraesensCorrect)
}
