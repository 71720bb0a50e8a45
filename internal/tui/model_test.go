package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/verbdrill/internal/generator"
	"github.com/verte-zerg/verbdrill/internal/logging"
	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/session"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

type fakeHistory struct {
	records  []model.DrillRecord
	mistakes [][]model.Mistake
	drills   []model.DrillAggregate
	err      error
}

func (f *fakeHistory) InsertDrill(_ context.Context, rec model.DrillRecord, mistakes []model.Mistake) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.records = append(f.records, rec)
	f.mistakes = append(f.mistakes, mistakes)
	return fmt.Sprintf("id-%d", len(f.records)), nil
}

func (f *fakeHistory) ListDrills(_ context.Context, _ model.StatsConfig) ([]model.DrillAggregate, error) {
	return f.drills, nil
}

func forms(german string) map[verbs.Subject]verbs.Form {
	out := map[verbs.Subject]verbs.Form{}
	for _, s := range verbs.Subjects {
		out[s] = verbs.Form{German: german}
	}
	return out
}

func testCatalog(t *testing.T, n int) *verbs.Catalog {
	t.Helper()
	records := []verbs.Verb{{
		Infinitive:  "gehen",
		Translation: "to go",
		Irregular:   true,
		Present:     forms("gehe"),
		Imperfekt:   forms("ging"),
		Perfekt:     forms("bin/habe gegangen"),
	}}
	for i := 1; i < n; i++ {
		records = append(records, verbs.Verb{
			Infinitive:  fmt.Sprintf("verb%d", i),
			Translation: fmt.Sprintf("to do %d", i),
			Present:     forms("p"),
			Imperfekt:   forms("i"),
			Perfekt:     forms("habe x"),
		})
	}
	c, err := verbs.NewCatalog(records)
	require.NoError(t, err)
	return c
}

func newTestModel(t *testing.T, n int, opts session.Options, hist History) *Model {
	t.Helper()
	m, err := NewModel(session.New(generator.NewWithSeed(1)), testCatalog(t, n), opts, hist, logging.Discard())
	require.NoError(t, err)
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestPracticeFlowSavesDrill(t *testing.T) {
	hist := &fakeHistory{}
	opts := session.Options{Mode: session.ModePractice, Tense: verbs.TensePerfekt, Subject: verbs.SubjectIch}
	m := newTestModel(t, 1, opts, hist)

	press(m, "1", "tab", "gegangen", "enter")
	require.NotNil(t, m.verdict)
	assert.True(t, m.verdict.passed)
	assert.Contains(t, m.View(), "Correct!")

	press(m, "enter")
	require.Equal(t, session.StateSummary, m.ctrl.State())
	require.NotNil(t, m.summary)
	assert.Equal(t, 1, m.summary.Score)
	assert.Equal(t, 1, m.summary.Total)

	require.Len(t, hist.records, 1)
	rec := hist.records[0]
	assert.Equal(t, "practice", rec.Mode)
	assert.Equal(t, "perfekt", rec.Tense)
	assert.Equal(t, "ich", rec.Subject)
	assert.Equal(t, 1, rec.Total)
	assert.Contains(t, m.View(), "Score 1/1 (100%)")

	press(m, "r")
	assert.Equal(t, session.StateActive, m.ctrl.State(), "restart starts a new drill")
}

func TestPracticeMistakeShownInSummary(t *testing.T) {
	hist := &fakeHistory{}
	opts := session.Options{Mode: session.ModePractice, Tense: verbs.TenseImperfekt, Subject: verbs.SubjectIch}
	m := newTestModel(t, 1, opts, hist)

	press(m, "gang", "enter", "enter")
	require.NotNil(t, m.summary)
	require.Len(t, m.summary.Mistakes, 1)
	assert.Contains(t, m.View(), "expected ging, got gang")
	require.Len(t, hist.mistakes, 1)
	assert.Len(t, hist.mistakes[0], 1)
}

func TestPracticeEmptyAnswerIsWrong(t *testing.T) {
	opts := session.Options{Mode: session.ModePractice, Tense: verbs.TensePraesens, Subject: verbs.SubjectIch}
	m := newTestModel(t, 1, opts, nil)

	press(m, "enter")
	require.NotNil(t, m.verdict)
	assert.False(t, m.verdict.passed)
	press(m, "enter")
	require.NotNil(t, m.summary)
	assert.Zero(t, m.summary.Score)
	assert.Contains(t, m.View(), "expected gehe, got (empty)")
}

func TestHistoryFailureDoesNotInterruptDrill(t *testing.T) {
	hist := &fakeHistory{err: errors.New("disk full")}
	opts := session.Options{Mode: session.ModePractice, Tense: verbs.TensePraesens, Subject: verbs.SubjectIch}
	m := newTestModel(t, 1, opts, hist)

	press(m, "gehe", "enter", "enter")
	require.NotNil(t, m.summary, "summary despite store failure")
	assert.Contains(t, m.View(), "History not saved.")
}

func TestMeaningsFlow(t *testing.T) {
	opts := session.Options{Mode: session.ModeMeanings, Direction: session.DirectionDeEn, SampleSize: 2}
	m := newTestModel(t, 5, opts, nil)

	for i := 0; i < 2; i++ {
		r, err := m.ctrl.Round()
		require.NoError(t, err)
		press(m, fmt.Sprintf("%d", r.Correct+1))
		require.NotNil(t, m.choice)
		assert.True(t, m.choice.Correct)
		press(m, "9")
		assert.Equal(t, r.Correct, m.choice.Chosen, "second choice must be ignored")
		press(m, "enter")
	}
	require.NotNil(t, m.summary)
	assert.Equal(t, 2, m.summary.Score)
	assert.Equal(t, 100, m.summary.Percentage)
}

func TestMemorizeFlow(t *testing.T) {
	opts := session.Options{Mode: session.ModeMemorize, Tense: verbs.TenseAll, Subject: verbs.SubjectIch}
	m := newTestModel(t, 1, opts, nil)

	assert.NotContains(t, m.View(), "ging", "forms are hidden before reveal")
	press(m, "2")
	assert.Contains(t, m.View(), "ging")
	press(m, " ")
	assert.True(t, m.allRevealed())
	press(m, "enter")
	require.NotNil(t, m.summary)
	assert.Equal(t, 1, m.summary.Items)
	assert.Contains(t, m.View(), "Reviewed 1 verbs")
}

func TestRenderFooterFormats(t *testing.T) {
	hist := &fakeHistory{drills: []model.DrillAggregate{
		{Score: 3, Total: 4},
		{Score: 1, Total: 4},
		{Items: 5},
	}}
	opts := session.Options{Mode: session.ModePractice, Tense: verbs.TensePraesens, Subject: verbs.SubjectIch}
	m := newTestModel(t, 2, opts, hist)

	out := m.renderFooter()
	for _, want := range []string{"Verb 1/2", "Score 0", "Last 25.0%", "All-time 50.0%"} {
		assert.Contains(t, out, want)
	}
}

func TestNewModelEmptyFilter(t *testing.T) {
	opts := session.Options{Mode: session.ModePractice, Tense: verbs.TenseAll, Subject: verbs.SubjectIch, Type: verbs.TypeRegular}
	catalog, err := verbs.NewCatalog([]verbs.Verb{{
		Infinitive: "gehen", Translation: "to go", Irregular: true,
		Present: forms("gehe"), Imperfekt: forms("ging"), Perfekt: forms("bin gegangen"),
	}})
	require.NoError(t, err)
	_, err = NewModel(session.New(generator.NewWithSeed(1)), catalog, opts, nil, logging.Discard())
	assert.ErrorIs(t, err, session.ErrEmptyCatalog)
}
