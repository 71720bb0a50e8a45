package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "verbdrill.db")
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []string
	for i, verb := range []string{"gehen", "sehen", "fahren"} {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(30 * time.Second)
		rec := model.DrillRecord{
			StartedAt:  start,
			EndedAt:    end,
			Mode:       "practice",
			Tense:      "perfekt",
			Subject:    "ich",
			VerbType:   "all",
			Items:      3,
			Score:      2,
			Total:      3,
			DurationMs: end.Sub(start).Milliseconds(),
		}
		mistakes := []model.Mistake{{
			Infinitive:  verb,
			Translation: "to " + verb,
			Fields:      []model.FieldResult{{Field: model.FieldPerfekt, Expected: "x", Given: "(empty)"}},
		}}
		id, err := st.InsertDrill(ctx, rec, mistakes)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	cfg := model.StatsConfig{
		Mode:        "practice",
		Last:        2,
		CurveWindow: 1,
	}
	report, err := BuildReport(ctx, st, cfg)
	require.NoError(t, err)
	require.Len(t, report.Drills, 2)
	assert.Equal(t, ids[1], report.Drills[0].DrillID)
	assert.Equal(t, ids[2], report.Drills[1].DrillID)
	assert.Equal(t, []string{ids[2]}, report.WindowDrillIDs)
	assert.Len(t, report.MissedAll, 2)
	require.Len(t, report.MissedWindow, 1)
	assert.Equal(t, "fahren", report.MissedWindow[0].Infinitive)

	var buf bytes.Buffer
	require.NoError(t, report.Render(&buf, 2))
	for _, want := range []string{"Drills: 2 (2 graded)", "Accuracy Curve", "Most Missed Verbs", "sehen"} {
		assert.Contains(t, buf.String(), want)
	}
}
