package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/verbdrill/internal/model"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "verbdrill.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func drillAt(i int, mode string) model.DrillRecord {
	start := time.Unix(1_700_000_000, 0).UTC().Add(time.Duration(i) * time.Hour)
	return model.DrillRecord{
		StartedAt:  start,
		EndedAt:    start.Add(2 * time.Minute),
		Mode:       mode,
		Tense:      "all",
		Subject:    "ich",
		VerbType:   "all",
		Items:      4,
		Score:      9,
		Total:      12,
		DurationMs: (2 * time.Minute).Milliseconds(),
	}
}

func TestInsertAndListDrills(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	var ids []string
	for i, mode := range []string{"practice", "meanings", "practice"} {
		id, err := st.InsertDrill(ctx, drillAt(i, mode), nil)
		require.NoError(t, err)
		_, perr := uuid.Parse(id)
		require.NoError(t, perr)
		ids = append(ids, id)
	}

	all, err := st.ListDrills(ctx, model.StatsConfig{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, ids, []string{all[0].DrillID, all[1].DrillID, all[2].DrillID})
	assert.Equal(t, 9, all[0].Score)
	assert.Equal(t, 12, all[0].Total)
	assert.True(t, all[0].EndedAt.Equal(drillAt(0, "").EndedAt))

	practice, err := st.ListDrills(ctx, model.StatsConfig{Mode: "practice"})
	require.NoError(t, err)
	require.Len(t, practice, 2)

	last, err := st.ListDrills(ctx, model.StatsConfig{Last: 1})
	require.NoError(t, err)
	require.Len(t, last, 1)
	assert.Equal(t, ids[2], last[0].DrillID)

	since := drillAt(1, "").StartedAt
	recent, err := st.ListDrills(ctx, model.StatsConfig{Since: &since})
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestInsertDrillKeepsGivenID(t *testing.T) {
	st := openTemp(t)
	rec := drillAt(0, "practice")
	rec.ID = "fixed-id"
	id, err := st.InsertDrill(context.Background(), rec, nil)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)

	_, err = st.InsertDrill(context.Background(), rec, nil)
	assert.Error(t, err, "duplicate id")
}

func TestListMissedVerbs(t *testing.T) {
	st := openTemp(t)
	ctx := context.Background()

	gehen := model.Mistake{
		Infinitive:  "gehen",
		Translation: "to go",
		Fields: []model.FieldResult{
			{Field: model.FieldPraesens, Expected: "gehe", Given: "gehe", Correct: true},
			{Field: model.FieldPraeteritum, Expected: "ging", Given: "gang"},
			{Field: model.FieldPerfekt, Expected: "bin gegangen", Given: "(empty)"},
		},
	}
	sehen := model.Mistake{
		Infinitive:  "sehen",
		Translation: "to see",
		Direction:   "DE → EN",
		Fields:      []model.FieldResult{{Field: model.FieldMeaning, Expected: "to see", Given: "to go"}},
	}

	first, err := st.InsertDrill(ctx, drillAt(0, "practice"), []model.Mistake{gehen})
	require.NoError(t, err)
	second, err := st.InsertDrill(ctx, drillAt(1, "practice"), []model.Mistake{gehen, sehen})
	require.NoError(t, err)
	other, err := st.InsertDrill(ctx, drillAt(2, "practice"), []model.Mistake{sehen})
	require.NoError(t, err)

	aggs, err := st.ListMissedVerbs(ctx, []string{first, second})
	require.NoError(t, err)
	require.Len(t, aggs, 2)

	assert.Equal(t, "gehen", aggs[0].Infinitive)
	assert.Equal(t, "to go", aggs[0].Translation)
	assert.Equal(t, 2, aggs[0].Misses)
	assert.Equal(t, 0, aggs[0].Praesens)
	assert.Equal(t, 2, aggs[0].Praeteritum)
	assert.Equal(t, 2, aggs[0].Perfekt)

	assert.Equal(t, "sehen", aggs[1].Infinitive)
	assert.Equal(t, 1, aggs[1].Misses)
	assert.Equal(t, 1, aggs[1].Meaning)

	aggs, err = st.ListMissedVerbs(ctx, []string{other})
	require.NoError(t, err)
	require.Len(t, aggs, 1)

	aggs, err = st.ListMissedVerbs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, aggs)
}
