package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/verbdrill/internal/model"
)

func TestTopMissed(t *testing.T) {
	aggs := []model.VerbAggregate{
		{Infinitive: "sehen", Misses: 1},
		{Infinitive: "gehen", Misses: 3},
		{Infinitive: "fahren", Misses: 3},
	}
	top := TopMissed(aggs, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "fahren", top[0].Infinitive)
	assert.Equal(t, "gehen", top[1].Infinitive)
	assert.Equal(t, "sehen", aggs[0].Infinitive, "input must not be reordered")
	assert.Nil(t, TopMissed(aggs, 0))
}

func TestWeakestField(t *testing.T) {
	aggs := []model.VerbAggregate{
		{Infinitive: "gehen", Praesens: 1, Perfekt: 2},
		{Infinitive: "sehen", Praeteritum: 2, Perfekt: 1},
	}
	field, misses := WeakestField(aggs)
	assert.Equal(t, model.FieldPerfekt, field)
	assert.Equal(t, 3, misses)

	_, misses = WeakestField(nil)
	assert.Zero(t, misses)
}
