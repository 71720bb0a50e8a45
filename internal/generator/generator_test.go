package generator

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPermutationIsPermutation(t *testing.T) {
	g := NewWithSeed(1)
	for n := 0; n < 12; n++ {
		perm := g.Permutation(n)
		require.Len(t, perm, n)
		sorted := append([]int(nil), perm...)
		sort.Ints(sorted)
		for i, v := range sorted {
			require.Equal(t, i, v, "not a permutation: %v", perm)
		}
	}
}

func TestPermutationFirstPositionRoughlyUniform(t *testing.T) {
	g := NewWithSeed(42)
	const n, runs = 10, 10000
	counts := make([]int, n)
	for i := 0; i < runs; i++ {
		counts[g.Permutation(n)[0]]++
	}
	expected := runs / n
	for v, c := range counts {
		assert.InDelta(t, expected, c, float64(expected)*0.2, "value %d first", v)
	}
}

func TestPickDistinctAndExcludes(t *testing.T) {
	g := NewWithSeed(7)
	pool := []string{"to go", "to see", "to go", "", "to eat", "to run", "to see"}
	for i := 0; i < 50; i++ {
		got := g.Pick(pool, "to run", 3)
		require.Len(t, got, 3)
		assert.NotContains(t, got, "to run")
		assert.NotContains(t, got, "")
		seen := map[string]bool{}
		for _, v := range got {
			assert.False(t, seen[v], "duplicate pick %q in %v", v, got)
			seen[v] = true
		}
	}
	assert.Empty(t, g.Pick([]string{"a"}, "a", 3))
}

func TestCoinFlipBothSides(t *testing.T) {
	g := NewWithSeed(3)
	heads := 0
	for i := 0; i < 1000; i++ {
		if g.CoinFlip() {
			heads++
		}
	}
	assert.InDelta(t, 500, heads, 100, "coin flip biased")
}
