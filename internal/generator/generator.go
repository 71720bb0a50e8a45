// Package generator provides the random source for drills: sample
// permutations, distractor picks and direction coin flips.
package generator

import (
	"math/rand"
	"time"
)

// Generator produces randomized drill orderings.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Generator with a fixed seed.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Permutation returns a uniform random permutation of [0, n) built with
// a Fisher-Yates shuffle.
func (g *Generator) Permutation(n int) []int {
	if n <= 0 {
		return nil
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := n - 1; i > 0; i-- {
		j := g.rnd.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

// Intn returns a uniform int in [0, n).
func (g *Generator) Intn(n int) int {
	return g.rnd.Intn(n)
}

// CoinFlip returns true with probability one half.
func (g *Generator) CoinFlip() bool {
	return g.rnd.Intn(2) == 0
}

// Pick draws up to k distinct values from pool without replacement,
// skipping empty values and anything equal to exclude.
func (g *Generator) Pick(pool []string, exclude string, k int) []string {
	if k <= 0 {
		return nil
	}
	seen := map[string]struct{}{exclude: {}}
	candidates := make([]string, 0, len(pool))
	for _, v := range pool {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		candidates = append(candidates, v)
	}
	out := make([]string, 0, k)
	for _, idx := range g.Permutation(len(candidates)) {
		if len(out) == k {
			break
		}
		out = append(out, candidates[idx])
	}
	return out
}
