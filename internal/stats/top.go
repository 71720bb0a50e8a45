package stats

import (
	"sort"

	"github.com/verte-zerg/verbdrill/internal/model"
)

// TopMissed returns the n verbs with the most misses.
func TopMissed(aggs []model.VerbAggregate, n int) []model.VerbAggregate {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	items := make([]model.VerbAggregate, len(aggs))
	copy(items, aggs)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Misses == items[j].Misses {
			return items[i].Infinitive < items[j].Infinitive
		}
		return items[i].Misses > items[j].Misses
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
