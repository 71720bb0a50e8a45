package stats

import "github.com/verte-zerg/verbdrill/internal/model"

// WeakestField returns the field with the most misses across aggregates.
// Ties go to the earlier field in drill order.
func WeakestField(aggs []model.VerbAggregate) (model.Field, int) {
	totals := map[model.Field]int{}
	for _, a := range aggs {
		totals[model.FieldPraesens] += a.Praesens
		totals[model.FieldPraeteritum] += a.Praeteritum
		totals[model.FieldPerfekt] += a.Perfekt
		totals[model.FieldMeaning] += a.Meaning
	}
	best, misses := model.FieldPraesens, 0
	for _, f := range []model.Field{model.FieldPraesens, model.FieldPraeteritum, model.FieldPerfekt, model.FieldMeaning} {
		if totals[f] > misses {
			best, misses = f, totals[f]
		}
	}
	return best, misses
}
