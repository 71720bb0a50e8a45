package verbs

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/verbdrill/internal/model"
)

// Tense selects which conjugation fields a drill asks for.
type Tense string

const (
	TensePraesens  Tense = "praesens"
	TenseImperfekt Tense = "imperfekt"
	TensePerfekt   Tense = "perfekt"
	TenseAll       Tense = "all"
)

// ParseTense parses a tense name. "praeteritum" is accepted for imperfekt.
func ParseTense(s string) (Tense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "praesens", "präsens", "present":
		return TensePraesens, nil
	case "imperfekt", "praeteritum", "präteritum":
		return TenseImperfekt, nil
	case "perfekt":
		return TensePerfekt, nil
	case "all", "":
		return TenseAll, nil
	default:
		return "", fmt.Errorf("unknown tense %q (use praesens, imperfekt, perfekt or all)", s)
	}
}

// Fields returns the graded fields for the tense in display order.
func (t Tense) Fields() []model.Field {
	switch t {
	case TensePraesens:
		return []model.Field{model.FieldPraesens}
	case TenseImperfekt:
		return []model.Field{model.FieldPraeteritum}
	case TensePerfekt:
		return []model.Field{model.FieldPerfekt}
	case TenseAll:
		return []model.Field{model.FieldPraesens, model.FieldPraeteritum, model.FieldPerfekt}
	default:
		return nil
	}
}

// Includes reports whether the field is graded under the tense.
func (t Tense) Includes(f model.Field) bool {
	for _, field := range t.Fields() {
		if field == f {
			return true
		}
	}
	return false
}

// TypeFilter restricts a catalog by verb type.
type TypeFilter string

const (
	TypeAll       TypeFilter = "all"
	TypeIrregular TypeFilter = "irregular"
	TypeRegular   TypeFilter = "regular"
)

// ParseTypeFilter parses a verb type filter; empty means all.
func ParseTypeFilter(s string) (TypeFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return TypeAll, nil
	case "irregular":
		return TypeIrregular, nil
	case "regular":
		return TypeRegular, nil
	default:
		return "", fmt.Errorf("unknown verb type %q (use all, irregular or regular)", s)
	}
}

func (f TypeFilter) keep(v Verb) bool {
	switch f {
	case TypeIrregular:
		return v.Irregular
	case TypeRegular:
		return !v.Irregular
	default:
		return true
	}
}
