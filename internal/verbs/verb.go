package verbs

import "github.com/verte-zerg/verbdrill/internal/model"

// Form is one conjugated form with its English gloss.
type Form struct {
	German  string `json:"german" validate:"required"`
	English string `json:"english"`
}

// Verb is one catalog entry. Perfekt forms are answer templates of the
// shape "<auxiliaries> <participles>", each part possibly "/"-separated.
type Verb struct {
	Infinitive  string           `json:"infinitive" validate:"required"`
	Translation string           `json:"translation" validate:"required"`
	Irregular   bool             `json:"irregular"`
	Present     map[Subject]Form `json:"present" validate:"len=6,dive,keys,oneof=ich du er/sie/es wir ihr sie/Sie,endkeys,required"`
	Imperfekt   map[Subject]Form `json:"imperfekt" validate:"len=6,dive,keys,oneof=ich du er/sie/es wir ihr sie/Sie,endkeys,required"`
	Perfekt     map[Subject]Form `json:"perfekt" validate:"len=6,dive,keys,oneof=ich du er/sie/es wir ihr sie/Sie,endkeys,required"`
}

// Template returns the stored answer template for a field and subject.
func (v Verb) Template(f model.Field, s Subject) string {
	switch f {
	case model.FieldPraesens:
		return v.Present[s].German
	case model.FieldPraeteritum:
		return v.Imperfekt[s].German
	case model.FieldPerfekt:
		return v.Perfekt[s].German
	case model.FieldMeaning:
		return v.Translation
	default:
		return ""
	}
}

func (v Verb) clone() Verb {
	out := v
	out.Present = cloneForms(v.Present)
	out.Imperfekt = cloneForms(v.Imperfekt)
	out.Perfekt = cloneForms(v.Perfekt)
	return out
}

func cloneForms(in map[Subject]Form) map[Subject]Form {
	out := make(map[Subject]Form, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
