// Package answer normalizes user answers and expands answer templates
// that encode several acceptable spellings with "/".
package answer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Compound is the parsed form of a Perfekt template.
type Compound struct {
	Auxiliaries []string
	Participles []string
}

// Normalize lowercases, trims, folds ß to ss and composes to NFC.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = cases.Lower(language.German).String(s)
	s = strings.ReplaceAll(s, "ß", "ss")
	return norm.NFC.String(s)
}

// ExpandAlternatives returns every literal answer a template accepts.
//
// Exactly one whitespace-separated token may carry "/" alternatives. When
// no token or several tokens do, the whole template is the only answer.
func ExpandAlternatives(template string) []string {
	if !strings.Contains(template, "/") {
		return []string{template}
	}
	tokens := strings.Fields(template)
	slot := -1
	for i, tok := range tokens {
		if !strings.Contains(tok, "/") {
			continue
		}
		if slot != -1 {
			return []string{template}
		}
		slot = i
	}
	if slot == -1 {
		return []string{template}
	}

	alts := strings.Split(tokens[slot], "/")
	out := make([]string, 0, len(alts))
	seen := make(map[string]struct{}, len(alts))
	parts := append([]string(nil), tokens...)
	for _, alt := range alts {
		if alt == "" {
			continue
		}
		parts[slot] = alt
		full := strings.Join(parts, " ")
		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}
		out = append(out, full)
	}
	if len(out) == 0 {
		return []string{template}
	}
	return out
}

// Matches reports whether the answer equals any expansion of the template
// after normalization. An empty answer never matches.
func Matches(given, template string) bool {
	g := Normalize(given)
	if g == "" {
		return false
	}
	for _, alt := range ExpandAlternatives(template) {
		if g == Normalize(alt) {
			return true
		}
	}
	return false
}

// ParseAuxiliaryParticiple splits a Perfekt template on its first
// whitespace into auxiliary and participle alternatives.
func ParseAuxiliaryParticiple(template string) Compound {
	template = strings.TrimSpace(template)
	auxPart, rest := template, ""
	if i := strings.IndexFunc(template, unicode.IsSpace); i >= 0 {
		auxPart = template[:i]
		rest = strings.Join(strings.Fields(template[i:]), " ")
	}

	var c Compound
	for _, aux := range strings.Split(auxPart, "/") {
		if aux = strings.ToLower(strings.TrimSpace(aux)); aux != "" {
			c.Auxiliaries = append(c.Auxiliaries, aux)
		}
	}
	for _, p := range strings.Split(rest, "/") {
		if p = strings.TrimSpace(p); p != "" {
			c.Participles = append(c.Participles, p)
		}
	}
	return c
}

// HasAuxiliary reports whether the chosen auxiliary is accepted.
func (c Compound) HasAuxiliary(chosen string) bool {
	chosen = strings.ToLower(strings.TrimSpace(chosen))
	if chosen == "" {
		return false
	}
	for _, aux := range c.Auxiliaries {
		if aux == chosen {
			return true
		}
	}
	return false
}

// HasParticiple reports whether the participle text matches an alternative.
func (c Compound) HasParticiple(text string) bool {
	given := Normalize(text)
	if given == "" {
		return false
	}
	for _, p := range c.Participles {
		if given == Normalize(p) {
			return true
		}
	}
	return false
}
