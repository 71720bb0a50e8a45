// Package verbs holds the verb catalog and the fixed conjugation tables.
package verbs

import (
	"fmt"
	"strings"
)

// Subject is a grammatical person/number pronoun category.
type Subject string

const (
	SubjectIch Subject = "ich"
	SubjectDu  Subject = "du"
	SubjectEr  Subject = "er/sie/es"
	SubjectWir Subject = "wir"
	SubjectIhr Subject = "ihr"
	SubjectSie Subject = "sie/Sie"
)

// Subjects lists the canonical subjects in conjugation order.
var Subjects = []Subject{SubjectIch, SubjectDu, SubjectEr, SubjectWir, SubjectIhr, SubjectSie}

var subjectAliases = map[string]Subject{
	"er":  SubjectEr,
	"es":  SubjectEr,
	"Sie": SubjectSie,
}

var (
	habenForms = map[Subject]string{
		SubjectIch: "habe",
		SubjectDu:  "hast",
		SubjectEr:  "hat",
		SubjectWir: "haben",
		SubjectIhr: "habt",
		SubjectSie: "haben",
	}
	seinForms = map[Subject]string{
		SubjectIch: "bin",
		SubjectDu:  "bist",
		SubjectEr:  "ist",
		SubjectWir: "sind",
		SubjectIhr: "seid",
		SubjectSie: "sind",
	}
)

// ParseSubject resolves a canonical subject name or one of its aliases.
func ParseSubject(s string) (Subject, error) {
	s = strings.TrimSpace(s)
	for _, subj := range Subjects {
		if string(subj) == s {
			return subj, nil
		}
	}
	if subj, ok := subjectAliases[s]; ok {
		return subj, nil
	}
	return "", fmt.Errorf("unknown subject %q (use one of: %s)", s, subjectList())
}

// Valid reports whether s is one of the six canonical subjects.
func (s Subject) Valid() bool {
	_, ok := habenForms[s]
	return ok
}

// AuxiliaryChoices returns the conjugated haben and sein forms for the subject.
func AuxiliaryChoices(s Subject) (haben, sein string) {
	return habenForms[s], seinForms[s]
}

func subjectList() string {
	names := make([]string, len(Subjects))
	for i, s := range Subjects {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}
