package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/verbdrill/internal/grade"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

var (
	checkTense       string
	checkSubject     string
	checkPraesens    string
	checkPraeteritum string
	checkAux         string
	checkParticiple  string
)

var errAnswerIncorrect = errors.New("answer incorrect")

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check INFINITIVE",
		Short: "Grade a single answer without the TUI",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheckCmd,
	}
	cmd.Flags().StringVar(&checkTense, "tense", defaultTense, "praesens, imperfekt, perfekt or all")
	cmd.Flags().StringVar(&checkSubject, "subject", defaultSubject, "ich, du, er/sie/es, wir, ihr or sie/Sie")
	cmd.Flags().StringVar(&checkPraesens, "praesens", "", "Präsens answer")
	cmd.Flags().StringVar(&checkPraeteritum, "praeteritum", "", "Präteritum answer")
	cmd.Flags().StringVar(&checkAux, "aux", "", "Perfekt auxiliary (e.g. habe or bin)")
	cmd.Flags().StringVar(&checkParticiple, "participle", "", "Partizip Perfekt answer")
	cmd.Flags().StringVar(&drillVerbs, "verbs", "", "path to a JSON verb catalog")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	logger, err := stderrLogger(logLevel)
	if err != nil {
		return err
	}
	tense, err := verbs.ParseTense(checkTense)
	if err != nil {
		return err
	}
	subject, err := verbs.ParseSubject(checkSubject)
	if err != nil {
		return err
	}
	aux, err := checkAuxiliary(checkAux, subject)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(drillVerbs)
	if err != nil {
		return err
	}
	verb, ok := catalog.Get(strings.TrimSpace(args[0]))
	if !ok {
		return fmt.Errorf("unknown verb %q", args[0])
	}

	verdict := grade.Evaluate(verb, tense, subject, grade.Submission{
		Praesens:    checkPraesens,
		Praeteritum: checkPraeteritum,
		Auxiliary:   aux,
		Participle:  checkParticiple,
	})
	logger.Debug("checked answer", "verb", verb.Infinitive, "tense", tense, "subject", subject, "points", verdict.Points)

	lines := []string{fmt.Sprintf("%s (%s), %s", verb.Infinitive, verb.Translation, subject)}
	for _, f := range verdict.Fields {
		if f.Correct {
			lines = append(lines, fmt.Sprintf("  ✓ %s: %s", f.Field.Label(), f.Expected))
		} else {
			lines = append(lines, fmt.Sprintf("  ✗ %s: expected %s, got %s", f.Field.Label(), f.Expected, f.Given))
		}
	}
	lines = append(lines, fmt.Sprintf("Score: %d/%d", verdict.Points, len(tense.Fields())))
	if err := writeLines(cmd.OutOrStdout(), lines...); err != nil {
		return err
	}
	if !verdict.Passed {
		return errAnswerIncorrect
	}
	return nil
}

// checkAuxiliary accepts an empty value or one of the subject's haben and
// sein forms.
func checkAuxiliary(value string, subject verbs.Subject) (string, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return "", nil
	}
	haben, sein := verbs.AuxiliaryChoices(subject)
	if value != haben && value != sein {
		return "", fmt.Errorf("invalid --aux %q for %s (use %s or %s)", value, subject, haben, sein)
	}
	return value, nil
}
