package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

var (
	listType    string
	listSubject string
)

var (
	listHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	listCellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func newVerbsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verbs",
		Short: "List the verb catalog",
		Args:  cobra.NoArgs,
		RunE:  runVerbsCmd,
	}
	cmd.Flags().StringVar(&listType, "type", defaultType, "all, irregular or regular")
	cmd.Flags().StringVar(&listSubject, "subject", defaultSubject, "subject whose forms are shown")
	cmd.Flags().StringVar(&drillVerbs, "verbs", "", "path to a JSON verb catalog")
	return cmd
}

func runVerbsCmd(cmd *cobra.Command, _ []string) error {
	filter, err := verbs.ParseTypeFilter(listType)
	if err != nil {
		return err
	}
	subject, err := verbs.ParseSubject(listSubject)
	if err != nil {
		return err
	}
	catalog, err := loadCatalog(drillVerbs)
	if err != nil {
		return err
	}
	list := catalog.Filter(filter)
	if len(list) == 0 {
		return fmt.Errorf("no verbs match filter --type=%s", filter)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Infinitive", "Meaning", "Type", "Präsens", "Präteritum", "Perfekt").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return listHeaderStyle
			}
			return listCellStyle
		})
	for _, v := range list {
		kind := "regular"
		if v.Irregular {
			kind = "irregular"
		}
		t.Row(
			v.Infinitive,
			v.Translation,
			kind,
			v.Template(model.FieldPraesens, subject),
			v.Template(model.FieldPraeteritum, subject),
			v.Template(model.FieldPerfekt, subject),
		)
	}
	if width, ok := terminalWidth(); ok {
		t.Width(width)
	}
	return writeLines(cmd.OutOrStdout(), t.Render(), fmt.Sprintf("%d verbs (%s)", len(list), subject))
}

func terminalWidth() (int, bool) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
