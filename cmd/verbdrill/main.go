// Package main provides the CLI entrypoint for verbdrill.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/verbdrill/internal/config"
	"github.com/verte-zerg/verbdrill/internal/generator"
	"github.com/verte-zerg/verbdrill/internal/logging"
	"github.com/verte-zerg/verbdrill/internal/model"
	"github.com/verte-zerg/verbdrill/internal/session"
	"github.com/verte-zerg/verbdrill/internal/store"
	"github.com/verte-zerg/verbdrill/internal/tui"
	"github.com/verte-zerg/verbdrill/internal/verbs"
)

const (
	defaultTense     = "all"
	defaultSubject   = "ich"
	defaultType      = "all"
	defaultCount     = 10
	defaultDirection = "mixed"
)

var (
	drillTense     string
	drillSubject   string
	drillType      string
	drillCount     int
	drillDirection string
	drillVerbs     string
	drillNoHistory bool

	logLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "verbdrill",
		Short:         "German verb conjugation drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDrillCmd(session.ModePractice),
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	addDrillFlags(rootCmd, true)

	memorizeCmd := &cobra.Command{
		Use:   "memorize",
		Short: "Review verb forms as flashcards",
		Args:  cobra.NoArgs,
		RunE:  runDrillCmd(session.ModeMemorize),
	}
	addDrillFlags(memorizeCmd, true)

	meaningsCmd := &cobra.Command{
		Use:   "meanings",
		Short: "Multiple-choice translation drill",
		Args:  cobra.NoArgs,
		RunE:  runDrillCmd(session.ModeMeanings),
	}
	addDrillFlags(meaningsCmd, false)
	meaningsCmd.Flags().StringVar(&drillDirection, "direction", defaultDirection, "de-en, en-de or mixed")

	rootCmd.AddCommand(memorizeCmd)
	rootCmd.AddCommand(meaningsCmd)
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newVerbsCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func addDrillFlags(cmd *cobra.Command, conjugation bool) {
	if conjugation {
		cmd.Flags().StringVar(&drillTense, "tense", defaultTense, "praesens, imperfekt, perfekt or all")
		cmd.Flags().StringVar(&drillSubject, "subject", defaultSubject, "ich, du, er/sie/es, wir, ihr or sie/Sie")
	}
	cmd.Flags().StringVar(&drillType, "type", defaultType, "all, irregular or regular")
	cmd.Flags().IntVar(&drillCount, "count", defaultCount, "verbs per drill (0 for the whole catalog)")
	cmd.Flags().StringVar(&drillVerbs, "verbs", "", "path to a JSON verb catalog")
	cmd.Flags().BoolVar(&drillNoHistory, "no-history", false, "do not record the drill")
}

func runDrillCmd(mode session.Mode) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyStringConfig(cmd, "tense", &drillTense, fileCfg.Drill.Tense)
		applyStringConfig(cmd, "subject", &drillSubject, fileCfg.Drill.Subject)
		applyStringConfig(cmd, "type", &drillType, fileCfg.Drill.Type)
		applyIntConfig(cmd, "count", &drillCount, fileCfg.Drill.Count)
		applyStringConfig(cmd, "direction", &drillDirection, fileCfg.Drill.Direction)
		applyStringConfig(cmd, "verbs", &drillVerbs, fileCfg.Drill.Verbs)
		applyNegatedBoolConfig(cmd, "no-history", &drillNoHistory, fileCfg.Drill.History)
		applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Log.Level)

		cfg := model.Config{
			Mode:        string(mode),
			Tense:       drillTense,
			Subject:     drillSubject,
			Direction:   drillDirection,
			VerbType:    drillType,
			Count:       drillCount,
			CatalogPath: drillVerbs,
			History:     !drillNoHistory,
		}
		opts, err := sessionOptions(cfg)
		if err != nil {
			return err
		}

		logger, closeLog, err := fileLogger(logLevel)
		if err != nil {
			return err
		}
		defer closeLog()

		catalog, err := loadCatalog(cfg.CatalogPath)
		if err != nil {
			return err
		}
		logger.Info("catalog loaded", "verbs", catalog.Len(), "path", cfg.CatalogPath)

		var history tui.History
		if cfg.History {
			st, err := store.Open(config.DefaultDBPath())
			if err != nil {
				logger.Warn("history disabled", "err", err)
			} else {
				defer func() {
					if cerr := st.Close(); cerr != nil {
						logErrf("failed to close db: %v\n", cerr)
					}
				}()
				history = st
			}
		}

		m, err := tui.NewModel(session.New(generator.New()), catalog, opts, history, logger)
		if err != nil {
			if errors.Is(err, session.ErrEmptyCatalog) {
				return fmt.Errorf("no verbs match filter --type=%s", cfg.VerbType)
			}
			return err
		}
		program := tea.NewProgram(m, tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run TUI: %w", err)
		}
		return nil
	}
}

func sessionOptions(cfg model.Config) (session.Options, error) {
	mode, err := session.ParseMode(cfg.Mode)
	if err != nil {
		return session.Options{}, err
	}
	opts := session.Options{Mode: mode, SampleSize: cfg.Count}
	if cfg.Count < 0 {
		return session.Options{}, fmt.Errorf("--count must be >= 0")
	}
	if opts.Type, err = verbs.ParseTypeFilter(cfg.VerbType); err != nil {
		return session.Options{}, err
	}
	if mode == session.ModeMeanings {
		opts.Direction, err = session.ParseDirection(cfg.Direction)
		return opts, err
	}
	if opts.Tense, err = verbs.ParseTense(cfg.Tense); err != nil {
		return session.Options{}, err
	}
	if opts.Subject, err = verbs.ParseSubject(cfg.Subject); err != nil {
		return session.Options{}, err
	}
	return opts, nil
}

// loadCatalog resolves the catalog from an explicit path, the user config
// directory, or the embedded dataset, in that order.
func loadCatalog(path string) (*verbs.Catalog, error) {
	if path == "" {
		if _, err := os.Stat(config.DefaultCatalogPath()); err == nil {
			path = config.DefaultCatalogPath()
		}
	}
	if path == "" {
		catalog, err := verbs.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		return catalog, nil
	}
	catalog, err := verbs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}

// fileLogger writes logs to the data directory so they do not draw over
// the TUI.
func fileLogger(level string) (*slog.Logger, func(), error) {
	lv, err := logging.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	path := config.DefaultLogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	closeFn := func() {
		if cerr := f.Close(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}
	return logging.New(f, lv), closeFn, nil
}

func stderrLogger(level string) (*slog.Logger, error) {
	lv, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(os.Stderr, lv), nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// applyNegatedBoolConfig maps a positive config switch onto a --no-x flag.
func applyNegatedBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = !*value
}

func writeLines(w io.Writer, lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
