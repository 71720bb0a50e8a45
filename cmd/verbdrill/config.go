package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/verbdrill/internal/config"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# verbdrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[drill]
# tense = %q          # praesens, imperfekt, perfekt or all
# subject = %q        # ich, du, er/sie/es, wir, ihr or sie/Sie
# type = %q           # all, irregular or regular
# count = %d            # Verbs per drill (0 for the whole catalog)
# direction = %q    # Meanings direction: de-en, en-de or mixed
# verbs = ""            # Path to a JSON verb catalog
# history = true        # Record finished drills for "verbdrill stats"

[log]
# level = "warn"        # debug, info, warn or error
`,
		defaultTense,
		defaultSubject,
		defaultType,
		defaultCount,
		defaultDirection,
	)
}
