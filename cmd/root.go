// Package cmd implements the bakecost CLI commands.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/config"
	applog "github.com/theirongolddev/bakecost/internal/log"
	"github.com/theirongolddev/bakecost/internal/store"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

var (
	flagDB       string
	flagQuiet    bool
	flagLogLevel string
)

// cfg is loaded once per invocation before any command runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:               "bakecost",
	Short:             "Baking ingredient and recipe costing",
	Long:              "Track ingredient prices and recipes, and price what you bake: ingredient cost, labor, and a margin-adjusted sale price.",
	SilenceUsage:      true,
	PersistentPreRunE: loadRuntime,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "SQLite database path (default from config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// loadRuntime applies config, then flags, to logging and output settings.
func loadRuntime(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	cfg = loaded

	level := cfg.General.LogLevel
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	if err := applog.SetLevel(level); err != nil {
		return err
	}

	cli.Currency = cfg.Appearance.Currency
	if !theme.SetActive(cfg.Appearance.Theme) {
		applog.Warn(cmd.Context(), "unknown theme, using default", "theme", cfg.Appearance.Theme)
	}
	return nil
}

// dbPath resolves the database path: --db, then config and environment.
func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	return cfg.DBPath()
}

// withStore opens the store for the duration of fn.
func withStore(ctx context.Context, fn func(*store.Store) error) error {
	s, err := store.Open(dbPath())
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			applog.Warn(ctx, "closing store", "err", err)
		}
	}()
	return fn(s)
}

// progress prints a status line on stderr unless --quiet.
func progress(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}
