package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"  Database", dbPath()},
		{"  Default margin", cli.FormatPercent(cfg.General.DefaultMargin)},
		{"  Log level", cfg.General.LogLevel},
	}))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Print(cli.RenderKeyValues([][2]string{
		{"  Theme", cfg.Appearance.Theme},
		{"  Currency", cfg.Appearance.Currency},
	}))
	fmt.Println()

	fmt.Println("  Environment overrides: BAKECOST_DB, BAKECOST_DEFAULT_MARGIN, BAKECOST_LOG_LEVEL,")
	fmt.Println("  BAKECOST_THEME, BAKECOST_CURRENCY.")
	fmt.Println("  Run `bakecost setup` to reconfigure.")
	return nil
}
