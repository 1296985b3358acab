package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bakecost/internal/config"
	"github.com/theirongolddev/bakecost/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive configuration wizard",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	v := tui.NewSettingsValues(cfg)
	if err := runForm(tui.SettingsForm(v)); err != nil {
		return err
	}

	updated, err := v.Apply(cfg)
	if err != nil {
		return err
	}
	if err := config.Save(updated); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	if p := strings.TrimSpace(updated.General.DBPath); p != "" {
		fmt.Printf("  Database: %s\n", p)
	}
	fmt.Printf("  Default margin: %s%%\n", strconv.FormatFloat(updated.General.DefaultMargin, 'f', -1, 64))
	fmt.Println("  Run `bakecost setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
