package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/bakecost/internal/store"
)

var flagResetYes bool

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Database maintenance",
}

var dbPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the database path in use",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(dbPath())
	},
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Add the recipe margin column to databases that predate it",
	Args:  cobra.NoArgs,
	RunE:  runDBUpgrade,
}

var dbResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Drop all data and recreate an empty database",
	Args:  cobra.NoArgs,
	RunE:  runDBReset,
}

func init() {
	dbResetCmd.Flags().BoolVar(&flagResetYes, "yes", false, "Skip the confirmation prompt")
	dbCmd.AddCommand(dbPathCmd, dbUpgradeCmd, dbResetCmd)
	rootCmd.AddCommand(dbCmd)
}

func runDBUpgrade(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withStore(ctx, func(s *store.Store) error {
		// Open already runs the hook; running it again reports the state.
		added, err := s.AddMarginColumn(ctx)
		if err != nil {
			return err
		}
		if added {
			fmt.Println("  Added margin column to recipes.")
		} else {
			fmt.Println("  Schema is up to date.")
		}
		return nil
	})
}

func runDBReset(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	path := dbPath()

	if !flagResetYes {
		confirmed := false
		err := runForm(huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Erase every ingredient and recipe?").
				Description(path).
				Affirmative("Erase").
				Negative("Keep").
				Value(&confirmed),
		)))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("  Nothing changed.")
			return nil
		}
	}

	return withStore(ctx, func(s *store.Store) error {
		if err := s.Reset(ctx); err != nil {
			return err
		}
		fmt.Printf("  Reset %s\n", s.Path())
		return nil
	})
}
