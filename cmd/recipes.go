package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/store"
	"github.com/theirongolddev/bakecost/internal/tui"
)

var (
	flagRecName        string
	flagRecDescription string
	flagRecMargin      float64
	flagRecItems       []string
	flagRecClearItems  bool
)

var recipesCmd = &cobra.Command{
	Use:     "recipes",
	Aliases: []string{"recipe", "rec"},
	Short:   "List and manage recipes",
	Args:    cobra.NoArgs,
	RunE:    runRecipesList,
}

var recipesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recipes by name",
	Args:    cobra.NoArgs,
	RunE:    runRecipesList,
}

var recipesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a recipe (interactive form when no flags are given)",
	Example: `  bakecost recipes add --name "Sourdough" --margin 40 --item 1=0.5 --item 4=0.01
  bakecost recipes add`,
	Args: cobra.NoArgs,
	RunE: runRecipesAdd,
}

var recipesEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a recipe; --item replaces the whole ingredient list",
	Args:  cobra.ExactArgs(1),
	RunE:  runRecipesEdit,
}

var recipesDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a recipe and its ingredient links",
	Args:    cobra.ExactArgs(1),
	RunE:    runRecipesDelete,
}

func init() {
	for _, c := range []*cobra.Command{recipesAddCmd, recipesEditCmd} {
		c.Flags().StringVar(&flagRecName, "name", "", "Recipe name")
		c.Flags().StringVar(&flagRecDescription, "description", "", "Free-text description")
		c.Flags().Float64Var(&flagRecMargin, "margin", 0, "Profit margin percent, 0 <= m < 100 (default from config)")
		c.Flags().StringArrayVar(&flagRecItems, "item", nil, "Ingredient use as ID=QUANTITY (repeatable)")
	}
	recipesEditCmd.Flags().BoolVar(&flagRecClearItems, "clear-items", false, "Remove every ingredient from the recipe")
	recipesEditCmd.MarkFlagsMutuallyExclusive("item", "clear-items")

	recipesCmd.AddCommand(recipesListCmd, recipesAddCmd, recipesEditCmd, recipesDeleteCmd)
	rootCmd.AddCommand(recipesCmd)
}

func runRecipesList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withStore(ctx, func(s *store.Store) error {
		recipes, err := s.ListRecipes(ctx)
		if err != nil {
			return err
		}
		if len(recipes) == 0 {
			fmt.Println("\n  No recipes yet. Add one with `bakecost recipes add`.")
			return nil
		}

		rows := make([][]string, 0, len(recipes))
		for _, r := range recipes {
			rows = append(rows, []string{
				strconv.FormatInt(r.ID, 10),
				r.Name,
				cli.FormatPercent(r.Margin),
				strconv.Itoa(len(r.Links)),
				truncate(r.Description, 40),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Recipes (%d)", len(recipes)),
			Headers: []string{"ID", "Name", "Margin", "Items", "Description"},
			Rows:    rows,
		}))
		return nil
	})
}

func recipeFlagsChanged(cmd *cobra.Command) bool {
	f := cmd.Flags()
	for _, name := range []string{"name", "description", "margin", "item", "clear-items"} {
		if f.Lookup(name) != nil && f.Changed(name) {
			return true
		}
	}
	return false
}

func runRecipesAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withStore(ctx, func(s *store.Store) error {
		var (
			name, description = flagRecName, flagRecDescription
			margin            = cfg.General.DefaultMargin
			links             []model.LinkInput
			err               error
		)

		if recipeFlagsChanged(cmd) {
			if cmd.Flags().Changed("margin") {
				margin = flagRecMargin
			}
			if links, err = parseItems(flagRecItems); err != nil {
				return err
			}
		} else {
			ingredients, err := s.ListIngredients(ctx)
			if err != nil {
				return err
			}
			v := tui.NewRecipeValues(model.Recipe{}, cfg.General.DefaultMargin, ingredients)
			if err := runRecipeForm("New recipe", v, ingredients); err != nil {
				return err
			}
			if name, description, margin, links, err = v.Parse(); err != nil {
				return err
			}
		}

		r, err := s.AddRecipe(ctx, name, description, margin, links)
		if err != nil {
			return err
		}
		progress("Added recipe #%d %s with %d item(s)", r.ID, r.Name, len(r.Links))
		return nil
	})
}

func runRecipesEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withStore(ctx, func(s *store.Store) error {
		current, ok, err := s.GetRecipe(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			progress("No recipe #%d; nothing changed.", id)
			return nil
		}

		name, description, margin := current.Name, current.Description, current.Margin
		links := make([]model.LinkInput, 0, len(current.Links))
		for _, l := range current.Links {
			links = append(links, model.LinkInput{IngredientID: l.IngredientID, Quantity: l.Quantity})
		}

		f := cmd.Flags()
		if recipeFlagsChanged(cmd) {
			if f.Changed("name") {
				name = flagRecName
			}
			if f.Changed("description") {
				description = flagRecDescription
			}
			if f.Changed("margin") {
				margin = flagRecMargin
			}
			switch {
			case f.Changed("item"):
				if links, err = parseItems(flagRecItems); err != nil {
					return err
				}
			case flagRecClearItems:
				links = nil
			}
		} else {
			ingredients, err := s.ListIngredients(ctx)
			if err != nil {
				return err
			}
			v := tui.NewRecipeValues(current, cfg.General.DefaultMargin, ingredients)
			if err := runRecipeForm(fmt.Sprintf("Edit recipe #%d", id), v, ingredients); err != nil {
				return err
			}
			if name, description, margin, links, err = v.Parse(); err != nil {
				return err
			}
		}

		if err := s.EditRecipe(ctx, id, name, description, margin, links); err != nil {
			return err
		}
		progress("Updated recipe #%d (%d item(s))", id, len(links))
		return nil
	})
}

func runRecipesDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withStore(ctx, func(s *store.Store) error {
		_, ok, err := s.GetRecipe(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			progress("No recipe #%d; nothing changed.", id)
			return nil
		}
		if err := s.DeleteRecipe(ctx, id); err != nil {
			return err
		}
		progress("Deleted recipe #%d", id)
		return nil
	})
}

// runRecipeForm runs both recipe form steps in the terminal.
func runRecipeForm(title string, v *tui.RecipeValues, ingredients []model.Ingredient) error {
	if err := runForm(tui.RecipeForm(title, v, ingredients)); err != nil {
		return err
	}
	if q := tui.QuantityForm(v, ingredients); q != nil {
		return runForm(q)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
