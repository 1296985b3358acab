package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/store"
	"github.com/theirongolddev/bakecost/internal/tui"
)

var (
	flagIngName  string
	flagIngPrice float64
	flagIngUnit  string
)

var ingredientsCmd = &cobra.Command{
	Use:     "ingredients",
	Aliases: []string{"ingredient", "ing"},
	Short:   "List and manage ingredients",
	Args:    cobra.NoArgs,
	RunE:    runIngredientsList,
}

var ingredientsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List ingredients by name",
	Args:    cobra.NoArgs,
	RunE:    runIngredientsList,
}

var ingredientsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an ingredient (interactive form when no flags are given)",
	Args:  cobra.NoArgs,
	RunE:  runIngredientsAdd,
}

var ingredientsEditCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit an ingredient (interactive form when no flags are given)",
	Args:  cobra.ExactArgs(1),
	RunE:  runIngredientsEdit,
}

var ingredientsDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an ingredient; recipe links to it are purged on next costing",
	Args:    cobra.ExactArgs(1),
	RunE:    runIngredientsDelete,
}

func init() {
	for _, c := range []*cobra.Command{ingredientsAddCmd, ingredientsEditCmd} {
		c.Flags().StringVar(&flagIngName, "name", "", "Ingredient name")
		c.Flags().Float64Var(&flagIngPrice, "price", 0, "Price per unit")
		c.Flags().StringVar(&flagIngUnit, "unit", "", "Unit: kg, g, L, ml, unit")
	}
	ingredientsCmd.AddCommand(ingredientsListCmd, ingredientsAddCmd, ingredientsEditCmd, ingredientsDeleteCmd)
	rootCmd.AddCommand(ingredientsCmd)
}

func runIngredientsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withStore(ctx, func(s *store.Store) error {
		ingredients, err := s.ListIngredients(ctx)
		if err != nil {
			return err
		}
		if len(ingredients) == 0 {
			fmt.Println("\n  No ingredients yet. Add one with `bakecost ingredients add`.")
			return nil
		}

		rows := make([][]string, 0, len(ingredients))
		for _, ing := range ingredients {
			rows = append(rows, []string{
				strconv.FormatInt(ing.ID, 10),
				ing.Name,
				cli.FormatUnitPrice(ing.UnitPrice, ing.Unit),
			})
		}

		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   fmt.Sprintf("Ingredients (%d)", len(ingredients)),
			Headers: []string{"ID", "Name", "Price"},
			Rows:    rows,
		}))
		return nil
	})
}

func ingredientFlagsChanged(cmd *cobra.Command) bool {
	f := cmd.Flags()
	return f.Changed("name") || f.Changed("price") || f.Changed("unit")
}

func runIngredientsAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	name, price, unit := flagIngName, flagIngPrice, model.Unit(flagIngUnit)
	if !ingredientFlagsChanged(cmd) {
		v := tui.NewIngredientValues(model.Ingredient{})
		if err := runForm(tui.IngredientForm("New ingredient", v)); err != nil {
			return err
		}
		var err error
		if name, price, unit, err = v.Parse(); err != nil {
			return err
		}
	}

	return withStore(ctx, func(s *store.Store) error {
		ing, err := s.AddIngredient(ctx, name, price, unit)
		if err != nil {
			return err
		}
		progress("Added ingredient #%d %s at %s", ing.ID, ing.Name, cli.FormatUnitPrice(ing.UnitPrice, ing.Unit))
		return nil
	})
}

func runIngredientsEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withStore(ctx, func(s *store.Store) error {
		current, ok, err := s.GetIngredient(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			progress("No ingredient #%d; nothing changed.", id)
			return nil
		}

		name, price, unit := current.Name, current.UnitPrice, current.Unit
		f := cmd.Flags()
		if ingredientFlagsChanged(cmd) {
			if f.Changed("name") {
				name = flagIngName
			}
			if f.Changed("price") {
				price = flagIngPrice
			}
			if f.Changed("unit") {
				unit = model.Unit(flagIngUnit)
			}
		} else {
			v := tui.NewIngredientValues(current)
			if err := runForm(tui.IngredientForm(fmt.Sprintf("Edit ingredient #%d", id), v)); err != nil {
				return err
			}
			if name, price, unit, err = v.Parse(); err != nil {
				return err
			}
		}

		if err := s.EditIngredient(ctx, id, name, price, unit); err != nil {
			return err
		}
		progress("Updated ingredient #%d", id)
		return nil
	})
}

func runIngredientsDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withStore(ctx, func(s *store.Store) error {
		_, ok, err := s.GetIngredient(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			progress("No ingredient #%d; nothing changed.", id)
			return nil
		}

		used, err := recipesUsing(cmd, s, id)
		if err != nil {
			return err
		}
		if err := s.DeleteIngredient(ctx, id); err != nil {
			return err
		}
		progress("Deleted ingredient #%d", id)
		if used > 0 {
			progress("%d recipe(s) referenced it; those links are dropped on next costing.", used)
		}
		return nil
	})
}

// recipesUsing counts recipes with at least one link to ingredient id.
func recipesUsing(cmd *cobra.Command, s *store.Store, id int64) (int, error) {
	recipes, err := s.ListRecipes(cmd.Context())
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range recipes {
		for _, l := range r.Links {
			if l.IngredientID == id {
				n++
				break
			}
		}
	}
	return n, nil
}

// runForm runs a huh form in the terminal. Aborting it yields a short
// "cancelled" error.
func runForm(f *huh.Form) error {
	if err := f.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errors.New("cancelled")
		}
		return err
	}
	return nil
}
