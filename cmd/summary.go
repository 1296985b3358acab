package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/costing"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/report"
	"github.com/theirongolddev/bakecost/internal/store"
)

var flagFilter string

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Price every recipe and summarize the catalog",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&flagFilter, "filter", "f", "", "Only recipes whose name contains this text")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	return withStore(ctx, func(s *store.Store) error {
		ingredients, recipes, err := s.Counts(ctx)
		if err != nil {
			return err
		}
		if recipes == 0 {
			fmt.Printf("\n  %d ingredient(s), no recipes yet.\n", ingredients)
			fmt.Println("  Add ingredients with `bakecost ingredients add`, then `bakecost recipes add`.")
			return nil
		}

		progress("Pricing %d recipe(s)...", recipes)
		results, err := costing.New(s).ComputeAll(ctx)
		var skipped error
		if errors.Is(err, model.ErrValidation) {
			skipped, err = err, nil
		}
		if err != nil {
			return err
		}

		results = report.FilterByName(results, flagFilter)
		if len(results) == 0 {
			if skipped != nil {
				return skipped
			}
			fmt.Println("\n  No recipes match the filter.")
			return nil
		}
		sum := report.Summarize(results)

		fmt.Println()
		fmt.Println(cli.RenderTitle("BAKECOST  Catalog summary"))
		fmt.Println()

		pairs := [][2]string{
			{"Ingredients", cli.FormatNumber(int64(ingredients))},
			{"Recipes", cli.FormatNumber(int64(sum.Recipes))},
			{"Ingredient uses", cli.FormatNumber(int64(sum.Items))},
			{"Average price", cli.FormatMoney(sum.AveragePrice)},
			{"Cheapest", fmt.Sprintf("%s (%s)", sum.Cheapest.RecipeName, cli.FormatMoney(sum.Cheapest.FinalPrice))},
			{"Most expensive", fmt.Sprintf("%s (%s)", sum.MostExpensive.RecipeName, cli.FormatMoney(sum.MostExpensive.FinalPrice))},
		}
		fmt.Print(cli.RenderKeyValues(pairs))
		fmt.Println()

		rows := make([][]string, 0, len(results)+2)
		for _, r := range results {
			rows = append(rows, []string{
				r.RecipeName,
				strconv.Itoa(len(r.Items)),
				cli.FormatMoney(r.IngredientCost),
				cli.FormatMoney(r.TotalCost),
				cli.FormatPercent(r.Margin),
				cli.FormatMoney(r.FinalPrice),
			})
		}
		rows = append(rows,
			[]string{"---"},
			[]string{"Total", strconv.Itoa(sum.Items), cli.FormatMoney(sum.IngredientCost), cli.FormatMoney(sum.TotalCost), "", cli.FormatMoney(sum.FinalPrice)},
		)
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Recipes",
			Headers: []string{"Recipe", "Items", "Ingredients", "Total cost", "Margin", "Price"},
			Rows:    rows,
		}))

		if usage := report.AggregateIngredients(results); len(usage) > 0 {
			fmt.Println()
			fmt.Println("  Ingredient spend")
			top := usage
			if len(top) > 5 {
				top = top[:5]
			}
			width := 0
			for _, u := range top {
				if n := len([]rune(u.Name)); n > width {
					width = n
				}
			}
			for _, u := range top {
				label := fmt.Sprintf("%-*s", width, u.Name)
				fmt.Println(cli.RenderHorizontalBar(label, u.Cost, top[0].Cost, 24,
					fmt.Sprintf("%s  %s", cli.FormatMoney(u.Cost), cli.FormatPercent(u.SharePercent))))
			}
		}

		if sum.InvalidLinks > 0 {
			fmt.Println()
			fmt.Println("  " + cli.RenderWarning(fmt.Sprintf(
				"Removed %d link(s) to deleted ingredients.", sum.InvalidLinks)))
		}
		if skipped != nil {
			fmt.Println()
			fmt.Println("  " + cli.RenderWarning("Skipped recipes that could not be priced:"))
			fmt.Printf("    %v\n", skipped)
		}
		return nil
	})
}
