package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/costing"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/store"
)

var costCmd = &cobra.Command{
	Use:   "cost ID",
	Short: "Cost breakdown and suggested price for a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runCost,
}

func init() {
	rootCmd.AddCommand(costCmd)
}

func runCost(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	return withStore(ctx, func(s *store.Store) error {
		res, ok, err := costing.New(s).ComputeCost(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no recipe with id %d", id)
		}

		fmt.Println()
		fmt.Println(cli.RenderTitle(fmt.Sprintf("%s  #%d", res.RecipeName, res.RecipeID)))
		fmt.Println()
		fmt.Print(cli.RenderTable(costTable(res)))

		if res.InvalidLinks > 0 {
			fmt.Println()
			fmt.Println("  " + cli.RenderWarning(fmt.Sprintf(
				"%d ingredient link(s) pointed at deleted ingredients and were removed.", res.InvalidLinks)))
		}
		return nil
	})
}

// costTable lays out one cost result: an item per row, then the totals.
func costTable(res model.CostResult) cli.Table {
	rows := make([][]string, 0, len(res.Items)+7)
	for _, item := range res.Items {
		rows = append(rows, []string{
			item.Name,
			cli.FormatQuantity(item.Quantity, item.Unit),
			cli.FormatUnitPrice(item.UnitPrice, item.Unit),
			cli.FormatMoney(item.Cost),
		})
	}
	if len(res.Items) == 0 {
		rows = append(rows, []string{"(no ingredients)", "", "", cli.FormatMoney(0)})
	}

	rows = append(rows,
		[]string{"---"},
		[]string{"Ingredient cost", "", "", cli.FormatMoney(res.IngredientCost)},
		[]string{"Labor", "", "", cli.FormatMoney(res.LaborCost)},
		[]string{"Total cost", "", "", cli.FormatMoney(res.TotalCost)},
		[]string{"Margin", "", "", cli.FormatPercent(res.Margin)},
		[]string{"---"},
		[]string{"Suggested price", "", "", cli.FormatMoney(res.FinalPrice)},
	)

	return cli.Table{
		Headers: []string{"Ingredient", "Quantity", "Unit price", "Cost"},
		Rows:    rows,
	}
}
