// Package report aggregates recipe cost results into catalog summaries.
package report

import (
	"sort"
	"strings"

	"github.com/theirongolddev/bakecost/internal/model"
)

// Summary is the catalog-wide view of a set of cost results.
type Summary struct {
	Recipes int
	Items   int

	IngredientCost float64
	LaborCost      float64
	TotalCost      float64
	FinalPrice     float64

	AveragePrice float64

	// Cheapest and MostExpensive are by final price; nil when there are no
	// results.
	Cheapest      *model.CostResult
	MostExpensive *model.CostResult

	InvalidLinks int
}

// IngredientUsage is one ingredient's footprint across all costed recipes.
type IngredientUsage struct {
	IngredientID int64
	Name         string
	Unit         model.Unit
	Recipes      int
	Quantity     float64
	Cost         float64
	SharePercent float64
}

// Summarize folds results into a Summary. Ties for cheapest and most
// expensive go to the earliest result.
func Summarize(results []model.CostResult) Summary {
	var s Summary
	for i := range results {
		r := &results[i]
		s.Recipes++
		s.Items += len(r.Items)
		s.IngredientCost += r.IngredientCost
		s.LaborCost += r.LaborCost
		s.TotalCost += r.TotalCost
		s.FinalPrice += r.FinalPrice
		s.InvalidLinks += r.InvalidLinks

		if s.Cheapest == nil || r.FinalPrice < s.Cheapest.FinalPrice {
			s.Cheapest = r
		}
		if s.MostExpensive == nil || r.FinalPrice > s.MostExpensive.FinalPrice {
			s.MostExpensive = r
		}
	}

	if s.Recipes > 0 {
		s.AveragePrice = s.FinalPrice / float64(s.Recipes)
	}
	return s
}

// AggregateIngredients totals each ingredient's quantity and cost across
// results, sorted by cost descending then name.
func AggregateIngredients(results []model.CostResult) []IngredientUsage {
	usage := make(map[int64]*IngredientUsage)
	var total float64

	for _, r := range results {
		seen := make(map[int64]bool)
		for _, item := range r.Items {
			u, ok := usage[item.IngredientID]
			if !ok {
				u = &IngredientUsage{IngredientID: item.IngredientID, Name: item.Name, Unit: item.Unit}
				usage[item.IngredientID] = u
			}
			if !seen[item.IngredientID] {
				u.Recipes++
				seen[item.IngredientID] = true
			}
			u.Quantity += item.Quantity
			u.Cost += item.Cost
			total += item.Cost
		}
	}

	out := make([]IngredientUsage, 0, len(usage))
	for _, u := range usage {
		if total > 0 {
			u.SharePercent = u.Cost / total * 100
		}
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Cost != out[j].Cost {
			return out[i].Cost > out[j].Cost
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// FilterByName returns results whose recipe name contains substr,
// ignoring case.
func FilterByName(results []model.CostResult, substr string) []model.CostResult {
	if substr == "" {
		return results
	}
	needle := strings.ToLower(substr)
	var out []model.CostResult
	for _, r := range results {
		if strings.Contains(strings.ToLower(r.RecipeName), needle) {
			out = append(out, r)
		}
	}
	return out
}
