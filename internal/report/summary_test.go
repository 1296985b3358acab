package report

import (
	"math"
	"testing"

	"github.com/theirongolddev/bakecost/internal/model"
)

func result(id int64, name string, ingredientCost, margin float64, items ...model.LineItem) model.CostResult {
	total := ingredientCost * 2
	return model.CostResult{
		RecipeID:       id,
		RecipeName:     name,
		Margin:         margin,
		Items:          items,
		IngredientCost: ingredientCost,
		LaborCost:      ingredientCost,
		TotalCost:      total,
		FinalPrice:     total / (1 - margin/100),
	}
}

func TestSummarizeEmpty(t *testing.T) {
	t.Parallel()

	s := Summarize(nil)
	if s.Recipes != 0 || s.AveragePrice != 0 {
		t.Fatalf("summary = %+v, want zero", s)
	}
	if s.Cheapest != nil || s.MostExpensive != nil {
		t.Fatalf("extremes set on empty summary: %+v", s)
	}
}

func TestSummarizeTotals(t *testing.T) {
	t.Parallel()

	flour := model.LineItem{IngredientID: 1, Name: "Flour", Quantity: 0.5, Unit: model.UnitKilogram, UnitPrice: 2, Cost: 1}
	results := []model.CostResult{
		result(1, "Bread", 1, 0, flour),
		result(2, "Cake", 3, 50, flour, flour),
		result(3, "Cookie", 0.5, 0),
	}
	results[2].InvalidLinks = 2

	s := Summarize(results)
	if s.Recipes != 3 || s.Items != 3 {
		t.Fatalf("counts = %d recipes %d items", s.Recipes, s.Items)
	}
	if s.IngredientCost != 4.5 || s.LaborCost != 4.5 || s.TotalCost != 9 {
		t.Fatalf("costs = %v/%v/%v", s.IngredientCost, s.LaborCost, s.TotalCost)
	}
	// 2 + 12 + 1
	if s.FinalPrice != 15 || s.AveragePrice != 5 {
		t.Fatalf("final = %v average = %v", s.FinalPrice, s.AveragePrice)
	}
	if s.Cheapest == nil || s.Cheapest.RecipeName != "Cookie" {
		t.Fatalf("cheapest = %+v", s.Cheapest)
	}
	if s.MostExpensive == nil || s.MostExpensive.RecipeName != "Cake" {
		t.Fatalf("most expensive = %+v", s.MostExpensive)
	}
	if s.InvalidLinks != 2 {
		t.Fatalf("invalid links = %d, want 2", s.InvalidLinks)
	}
}

func TestSummarizeTiesGoToFirst(t *testing.T) {
	t.Parallel()

	s := Summarize([]model.CostResult{result(1, "A", 1, 0), result(2, "B", 1, 0)})
	if s.Cheapest.RecipeName != "A" || s.MostExpensive.RecipeName != "A" {
		t.Fatalf("cheapest = %s, most expensive = %s", s.Cheapest.RecipeName, s.MostExpensive.RecipeName)
	}
}

func TestAggregateIngredients(t *testing.T) {
	t.Parallel()

	flour := model.LineItem{IngredientID: 1, Name: "Flour", Quantity: 0.5, Unit: model.UnitKilogram, UnitPrice: 2, Cost: 1}
	butter := model.LineItem{IngredientID: 2, Name: "Butter", Quantity: 100, Unit: model.UnitGram, UnitPrice: 0.03, Cost: 3}
	results := []model.CostResult{
		result(1, "Bread", 1, 0, flour),
		result(2, "Cake", 5, 0, flour, butter, flour),
	}

	got := AggregateIngredients(results)
	if len(got) != 2 {
		t.Fatalf("usage = %+v, want 2 entries", got)
	}
	if got[0].Name != "Butter" || got[1].Name != "Flour" {
		t.Fatalf("order = %s, %s", got[0].Name, got[1].Name)
	}
	f := got[1]
	if f.Recipes != 2 || f.Quantity != 1.5 || f.Cost != 3 {
		t.Fatalf("flour usage = %+v", f)
	}
	if math.Abs(f.SharePercent-50) > 1e-9 || math.Abs(got[0].SharePercent-50) > 1e-9 {
		t.Fatalf("shares = %v, %v", got[0].SharePercent, f.SharePercent)
	}
}

func TestFilterByName(t *testing.T) {
	t.Parallel()

	results := []model.CostResult{result(1, "Apple Pie", 1, 0), result(2, "Pecan PIE", 1, 0), result(3, "Bread", 1, 0)}

	if got := FilterByName(results, ""); len(got) != 3 {
		t.Fatalf("empty filter returned %d", len(got))
	}
	got := FilterByName(results, "pie")
	if len(got) != 2 || got[0].RecipeID != 1 || got[1].RecipeID != 2 {
		t.Fatalf("filtered = %+v", got)
	}
}
