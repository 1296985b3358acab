// Package costing prices recipes from their ingredient links and margin.
package costing

import (
	"context"
	"errors"
	"fmt"
	"math"

	applog "github.com/theirongolddev/bakecost/internal/log"
	"github.com/theirongolddev/bakecost/internal/model"
)

// Source is the storage the engine reads from. *store.Store satisfies it.
type Source interface {
	LoadCostInput(ctx context.Context, recipeID int64) (model.CostInput, bool, error)
	PurgeLinks(ctx context.Context, recipeID int64, linkIDs []int64) (int, error)
	ListRecipes(ctx context.Context) ([]model.Recipe, error)
}

// Engine computes recipe costs and removes links to deleted ingredients as
// it goes.
type Engine struct {
	src Source
}

// New returns an Engine reading from src.
func New(src Source) *Engine {
	return &Engine{src: src}
}

// ComputeCost prices one recipe. The bool is false when no recipe has that
// id. Links whose ingredient no longer exists are excluded from the totals,
// counted in InvalidLinks, and deleted. A stored margin outside [0, 100)
// yields *model.InvalidMarginError.
func (e *Engine) ComputeCost(ctx context.Context, recipeID int64) (model.CostResult, bool, error) {
	in, ok, err := e.src.LoadCostInput(ctx, recipeID)
	if err != nil {
		return model.CostResult{}, false, fmt.Errorf("loading recipe %d: %w", recipeID, err)
	}
	if !ok {
		return model.CostResult{}, false, nil
	}

	res, invalid := Tally(in)
	if len(invalid) > 0 {
		if _, err := e.src.PurgeLinks(ctx, recipeID, invalid); err != nil {
			return model.CostResult{}, true, fmt.Errorf("purging invalid links of recipe %d: %w", recipeID, err)
		}
	}

	if err := Price(&res); err != nil {
		return model.CostResult{}, true, err
	}
	return res, true, nil
}

// ComputeAll prices every recipe in list order. Recipes that cannot be priced,
// because of an unusable stored margin or a cost too large to represent, are
// left out and reported in the returned error, joined with errors.Join,
// alongside the results that could be computed. Storage errors abort
// immediately.
func (e *Engine) ComputeAll(ctx context.Context) ([]model.CostResult, error) {
	recipes, err := e.src.ListRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing recipes: %w", err)
	}

	results := make([]model.CostResult, 0, len(recipes))
	var skipped []error
	for _, r := range recipes {
		res, ok, err := e.ComputeCost(ctx, r.ID)
		if errors.Is(err, model.ErrValidation) {
			applog.Warn(ctx, "recipe skipped", "id", r.ID, "name", r.Name, "err", err)
			skipped = append(skipped, fmt.Errorf("recipe %d (%s): %w", r.ID, r.Name, err))
			continue
		}
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		results = append(results, res)
	}
	return results, errors.Join(skipped...)
}

// Tally sums the valid links of in and returns the ids of links whose
// ingredient is missing. Labor, total and final price are not set; see Price.
func Tally(in model.CostInput) (model.CostResult, []int64) {
	res := model.CostResult{
		RecipeID:   in.Recipe.ID,
		RecipeName: in.Recipe.Name,
		Margin:     in.Recipe.Margin,
	}

	var invalid []int64
	for _, line := range in.Lines {
		if line.Ingredient == nil {
			invalid = append(invalid, line.ID)
			continue
		}
		cost := line.Ingredient.UnitPrice * line.Quantity
		res.Items = append(res.Items, model.LineItem{
			IngredientID: line.Ingredient.ID,
			Name:         line.Ingredient.Name,
			Quantity:     line.Quantity,
			Unit:         line.Ingredient.Unit,
			UnitPrice:    line.Ingredient.UnitPrice,
			Cost:         cost,
		})
		res.IngredientCost += cost
	}
	res.InvalidLinks = len(invalid)
	return res, invalid
}

// Price fills labor cost, total cost and final price from the ingredient
// cost and margin already in res. res is left untouched on error; a final
// price that overflows float64 yields *model.ValidationError.
func Price(res *model.CostResult) error {
	if !model.ValidMargin(res.Margin) {
		return &model.InvalidMarginError{Margin: res.Margin}
	}
	// Labor is charged at the ingredient cost.
	labor := res.IngredientCost
	total := res.IngredientCost + labor
	final := total / (1 - res.Margin/100)
	if math.IsInf(final, 0) || math.IsNaN(final) {
		return &model.ValidationError{Field: "final price", Reason: "is too large to represent"}
	}
	res.LaborCost, res.TotalCost, res.FinalPrice = labor, total, final
	return nil
}
