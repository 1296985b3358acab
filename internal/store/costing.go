package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	applog "github.com/theirongolddev/bakecost/internal/log"
	"github.com/theirongolddev/bakecost/internal/model"
)

// LoadCostInput loads a recipe and its links, each resolved to its
// ingredient. Links whose ingredient is gone carry a nil Ingredient.
// The bool is false when the recipe does not exist.
func (s *Store) LoadCostInput(ctx context.Context, recipeID int64) (model.CostInput, bool, error) {
	var (
		in    model.CostInput
		found bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			"SELECT id, name, description, margin FROM recipes WHERE id = ?", recipeID)
		r, err := scanRecipe(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		in.Recipe = r

		rows, err := tx.QueryContext(ctx, `SELECT
			l.id, l.recipe_id, l.ingredient_id, l.quantity,
			i.id, i.name, i.unit_price, i.unit
			FROM recipe_ingredients l
			LEFT JOIN ingredients i ON i.id = l.ingredient_id
			WHERE l.recipe_id = ?
			ORDER BY l.id`, recipeID)
		if err != nil {
			return fmt.Errorf("loading links of recipe %d: %w", recipeID, err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			var (
				line     model.ResolvedLink
				ingID    sql.NullInt64
				ingName  sql.NullString
				ingPrice sql.NullFloat64
				ingUnit  sql.NullString
			)
			err := rows.Scan(
				&line.ID, &line.RecipeID, &line.IngredientID, &line.Quantity,
				&ingID, &ingName, &ingPrice, &ingUnit,
			)
			if err != nil {
				return fmt.Errorf("scanning link: %w", err)
			}
			if ingID.Valid {
				line.Ingredient = &model.Ingredient{
					ID:        ingID.Int64,
					Name:      ingName.String,
					UnitPrice: ingPrice.Float64,
					Unit:      model.Unit(ingUnit.String),
				}
			}
			in.Recipe.Links = append(in.Recipe.Links, line.Link)
			in.Lines = append(in.Lines, line)
		}
		return rows.Err()
	})
	if err != nil {
		return model.CostInput{}, false, err
	}
	return in, found, nil
}

// PurgeLinks deletes the given links of a recipe, but only those whose
// ingredient is still missing. It returns how many rows were removed.
func (s *Store) PurgeLinks(ctx context.Context, recipeID int64, linkIDs []int64) (int, error) {
	if len(linkIDs) == 0 {
		return 0, nil
	}
	var purged int
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		for _, id := range linkIDs {
			res, err := tx.ExecContext(ctx, `DELETE FROM recipe_ingredients
				WHERE id = ? AND recipe_id = ?
				AND NOT EXISTS (SELECT 1 FROM ingredients WHERE ingredients.id = recipe_ingredients.ingredient_id)`,
				id, recipeID)
			if err != nil {
				return fmt.Errorf("purging link %d: %w", id, err)
			}
			n, err := affected(res, fmt.Sprintf("purging link %d", id))
			if err != nil {
				return err
			}
			purged += int(n)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		applog.Info(ctx, "purged invalid links", "recipe_id", recipeID, "count", purged)
	}
	return purged, nil
}
