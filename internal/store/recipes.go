package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	applog "github.com/theirongolddev/bakecost/internal/log"
	"github.com/theirongolddev/bakecost/internal/model"
)

// AddRecipe validates and inserts a recipe together with its links.
// Ingredient ids are not checked; links to missing ingredients are purged
// the next time the recipe is costed.
func (s *Store) AddRecipe(ctx context.Context, name, description string, margin float64, links []model.LinkInput) (model.Recipe, error) {
	in, err := model.ValidateRecipe(model.RecipeInput{
		Name:        name,
		Description: description,
		Margin:      margin,
		Links:       links,
	})
	if err != nil {
		return model.Recipe{}, err
	}

	var r model.Recipe
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO recipes (name, description, margin) VALUES (?, ?, ?)",
			in.Name, in.Description, in.Margin,
		)
		if err != nil {
			return fmt.Errorf("inserting recipe: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading recipe id: %w", err)
		}

		inserted, err := insertLinks(ctx, tx, id, in.Links)
		if err != nil {
			return err
		}
		r = model.Recipe{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Margin:      in.Margin,
			Links:       inserted,
		}
		return nil
	})
	if err != nil {
		return model.Recipe{}, err
	}

	applog.Debug(ctx, "recipe added", "id", r.ID, "name", r.Name, "links", len(r.Links))
	return r, nil
}

// ListRecipes returns every recipe ordered by name with its links attached.
func (s *Store) ListRecipes(ctx context.Context) ([]model.Recipe, error) {
	var recipes []model.Recipe
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx,
			"SELECT id, name, description, margin FROM recipes ORDER BY name, id")
		if err != nil {
			return fmt.Errorf("listing recipes: %w", err)
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			r, err := scanRecipe(rows)
			if err != nil {
				return err
			}
			recipes = append(recipes, r)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		linkRows, err := tx.QueryContext(ctx,
			"SELECT id, recipe_id, ingredient_id, quantity FROM recipe_ingredients ORDER BY id")
		if err != nil {
			return fmt.Errorf("listing links: %w", err)
		}
		defer func() { _ = linkRows.Close() }()

		recipeIdx := make(map[int64]int, len(recipes))
		for i, r := range recipes {
			recipeIdx[r.ID] = i
		}

		for linkRows.Next() {
			var l model.Link
			if err := linkRows.Scan(&l.ID, &l.RecipeID, &l.IngredientID, &l.Quantity); err != nil {
				return fmt.Errorf("scanning link: %w", err)
			}
			if idx, ok := recipeIdx[l.RecipeID]; ok {
				recipes[idx].Links = append(recipes[idx].Links, l)
			}
		}
		return linkRows.Err()
	})
	if err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe returns the recipe with id and its links, or false if there is none.
func (s *Store) GetRecipe(ctx context.Context, id int64) (model.Recipe, bool, error) {
	var (
		r     model.Recipe
		found bool
	)
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		row := tx.QueryRowContext(ctx,
			"SELECT id, name, description, margin FROM recipes WHERE id = ?", id)
		var err error
		r, err = scanRecipe(row)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return err
		}
		found = true

		r.Links, err = recipeLinks(ctx, tx, id)
		return err
	})
	if err != nil {
		return model.Recipe{}, false, err
	}
	return r, found, nil
}

// EditRecipe replaces name, description and margin, and swaps the whole
// link set for links. Links not present in links are gone afterwards.
// An unknown id is ignored.
func (s *Store) EditRecipe(ctx context.Context, id int64, name, description string, margin float64, links []model.LinkInput) error {
	in, err := model.ValidateRecipe(model.RecipeInput{
		Name:        name,
		Description: description,
		Margin:      margin,
		Links:       links,
	})
	if err != nil {
		return err
	}

	var edited bool
	err = s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			"UPDATE recipes SET name = ?, description = ?, margin = ? WHERE id = ?",
			in.Name, in.Description, in.Margin, id,
		)
		if err != nil {
			return fmt.Errorf("updating recipe %d: %w", id, err)
		}
		n, err := affected(res, fmt.Sprintf("updating recipe %d", id))
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		edited = true

		if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = ?", id); err != nil {
			return fmt.Errorf("clearing links of recipe %d: %w", id, err)
		}
		_, err = insertLinks(ctx, tx, id, in.Links)
		return err
	})
	if err != nil {
		return err
	}

	if edited {
		applog.Debug(ctx, "recipe edited", "id", id, "links", len(in.Links))
	} else {
		applog.Debug(ctx, "recipe edit ignored, no such id", "id", id)
	}
	return nil
}

// DeleteRecipe removes a recipe and all of its links. An unknown id is ignored.
func (s *Store) DeleteRecipe(ctx context.Context, id int64) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM recipe_ingredients WHERE recipe_id = ?", id); err != nil {
			return fmt.Errorf("deleting links of recipe %d: %w", id, err)
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM recipes WHERE id = ?", id)
		if err != nil {
			return fmt.Errorf("deleting recipe %d: %w", id, err)
		}
		n, err := affected(res, fmt.Sprintf("deleting recipe %d", id))
		if err != nil {
			return err
		}
		if n > 0 {
			applog.Debug(ctx, "recipe deleted", "id", id)
		}
		return nil
	})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (model.Recipe, error) {
	var r model.Recipe
	var description sql.NullString
	if err := row.Scan(&r.ID, &r.Name, &description, &r.Margin); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("scanning recipe: %w", err)
	}
	if description.Valid {
		r.Description = description.String
	}
	return r, nil
}

func recipeLinks(ctx context.Context, tx *sql.Tx, recipeID int64) ([]model.Link, error) {
	rows, err := tx.QueryContext(ctx,
		"SELECT id, recipe_id, ingredient_id, quantity FROM recipe_ingredients WHERE recipe_id = ? ORDER BY id",
		recipeID)
	if err != nil {
		return nil, fmt.Errorf("listing links of recipe %d: %w", recipeID, err)
	}
	defer func() { _ = rows.Close() }()

	var links []model.Link
	for rows.Next() {
		var l model.Link
		if err := rows.Scan(&l.ID, &l.RecipeID, &l.IngredientID, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scanning link: %w", err)
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

func insertLinks(ctx context.Context, tx *sql.Tx, recipeID int64, links []model.LinkInput) ([]model.Link, error) {
	inserted := make([]model.Link, 0, len(links))
	for _, in := range links {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity) VALUES (?, ?, ?)",
			recipeID, in.IngredientID, in.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("inserting link for recipe %d: %w", recipeID, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("reading link id: %w", err)
		}
		inserted = append(inserted, model.Link{
			ID:           id,
			RecipeID:     recipeID,
			IngredientID: in.IngredientID,
			Quantity:     in.Quantity,
		})
	}
	return inserted, nil
}
