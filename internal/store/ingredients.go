package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	applog "github.com/theirongolddev/bakecost/internal/log"
	"github.com/theirongolddev/bakecost/internal/model"
)

// AddIngredient validates and inserts a new ingredient.
func (s *Store) AddIngredient(ctx context.Context, name string, price float64, unit model.Unit) (model.Ingredient, error) {
	in, err := model.ValidateIngredient(model.IngredientInput{Name: name, Price: price, Unit: unit})
	if err != nil {
		return model.Ingredient{}, err
	}
	if err := s.ready(ctx); err != nil {
		return model.Ingredient{}, err
	}

	res, err := s.db.ExecContext(ctx,
		"INSERT INTO ingredients (name, unit_price, unit) VALUES (?, ?, ?)",
		in.Name, in.Price, string(in.Unit),
	)
	if err != nil {
		return model.Ingredient{}, fmt.Errorf("inserting ingredient: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.Ingredient{}, fmt.Errorf("reading ingredient id: %w", err)
	}

	applog.Debug(ctx, "ingredient added", "id", id, "name", in.Name)
	return model.Ingredient{ID: id, Name: in.Name, UnitPrice: in.Price, Unit: in.Unit}, nil
}

// ListIngredients returns every ingredient ordered by name (byte order).
func (s *Store) ListIngredients(ctx context.Context) ([]model.Ingredient, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, unit_price, unit FROM ingredients ORDER BY name, id")
	if err != nil {
		return nil, fmt.Errorf("listing ingredients: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ingredients []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		var unit string
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.UnitPrice, &unit); err != nil {
			return nil, fmt.Errorf("scanning ingredient: %w", err)
		}
		ing.Unit = model.Unit(unit)
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

// GetIngredient returns the ingredient with id, or false if there is none.
func (s *Store) GetIngredient(ctx context.Context, id int64) (model.Ingredient, bool, error) {
	if err := s.ready(ctx); err != nil {
		return model.Ingredient{}, false, err
	}
	var ing model.Ingredient
	var unit string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, unit_price, unit FROM ingredients WHERE id = ?", id,
	).Scan(&ing.ID, &ing.Name, &ing.UnitPrice, &unit)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Ingredient{}, false, nil
	}
	if err != nil {
		return model.Ingredient{}, false, fmt.Errorf("getting ingredient %d: %w", id, err)
	}
	ing.Unit = model.Unit(unit)
	return ing, true, nil
}

// EditIngredient overwrites name, price and unit. An unknown id is ignored.
func (s *Store) EditIngredient(ctx context.Context, id int64, name string, price float64, unit model.Unit) error {
	in, err := model.ValidateIngredient(model.IngredientInput{Name: name, Price: price, Unit: unit})
	if err != nil {
		return err
	}
	if err := s.ready(ctx); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		"UPDATE ingredients SET name = ?, unit_price = ?, unit = ? WHERE id = ?",
		in.Name, in.Price, string(in.Unit), id,
	)
	if err != nil {
		return fmt.Errorf("updating ingredient %d: %w", id, err)
	}
	n, err := affected(res, fmt.Sprintf("updating ingredient %d", id))
	if err != nil {
		return err
	}
	if n == 0 {
		applog.Debug(ctx, "ingredient edit ignored, no such id", "id", id)
		return nil
	}
	applog.Debug(ctx, "ingredient edited", "id", id)
	return nil
}

// DeleteIngredient removes an ingredient. Links pointing at it are left in
// place and become invalid; costing purges them. An unknown id is ignored.
func (s *Store) DeleteIngredient(ctx context.Context, id int64) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM ingredients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting ingredient %d: %w", id, err)
	}
	n, err := affected(res, fmt.Sprintf("deleting ingredient %d", id))
	if err != nil {
		return err
	}
	if n > 0 {
		applog.Debug(ctx, "ingredient deleted", "id", id)
	}
	return nil
}
