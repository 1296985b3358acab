package model

import (
	"errors"
	"math"
	"testing"
)

func TestValidateIngredient(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		in        IngredientInput
		wantField string
	}{
		{"ok", IngredientInput{Name: "Flour", Price: 2, Unit: UnitKilogram}, ""},
		{"empty name", IngredientInput{Name: "", Price: 2, Unit: UnitKilogram}, "name"},
		{"blank name", IngredientInput{Name: "   ", Price: 2, Unit: UnitKilogram}, "name"},
		{"zero price", IngredientInput{Name: "Flour", Price: 0, Unit: UnitKilogram}, "price"},
		{"negative price", IngredientInput{Name: "Flour", Price: -1, Unit: UnitKilogram}, "price"},
		{"nan price", IngredientInput{Name: "Flour", Price: math.NaN(), Unit: UnitKilogram}, "price"},
		{"inf price", IngredientInput{Name: "Flour", Price: math.Inf(1), Unit: UnitKilogram}, "price"},
		{"max price", IngredientInput{Name: "Flour", Price: MaxAmount, Unit: UnitKilogram}, ""},
		{"huge price", IngredientInput{Name: "Flour", Price: 1e300, Unit: UnitKilogram}, "price"},
		{"unknown unit", IngredientInput{Name: "Flour", Price: 2, Unit: "lb"}, "unit"},
	}

	for _, tt := range cases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ValidateIngredient(tt.in)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateIngredient: unexpected error %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, want *ValidationError", err)
			}
			if verr.Field != tt.wantField {
				t.Fatalf("field = %q, want %q", verr.Field, tt.wantField)
			}
			if !errors.Is(err, ErrValidation) {
				t.Fatal("errors.Is(err, ErrValidation) = false")
			}
		})
	}
}

func TestValidateIngredientTrimsName(t *testing.T) {
	t.Parallel()

	out, err := ValidateIngredient(IngredientInput{Name: "  Sugar ", Price: 1.5, Unit: UnitGram})
	if err != nil {
		t.Fatalf("ValidateIngredient: %v", err)
	}
	if out.Name != "Sugar" {
		t.Fatalf("name = %q, want %q", out.Name, "Sugar")
	}
}

func TestValidateRecipeMargin(t *testing.T) {
	t.Parallel()

	for _, margin := range []float64{100, 100.5, -0.1, math.NaN()} {
		_, err := ValidateRecipe(RecipeInput{Name: "Cake", Margin: margin})
		var merr *InvalidMarginError
		if !errors.As(err, &merr) {
			t.Fatalf("margin %v: error = %v, want *InvalidMarginError", margin, err)
		}
		if !errors.Is(err, ErrInvalidMargin) || !errors.Is(err, ErrValidation) {
			t.Fatalf("margin %v: error does not match both sentinels", margin)
		}
	}

	for _, margin := range []float64{0, 50, 99.99} {
		if _, err := ValidateRecipe(RecipeInput{Name: "Cake", Margin: margin}); err != nil {
			t.Fatalf("margin %v: unexpected error %v", margin, err)
		}
	}
}

func TestValidateRecipeMarginWinsOverOtherErrors(t *testing.T) {
	t.Parallel()

	_, err := ValidateRecipe(RecipeInput{Name: "", Margin: 100})
	if !errors.Is(err, ErrInvalidMargin) {
		t.Fatalf("error = %v, want margin error", err)
	}
}

func TestValidateRecipeLinkQuantity(t *testing.T) {
	t.Parallel()

	_, err := ValidateRecipe(RecipeInput{
		Name: "Cake",
		Links: []LinkInput{
			{IngredientID: 1, Quantity: 0.5},
			{IngredientID: 2, Quantity: 0},
		},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Field != "links[1].quantity" {
		t.Fatalf("field = %q, want %q", verr.Field, "links[1].quantity")
	}
}

func TestValidateRecipeRejectsHugeQuantity(t *testing.T) {
	t.Parallel()

	_, err := ValidateRecipe(RecipeInput{
		Name:  "Cake",
		Links: []LinkInput{{IngredientID: 1, Quantity: 1e300}},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *ValidationError", err)
	}
	if verr.Field != "links[0].quantity" || verr.Reason != "must be at most 1e12" {
		t.Fatalf("error = %q", verr.Error())
	}
}

func TestValidateRecipeAllowsUnknownIngredientIDs(t *testing.T) {
	t.Parallel()

	_, err := ValidateRecipe(RecipeInput{
		Name:  "Cake",
		Links: []LinkInput{{IngredientID: 9999, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidMargin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		margin float64
		want   bool
	}{
		{0, true},
		{50, true},
		{99.999, true},
		{100, false},
		{-1, false},
		{math.NaN(), false},
	}
	for _, tt := range cases {
		if got := ValidMargin(tt.margin); got != tt.want {
			t.Errorf("ValidMargin(%v) = %t, want %t", tt.margin, got, tt.want)
		}
	}
}
