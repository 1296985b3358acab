package model

import (
	"errors"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// IngredientInput is the user-editable part of an Ingredient.
type IngredientInput struct {
	Name  string  `validate:"required" label:"name"`
	Price float64 `validate:"finite,gt=0,lte=1e12" label:"price"`
	Unit  Unit    `validate:"unit" label:"unit"`
}

// RecipeInput is the user-editable part of a Recipe, including its full
// link set.
type RecipeInput struct {
	Name        string      `validate:"required" label:"name"`
	Description string      `label:"description"`
	Margin      float64     `validate:"finite,gte=0,lt=100" label:"margin"`
	Links       []LinkInput `validate:"dive" label:"links"`
}

// MaxAmount caps prices and quantities so costs stay finite. Keep the lte
// tags on IngredientInput.Price and LinkInput.Quantity in step with it.
const MaxAmount = 1e12

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if label := f.Tag.Get("label"); label != "" {
			return label
		}
		return strings.ToLower(f.Name)
	})
	mustRegister(v, "finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	mustRegister(v, "unit", func(fl validator.FieldLevel) bool {
		return ValidUnit(Unit(fl.Field().String()))
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// ValidateIngredient trims the name and checks every field.
// Errors are *ValidationError.
func ValidateIngredient(in IngredientInput) (IngredientInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return in, translate(err, 0)
	}
	return in, nil
}

// ValidateRecipe trims the name and checks every field and link.
// A bad margin yields *InvalidMarginError, anything else *ValidationError.
func ValidateRecipe(in RecipeInput) (RecipeInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validate.Struct(in); err != nil {
		return in, translate(err, in.Margin)
	}
	return in, nil
}

// ValidMargin reports whether m can be used as a divisor margin.
func ValidMargin(m float64) bool {
	return !math.IsNaN(m) && m >= 0 && m < 100
}

func translate(err error, margin float64) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	for _, fe := range fieldErrs {
		if fe.StructField() == "Margin" {
			return &InvalidMarginError{Margin: margin}
		}
	}

	fe := fieldErrs[0]
	return &ValidationError{Field: fieldPath(fe), Reason: reason(fe)}
}

// fieldPath drops the struct type prefix: "RecipeInput.links[0].quantity"
// becomes "links[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "finite":
		return "must be a finite number"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "unit":
		units := make([]string, len(Units))
		for i, u := range Units {
			units[i] = string(u)
		}
		return "must be one of " + strings.Join(units, ", ")
	default:
		return "is invalid (" + fe.Tag() + ")"
	}
}
