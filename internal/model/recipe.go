package model

// Recipe is a named composition of ingredient quantities plus a profit margin.
type Recipe struct {
	ID          int64
	Name        string
	Description string
	Margin      float64 // percent, [0, 100)
	Links       []Link
}

// Link is the quantity of one ingredient used in one recipe.
// IngredientID may point at an ingredient that no longer exists.
type Link struct {
	ID           int64
	RecipeID     int64
	IngredientID int64
	Quantity     float64
}

// LinkInput is one (ingredient, quantity) pair supplied on recipe add/edit.
type LinkInput struct {
	IngredientID int64
	Quantity     float64 `validate:"finite,gt=0,lte=1e12" label:"quantity"`
}

// ResolvedLink pairs a link with its ingredient. Ingredient is nil when the
// referenced ingredient has been deleted.
type ResolvedLink struct {
	Link
	Ingredient *Ingredient
}

// CostInput is everything the costing engine needs for one recipe.
type CostInput struct {
	Recipe Recipe
	Lines  []ResolvedLink
}
