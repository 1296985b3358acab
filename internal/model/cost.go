package model

// LineItem is the cost of one valid link.
type LineItem struct {
	IngredientID int64
	Name         string
	Quantity     float64
	Unit         Unit
	UnitPrice    float64
	Cost         float64
}

// CostResult holds the full costing of a recipe.
type CostResult struct {
	RecipeID   int64
	RecipeName string
	Margin     float64

	// Items is ordered as the links were visited.
	Items []LineItem

	IngredientCost float64
	LaborCost      float64 // always equal to IngredientCost
	TotalCost      float64
	FinalPrice     float64

	// InvalidLinks counts links purged because their ingredient is gone.
	InvalidLinks int
}
