// Package model defines the domain types for ingredients, recipes and costing.
package model

// Unit is the unit of measure an ingredient is priced and used in.
type Unit string

// Supported units.
const (
	UnitKilogram   Unit = "kg"
	UnitGram       Unit = "g"
	UnitLiter      Unit = "L"
	UnitMilliliter Unit = "ml"
	UnitCount      Unit = "unit"
)

// Units lists every supported unit in display order.
var Units = []Unit{UnitKilogram, UnitGram, UnitLiter, UnitMilliliter, UnitCount}

// ValidUnit reports whether u is one of Units.
func ValidUnit(u Unit) bool {
	for _, known := range Units {
		if u == known {
			return true
		}
	}
	return false
}

// Ingredient is a purchasable item priced per unit.
type Ingredient struct {
	ID        int64
	Name      string
	UnitPrice float64
	Unit      Unit
}
