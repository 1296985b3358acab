package tui

import (
	"errors"
	"testing"

	"github.com/theirongolddev/bakecost/internal/config"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"2.5", 2.5, false},
		{"  0.125 ", 0.125, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"1e13", 0, true},
		{"1e12", model.MaxAmount, false},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidateMargin(t *testing.T) {
	for in, ok := range map[string]bool{"0": true, "30": true, "99.9": true, "100": false, "-1": false, "x": false} {
		if err := validateMargin(in); (err == nil) != ok {
			t.Errorf("validateMargin(%q) = %v", in, err)
		}
	}
}

func TestIngredientValuesRoundTrip(t *testing.T) {
	v := NewIngredientValues(model.Ingredient{Name: "Flour", UnitPrice: 1.2, Unit: model.UnitKilogram})
	if v.Price != "1.2" || v.Unit != "kg" {
		t.Fatalf("prefill = %+v", v)
	}
	v.Name = "  Rye flour "
	name, price, unit, err := v.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if name != "Rye flour" || price != 1.2 || unit != model.UnitKilogram {
		t.Fatalf("Parse = %q %v %q", name, price, unit)
	}

	empty := NewIngredientValues(model.Ingredient{})
	if empty.Unit != "kg" || empty.Price != "" {
		t.Fatalf("empty prefill = %+v", empty)
	}
	if _, _, _, err := empty.Parse(); err == nil {
		t.Fatal("expected price error for empty form")
	}
}

func TestNewRecipeValuesMergesLinks(t *testing.T) {
	ingredients := []model.Ingredient{
		{ID: 1, Name: "Flour", UnitPrice: 1, Unit: model.UnitKilogram},
		{ID: 2, Name: "Eggs", UnitPrice: 0.3, Unit: model.UnitCount},
	}
	r := model.Recipe{
		ID:     7,
		Name:   "Bread",
		Margin: 25,
		Links: []model.Link{
			{IngredientID: 2, Quantity: 2},
			{IngredientID: 1, Quantity: 0.5},
			{IngredientID: 2, Quantity: 1},
			{IngredientID: 99, Quantity: 4},
		},
	}

	v := NewRecipeValues(r, 30, ingredients)
	if v.Margin != "25" {
		t.Fatalf("margin = %q, want 25", v.Margin)
	}
	if len(v.Selected) != 2 || v.Selected[0] != 2 || v.Selected[1] != 1 {
		t.Fatalf("selected = %v, want [2 1]", v.Selected)
	}
	if *v.Quantities[2] != "3" || *v.Quantities[1] != "0.5" {
		t.Fatalf("quantities = %s, %s", *v.Quantities[2], *v.Quantities[1])
	}

	name, _, margin, links, err := v.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if name != "Bread" || margin != 25 || len(links) != 2 {
		t.Fatalf("Parse = %q %v %v", name, margin, links)
	}
	if links[0] != (model.LinkInput{IngredientID: 2, Quantity: 3}) {
		t.Fatalf("links[0] = %+v", links[0])
	}
}

func TestNewRecipeValuesUsesDefaultMargin(t *testing.T) {
	v := NewRecipeValues(model.Recipe{}, 30, nil)
	if v.Margin != "30" {
		t.Fatalf("margin = %q, want 30", v.Margin)
	}
	if QuantityForm(v, nil) != nil {
		t.Fatal("QuantityForm should be nil with nothing selected")
	}
}

func TestRecipeValuesParseRejectsMissingQuantity(t *testing.T) {
	v := NewRecipeValues(model.Recipe{}, 30, nil)
	v.Name = "Scones"
	v.Selected = []int64{3}
	if _, _, _, _, err := v.Parse(); err == nil {
		t.Fatal("expected error for missing quantity")
	}
}

func TestSettingsKeepsEveryListedTheme(t *testing.T) {
	for _, name := range theme.Names() {
		cfg := config.DefaultConfig()
		cfg.Appearance.Theme = name
		v := NewSettingsValues(cfg)
		if v.Theme != name {
			t.Fatalf("prefill theme = %q, want %q", v.Theme, name)
		}
		got, err := v.Apply(config.DefaultConfig())
		if err != nil {
			t.Fatalf("Apply(%s): %v", name, err)
		}
		if got.Appearance.Theme != name {
			t.Fatalf("applied theme = %q, want %q", got.Appearance.Theme, name)
		}
	}
}

func TestSettingsApply(t *testing.T) {
	cfg := config.DefaultConfig()
	v := NewSettingsValues(cfg)
	if v.DefaultMargin != "30" || v.Theme != "flexoki-dark" {
		t.Fatalf("prefill = %+v", v)
	}

	v.DefaultMargin = "45"
	v.Currency = " € "
	v.DBPath = " /tmp/bake.db "
	got, err := v.Apply(cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.General.DefaultMargin != 45 || got.Appearance.Currency != "€" || got.General.DBPath != "/tmp/bake.db" {
		t.Fatalf("Apply = %+v", got)
	}
	if cfg.General.DefaultMargin != 30 {
		t.Fatal("Apply modified its input")
	}

	v.DefaultMargin = "100"
	if _, err := v.Apply(cfg); !errors.Is(err, model.ErrInvalidMargin) {
		t.Fatalf("Apply with margin 100: err = %v, want ErrInvalidMargin", err)
	}
}
