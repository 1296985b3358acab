package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/config"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

// IngredientValues backs the ingredient add/edit form. Numbers are kept as
// text so the form can show exactly what was typed.
type IngredientValues struct {
	Name  string
	Price string
	Unit  string
}

// NewIngredientValues prefills form values from ing. A zero ing gives an
// empty form defaulting to kilograms.
func NewIngredientValues(ing model.Ingredient) *IngredientValues {
	v := &IngredientValues{Name: ing.Name, Unit: string(ing.Unit)}
	if ing.UnitPrice > 0 {
		v.Price = strconv.FormatFloat(ing.UnitPrice, 'f', -1, 64)
	}
	if v.Unit == "" {
		v.Unit = string(model.UnitKilogram)
	}
	return v
}

// Parse converts the form values into store arguments.
func (v *IngredientValues) Parse() (name string, price float64, unit model.Unit, err error) {
	price, err = ParseAmount(v.Price)
	if err != nil {
		return "", 0, "", fmt.Errorf("price: %w", err)
	}
	return strings.TrimSpace(v.Name), price, model.Unit(v.Unit), nil
}

// IngredientForm builds the add/edit form for one ingredient.
func IngredientForm(title string, v *IngredientValues) *huh.Form {
	units := make([]huh.Option[string], len(model.Units))
	for i, u := range model.Units {
		units[i] = huh.NewOption(string(u), string(u))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),
			huh.NewInput().
				Title("Name").
				Value(&v.Name).
				Validate(requireText),
			huh.NewInput().
				Title("Unit price").
				Description(fmt.Sprintf("Price per unit, in %s", cli.Currency)).
				Placeholder("2.50").
				Value(&v.Price).
				Validate(validateAmount),
			huh.NewSelect[string]().
				Title("Unit").
				Options(units...).
				Value(&v.Unit),
		),
	).WithShowHelp(true)
}

// RecipeValues backs the two-step recipe form: first the recipe fields and
// the ingredient selection, then one quantity per selected ingredient.
type RecipeValues struct {
	Name        string
	Description string
	Margin      string
	Selected    []int64
	Quantities  map[int64]*string
}

// NewRecipeValues prefills form values from r. Repeated links to the same
// ingredient are merged; links to missing ingredients are dropped.
func NewRecipeValues(r model.Recipe, defaultMargin float64, ingredients []model.Ingredient) *RecipeValues {
	margin := r.Margin
	if r.ID == 0 {
		margin = defaultMargin
	}
	v := &RecipeValues{
		Name:        r.Name,
		Description: r.Description,
		Margin:      strconv.FormatFloat(margin, 'f', -1, 64),
		Quantities:  make(map[int64]*string),
	}

	known := make(map[int64]bool, len(ingredients))
	for _, ing := range ingredients {
		known[ing.ID] = true
	}
	totals := make(map[int64]float64)
	for _, l := range r.Links {
		if !known[l.IngredientID] {
			continue
		}
		if _, ok := totals[l.IngredientID]; !ok {
			v.Selected = append(v.Selected, l.IngredientID)
		}
		totals[l.IngredientID] += l.Quantity
	}
	for id, q := range totals {
		s := strconv.FormatFloat(q, 'f', -1, 64)
		v.Quantities[id] = &s
	}
	return v
}

// RecipeForm builds the first step of the recipe form.
func RecipeForm(title string, v *RecipeValues, ingredients []model.Ingredient) *huh.Form {
	options := make([]huh.Option[int64], len(ingredients))
	for i, ing := range ingredients {
		label := fmt.Sprintf("%s (%s)", ing.Name, cli.FormatUnitPrice(ing.UnitPrice, ing.Unit))
		options[i] = huh.NewOption(label, ing.ID)
	}

	fields := []huh.Field{
		huh.NewNote().Title(title),
		huh.NewInput().
			Title("Name").
			Value(&v.Name).
			Validate(requireText),
		huh.NewText().
			Title("Description").
			Lines(3).
			Value(&v.Description),
		huh.NewInput().
			Title("Margin %").
			Description("Profit margin, at least 0 and below 100").
			Value(&v.Margin).
			Validate(validateMargin),
	}
	if len(options) > 0 {
		fields = append(fields, huh.NewMultiSelect[int64]().
			Title("Ingredients").
			Options(options...).
			Filterable(true).
			Value(&v.Selected))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true)
}

// QuantityForm builds the second step: one quantity input per selected
// ingredient. It returns nil when nothing is selected.
func QuantityForm(v *RecipeValues, ingredients []model.Ingredient) *huh.Form {
	if len(v.Selected) == 0 {
		return nil
	}
	byID := make(map[int64]model.Ingredient, len(ingredients))
	for _, ing := range ingredients {
		byID[ing.ID] = ing
	}

	fields := []huh.Field{huh.NewNote().Title("Quantities")}
	for _, id := range v.Selected {
		q, ok := v.Quantities[id]
		if !ok {
			q = new(string)
			v.Quantities[id] = q
		}
		ing := byID[id]
		fields = append(fields, huh.NewInput().
			Title(fmt.Sprintf("%s (%s)", ing.Name, ing.Unit)).
			Placeholder("1").
			Value(q).
			Validate(validateAmount))
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(true)
}

// Parse converts the form values into store arguments. Links follow the
// selection order.
func (v *RecipeValues) Parse() (name, description string, margin float64, links []model.LinkInput, err error) {
	margin, err = strconv.ParseFloat(strings.TrimSpace(v.Margin), 64)
	if err != nil {
		return "", "", 0, nil, fmt.Errorf("margin: %q is not a number", v.Margin)
	}

	links = make([]model.LinkInput, 0, len(v.Selected))
	for _, id := range v.Selected {
		text := ""
		if q := v.Quantities[id]; q != nil {
			text = *q
		}
		qty, err := ParseAmount(text)
		if err != nil {
			return "", "", 0, nil, fmt.Errorf("quantity for ingredient %d: %w", id, err)
		}
		links = append(links, model.LinkInput{IngredientID: id, Quantity: qty})
	}
	return strings.TrimSpace(v.Name), strings.TrimSpace(v.Description), margin, links, nil
}

// SettingsValues backs the settings form.
type SettingsValues struct {
	DBPath        string
	DefaultMargin string
	Theme         string
	Currency      string
}

// NewSettingsValues prefills the settings form from cfg.
func NewSettingsValues(cfg config.Config) *SettingsValues {
	return &SettingsValues{
		DBPath:        cfg.General.DBPath,
		DefaultMargin: strconv.FormatFloat(cfg.General.DefaultMargin, 'f', -1, 64),
		Theme:         theme.ByName(cfg.Appearance.Theme).Name,
		Currency:      cfg.Appearance.Currency,
	}
}

// Apply returns a copy of cfg with the form values written over it.
func (v *SettingsValues) Apply(cfg config.Config) (config.Config, error) {
	margin, err := strconv.ParseFloat(strings.TrimSpace(v.DefaultMargin), 64)
	if err != nil {
		return cfg, fmt.Errorf("default margin: %q is not a number", v.DefaultMargin)
	}

	cfg.General.DBPath = strings.TrimSpace(v.DBPath)
	cfg.General.DefaultMargin = margin
	cfg.Appearance.Theme = v.Theme
	cfg.Appearance.Currency = strings.TrimSpace(v.Currency)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// SettingsForm builds the configuration form used by setup and the TUI.
func SettingsForm(v *SettingsValues) *huh.Form {
	themes := huh.NewOptions(theme.Names()...)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("bakecost settings").
				Description("Stored in the config file; BAKECOST_* variables still override."),
			huh.NewInput().
				Title("Database path").
				Description("Leave empty for the default location").
				Value(&v.DBPath),
			huh.NewInput().
				Title("Default margin %").
				Description("Prefilled when adding recipes").
				Value(&v.DefaultMargin).
				Validate(validateMargin),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themes...).
				Value(&v.Theme),
			huh.NewInput().
				Title("Currency symbol").
				Value(&v.Currency).
				Validate(requireText),
		),
	).WithShowHelp(true)
}

// ParseAmount parses a positive, finite number typed by the user.
func ParseAmount(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if !(f > 0) {
		return 0, errors.New("must be greater than 0")
	}
	if f > model.MaxAmount {
		return 0, errors.New("is too large")
	}
	return f, nil
}

func requireText(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func validateAmount(s string) error {
	_, err := ParseAmount(s)
	return err
}

func validateMargin(s string) error {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	if !model.ValidMargin(f) {
		return errors.New("must be at least 0 and below 100")
	}
	return nil
}
