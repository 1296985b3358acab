package tui

import (
	"context"
	"math"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/config"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/store"
	"github.com/theirongolddev/bakecost/internal/tui/components"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

// newTestApp opens a temp store holding two recipes and returns a loaded
// dashboard over it:
//
//	Cake:       0.5 kg Flour + 0.25 kg Sugar, margin 50 -> 5.00
//	Shortbread: 0.2 kg Butter + 0.3 kg Flour, margin 0  -> 4.40
func newTestApp(t *testing.T) (App, *store.Store) {
	t.Helper()
	ctx := context.Background()

	s, err := store.Open(filepath.Join(t.TempDir(), "bakecost.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	add := func(name string, price float64) model.Ingredient {
		ing, err := s.AddIngredient(ctx, name, price, model.UnitKilogram)
		if err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
		return ing
	}
	butter := add("Butter", 8)
	flour := add("Flour", 2)
	sugar := add("Sugar", 1)

	if _, err := s.AddRecipe(ctx, "Cake", "Sponge", 50, []model.LinkInput{
		{IngredientID: flour.ID, Quantity: 0.5},
		{IngredientID: sugar.ID, Quantity: 0.25},
	}); err != nil {
		t.Fatalf("add Cake: %v", err)
	}
	if _, err := s.AddRecipe(ctx, "Shortbread", "", 0, []model.LinkInput{
		{IngredientID: butter.ID, Quantity: 0.2},
		{IngredientID: flour.ID, Quantity: 0.3},
	}); err != nil {
		t.Fatalf("add Shortbread: %v", err)
	}

	a := NewApp(ctx, s, config.DefaultConfig())
	a.saveConfig = func(config.Config) error { return nil }
	a = reload(t, a)
	a.width, a.height = 120, 40
	return a, s
}

// reload runs the load command synchronously and applies its result.
func reload(t *testing.T, a App) App {
	t.Helper()
	msg := a.loadCmd()()
	if dl, ok := msg.(dataLoadedMsg); !ok {
		t.Fatalf("load returned %T", msg)
	} else if dl.err != nil {
		t.Fatalf("load: %v", dl.err)
	}
	m, _ := a.Update(msg)
	return m.(App)
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

// press sends each key in turn and returns the last command.
func press(a App, keys ...string) (App, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var m tea.Model
		m, cmd = a.Update(keyMsg(k))
		a = m.(App)
	}
	return a, cmd
}

// settle runs a mutation command and the reload it triggers.
func settle(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	mm, ok := msg.(mutationMsg)
	if !ok {
		t.Fatalf("command returned %T, want mutationMsg", msg)
	}
	m, next := a.Update(mm)
	a = m.(App)
	if mm.err != nil {
		return a
	}
	m, _ = a.Update(next())
	return m.(App)
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	for active := range components.Tabs {
		a := App{activeTab: active}
		pos := 0

		for i, tab := range components.Tabs {
			w := len(tab.Name) + 2 // horizontal padding in tab renderer
			if i != active && tab.KeyPos < 0 {
				w += 3 // inactive Settings adds "[x]"
			}
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < len(components.Tabs)-1 {
				pos++ // separator
			}
		}
		if got := a.tabAtX(pos + 5); got != -1 {
			t.Fatalf("active=%d: x past last tab -> %d, want -1", active, got)
		}
	}
}

func TestLoadPricesRecipes(t *testing.T) {
	a, _ := newTestApp(t)

	if len(a.ingredients) != 3 || len(a.recipes) != 2 {
		t.Fatalf("loaded %d ingredients, %d recipes", len(a.ingredients), len(a.recipes))
	}
	want := map[string]float64{"Cake": 5, "Shortbread": 4.4}
	for _, r := range a.recipes {
		res, ok := a.results[r.ID]
		if !ok {
			t.Fatalf("no result for %s", r.Name)
		}
		if math.Abs(res.FinalPrice-want[r.Name]) > 1e-9 {
			t.Errorf("%s final price = %v, want %v", r.Name, res.FinalPrice, want[r.Name])
		}
	}
}

func TestTabKeysAndMouse(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(a, "r")
	if a.activeTab != tabRecipes {
		t.Fatalf("after r: tab = %d", a.activeTab)
	}
	a, _ = press(a, "x")
	if a.activeTab != tabSettings {
		t.Fatalf("after x: tab = %d", a.activeTab)
	}

	// Click the middle of the Ingredients tab.
	x := components.TabVisualWidth(components.Tabs[0], false) + 1 + 3
	m, _ := a.Update(tea.MouseMsg{X: x, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	a = m.(App)
	if a.activeTab != tabIngredients {
		t.Fatalf("after click at x=%d: tab = %d", x, a.activeTab)
	}

	m, _ = a.Update(tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	a = m.(App)
	if a.ingState.cursor != 1 {
		t.Fatalf("after wheel down: cursor = %d", a.ingState.cursor)
	}
}

func TestCursorClamps(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(a, "i", "j", "j", "j", "j")
	if a.ingState.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", a.ingState.cursor)
	}
	a, _ = press(a, "k", "k", "k", "k")
	if a.ingState.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", a.ingState.cursor)
	}
}

func TestFilterRecipes(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(a, "r", "/", "S", "H", "o", "r", "t", "enter")
	if a.recState.filtering {
		t.Fatal("still filtering after enter")
	}
	if a.recState.query != "SHort" {
		t.Fatalf("query = %q", a.recState.query)
	}
	got := a.visibleRecipes()
	if len(got) != 1 || got[0].Name != "Shortbread" {
		t.Fatalf("visible = %+v", got)
	}

	a, _ = press(a, "esc")
	if a.recState.query != "" || len(a.visibleRecipes()) != 2 {
		t.Fatalf("esc did not clear filter: %q", a.recState.query)
	}
}

func TestEscClearsAppliedFilter(t *testing.T) {
	a, _ := newTestApp(t)

	// "a" matches both recipes, so the cursor can move off the first row.
	a, _ = press(a, "r", "/", "a", "enter", "j")
	if a.recState.query != "a" {
		t.Fatalf("query = %q, want %q", a.recState.query, "a")
	}
	if a.recState.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", a.recState.cursor)
	}

	a, _ = press(a, "esc")
	if a.recState.query != "" {
		t.Fatalf("query = %q after esc", a.recState.query)
	}
	if a.recState.cursor != 0 {
		t.Fatalf("cursor = %d after esc, want 0", a.recState.cursor)
	}
	if got := a.visibleRecipes(); len(got) != 2 {
		t.Fatalf("visible = %d recipes after esc, want 2", len(got))
	}
	if r, ok := a.selectedRecipe(); !ok || r.Name != "Cake" {
		t.Fatalf("selected = %+v, %v, want Cake", r, ok)
	}
}

func TestDeleteIngredientPurgesLinks(t *testing.T) {
	a, _ := newTestApp(t)

	// Butter sorts first.
	a, _ = press(a, "i", "d")
	if a.confirming == nil || !strings.Contains(a.confirming.prompt, "used by 1 recipe") {
		t.Fatalf("confirm prompt = %+v", a.confirming)
	}

	a, cmd := press(a, "y")
	a = settle(t, a, cmd)

	if len(a.ingredients) != 2 {
		t.Fatalf("ingredients = %d, want 2", len(a.ingredients))
	}
	if !strings.Contains(a.status, "Removed 1 link") {
		t.Fatalf("status = %q", a.status)
	}
	for _, r := range a.recipes {
		if r.Name != "Shortbread" {
			continue
		}
		if len(r.Links) != 1 {
			t.Fatalf("Shortbread links = %d, want 1", len(r.Links))
		}
		if res := a.results[r.ID]; math.Abs(res.FinalPrice-1.2) > 1e-9 {
			t.Fatalf("Shortbread final price = %v, want 1.2", res.FinalPrice)
		}
	}
}

func TestDeleteCancelled(t *testing.T) {
	a, _ := newTestApp(t)

	a, cmd := press(a, "r", "d", "n")
	if cmd != nil {
		t.Fatal("cancelled delete returned a command")
	}
	if a.confirming != nil || a.status != "Delete cancelled" {
		t.Fatalf("confirming=%v status=%q", a.confirming, a.status)
	}
	a = reload(t, a)
	if len(a.recipes) != 2 {
		t.Fatalf("recipes = %d, want 2", len(a.recipes))
	}
}

func TestAddFormOpensAndCancels(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(a, "i", "a")
	if a.form == nil || a.formKind != formIngredient {
		t.Fatalf("form=%v kind=%d", a.form, a.formKind)
	}
	if a.ingValues.Unit != "kg" {
		t.Fatalf("default unit = %q", a.ingValues.Unit)
	}

	a, _ = press(a, "esc")
	if a.form != nil || a.status != "Cancelled" {
		t.Fatalf("form=%v status=%q", a.form, a.status)
	}
}

func TestSaveIngredientAndRecipe(t *testing.T) {
	a, _ := newTestApp(t)

	a.ingValues = &IngredientValues{Name: "Eggs", Price: "0.3", Unit: "unit"}
	a.editID = 0
	a = settle(t, a, a.saveIngredient())
	if len(a.ingredients) != 4 {
		t.Fatalf("ingredients = %d, want 4", len(a.ingredients))
	}
	var eggs model.Ingredient
	for _, ing := range a.ingredients {
		if ing.Name == "Eggs" {
			eggs = ing
		}
	}
	if eggs.ID == 0 {
		t.Fatal("Eggs not listed")
	}

	a.recValues = NewRecipeValues(model.Recipe{}, a.cfg.General.DefaultMargin, a.ingredients)
	a.recValues.Name = "Omelette"
	a.recValues.Selected = []int64{eggs.ID}
	qty := "3"
	a.recValues.Quantities[eggs.ID] = &qty
	a = settle(t, a, a.saveRecipe())

	var omelette model.Recipe
	for _, r := range a.recipes {
		if r.Name == "Omelette" {
			omelette = r
		}
	}
	res, ok := a.results[omelette.ID]
	if !ok {
		t.Fatal("Omelette not priced")
	}
	// 0.9 ingredients, 1.8 total, margin 30
	if math.Abs(res.FinalPrice-1.8/0.7) > 1e-9 {
		t.Fatalf("Omelette final price = %v", res.FinalPrice)
	}
}

func TestSaveRecipeReportsStoreError(t *testing.T) {
	a, _ := newTestApp(t)

	a.recValues = NewRecipeValues(model.Recipe{}, 30, a.ingredients)
	a.recValues.Name = "Bad"
	a.recValues.Margin = "100"
	a = settle(t, a, a.saveRecipe())
	if !a.statusErr {
		t.Fatalf("status = %q, want an error", a.status)
	}
}

func TestSaveSettings(t *testing.T) {
	t.Cleanup(func() {
		cli.Currency = "$"
		theme.SetActive("flexoki-dark")
	})
	a, _ := newTestApp(t)

	var saved config.Config
	a.saveConfig = func(c config.Config) error {
		saved = c
		return nil
	}
	a.setValues = NewSettingsValues(a.cfg)
	a.setValues.Currency = "€"
	a.setValues.Theme = "tokyo-night"
	a.setValues.DefaultMargin = "40"
	a.saveSettings()

	if a.statusErr {
		t.Fatalf("status = %q", a.status)
	}
	if saved.Appearance.Currency != "€" || saved.General.DefaultMargin != 40 {
		t.Fatalf("saved = %+v", saved)
	}
	if cli.Currency != "€" || theme.Active.Name != "tokyo-night" {
		t.Fatalf("currency=%q theme=%q", cli.Currency, theme.Active.Name)
	}
	if a.cfg.General.DefaultMargin != 40 {
		t.Fatalf("app config margin = %v", a.cfg.General.DefaultMargin)
	}
}

func TestViewRendersTabs(t *testing.T) {
	a, _ := newTestApp(t)

	for _, tc := range []struct {
		key  string
		want string
	}{
		{"o", "Ingredient spend"},
		{"i", "Butter"},
		{"r", "Final price"},
		{"x", "Default margin"},
	} {
		a, _ = press(a, tc.key)
		if out := a.View(); !strings.Contains(out, tc.want) {
			t.Errorf("tab %q view is missing %q", tc.key, tc.want)
		}
	}

	a.width = 40
	if out := a.View(); !strings.Contains(out, "too narrow") {
		t.Error("narrow terminal should show the width notice")
	}
}
