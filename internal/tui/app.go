// Package tui provides the interactive Bubble Tea dashboard for bakecost.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/config"
	"github.com/theirongolddev/bakecost/internal/costing"
	applog "github.com/theirongolddev/bakecost/internal/log"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/tui/components"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

// Store is the storage the dashboard reads and edits. *store.Store
// satisfies it.
type Store interface {
	costing.Source
	ListIngredients(ctx context.Context) ([]model.Ingredient, error)
	AddIngredient(ctx context.Context, name string, price float64, unit model.Unit) (model.Ingredient, error)
	EditIngredient(ctx context.Context, id int64, name string, price float64, unit model.Unit) error
	DeleteIngredient(ctx context.Context, id int64) error
	AddRecipe(ctx context.Context, name, description string, margin float64, links []model.LinkInput) (model.Recipe, error)
	EditRecipe(ctx context.Context, id int64, name, description string, margin float64, links []model.LinkInput) error
	DeleteRecipe(ctx context.Context, id int64) error
}

// dataLoadedMsg carries a full reload of the database.
type dataLoadedMsg struct {
	ingredients []model.Ingredient
	recipes     []model.Recipe
	results     []model.CostResult
	skipped     error
	err         error
	loadTime    time.Duration
}

// mutationMsg reports the outcome of an add, edit, or delete.
type mutationMsg struct {
	status string
	err    error
}

const (
	tabOverview = iota
	tabIngredients
	tabRecipes
	tabSettings
)

type formKind int

const (
	formNone formKind = iota
	formIngredient
	formRecipe
	formQuantities
	formSettings
)

// pendingDelete is a delete waiting for y/n confirmation.
type pendingDelete struct {
	tab    int
	id     int64
	prompt string
}

// App is the root Bubble Tea model.
type App struct {
	ctx        context.Context
	store      Store
	engine     *costing.Engine
	cfg        config.Config
	saveConfig func(config.Config) error

	// Data
	ingredients []model.Ingredient
	recipes     []model.Recipe
	results     map[int64]model.CostResult
	ordered     []model.CostResult
	skipped     error
	loadErr     error
	loaded      bool
	loading     bool
	loadTime    time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	ingState listState
	recState listState

	// Embedded huh form; nil when no form is open.
	form       *huh.Form
	formKind   formKind
	editID     int64
	ingValues  *IngredientValues
	recValues  *RecipeValues
	setValues  *SettingsValues
	confirming *pendingDelete

	status    string
	statusErr bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 60
	maxContentWidth  = 160
	minContentHeight = 5
)

// NewApp creates the dashboard over s. cfg supplies the default margin for
// new recipes and is rewritten by the settings tab.
func NewApp(ctx context.Context, s Store, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	return App{
		ctx:        ctx,
		store:      s,
		engine:     costing.New(s),
		cfg:        cfg,
		saveConfig: config.Save,
		results:    make(map[int64]model.CostResult),
		loading:    true,
		ingState:   newListState(),
		recState:   newListState(),
		spinner:    sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(a.loadCmd(), a.spinner.Tick)
}

// loadCmd reads everything the tabs show and prices every recipe.
// Pricing also purges links to deleted ingredients.
func (a App) loadCmd() tea.Cmd {
	ctx, s, engine := a.ctx, a.store, a.engine
	return func() tea.Msg {
		start := time.Now()

		ingredients, err := s.ListIngredients(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}
		results, skipped := engine.ComputeAll(ctx)
		if skipped != nil && !errors.Is(skipped, model.ErrValidation) {
			return dataLoadedMsg{err: skipped}
		}
		// Listed after pricing so purged links are already gone.
		recipes, err := s.ListRecipes(ctx)
		if err != nil {
			return dataLoadedMsg{err: err}
		}

		return dataLoadedMsg{
			ingredients: ingredients,
			recipes:     recipes,
			results:     results,
			skipped:     skipped,
			loadTime:    time.Since(start),
		}
	}
}

// mutate runs fn off the UI goroutine and reports status on success.
func (a App) mutate(status string, fn func(ctx context.Context, s Store) error) tea.Cmd {
	ctx, s := a.ctx, a.store
	return func() tea.Msg {
		if err := fn(ctx, s); err != nil {
			return mutationMsg{err: err}
		}
		return mutationMsg{status: status}
	}
}

func (a *App) applyData(msg dataLoadedMsg) {
	a.loaded = true
	a.loading = false
	a.loadErr = msg.err
	if msg.err != nil {
		a.setStatus(msg.err.Error(), true)
		return
	}

	a.ingredients = msg.ingredients
	a.recipes = msg.recipes
	a.ordered = msg.results
	a.skipped = msg.skipped
	a.loadTime = msg.loadTime
	a.results = make(map[int64]model.CostResult, len(msg.results))
	purged := 0
	for _, r := range msg.results {
		a.results[r.RecipeID] = r
		purged += r.InvalidLinks
	}
	if purged > 0 {
		a.setStatus(fmt.Sprintf("Removed %d link(s) to deleted ingredients", purged), false)
	}

	a.ingState.clamp(len(a.visibleIngredients()))
	a.recState.clamp(len(a.visibleRecipes()))
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(a.formWidth()).WithHeight(a.formHeight())
		}
		return a, nil

	case dataLoadedMsg:
		a.applyData(msg)
		return a, nil

	case mutationMsg:
		if msg.err != nil {
			applog.Warn(a.ctx, "edit failed", "err", msg.err)
			a.setStatus(msg.err.Error(), true)
			return a, nil
		}
		a.setStatus(msg.status, false)
		a.loading = true
		return a, a.loadCmd()

	case spinner.TickMsg:
		if !a.loaded {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case tea.MouseMsg:
		return a.updateMouse(msg)

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// Forward unhandled messages to the open form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !a.loaded || a.showHelp || a.form != nil || a.confirming != nil {
		return a, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if ls := a.activeList(); ls != nil {
			ls.move(-1, a.activeListLen())
		}
	case tea.MouseButtonWheelDown:
		if ls := a.activeList(); ls != nil {
			ls.move(1, a.activeListLen())
		}
	case tea.MouseButtonLeft:
		// Only the first line of the tab bar holds tab labels.
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.form != nil {
		if key == "esc" {
			a.closeForm()
			a.setStatus("Cancelled", false)
			return a, nil
		}
		return a.updateForm(msg)
	}

	if !a.loaded {
		return a, nil
	}

	if a.confirming != nil {
		p := a.confirming
		a.confirming = nil
		if key != "y" && key != "Y" {
			a.setStatus("Delete cancelled", false)
			return a, nil
		}
		return a, a.deleteCmd(p)
	}

	if ls := a.activeList(); ls != nil && ls.filtering {
		return a.updateFilter(msg)
	}

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "ctrl+r":
		a.loading = true
		return a, a.loadCmd()
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}
	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabIngredients, tabRecipes:
		return a.updateListKey(key)
	case tabSettings:
		if key == "enter" || key == "e" {
			return a.openSettingsForm()
		}
	}
	return a, nil
}

func (a App) updateListKey(key string) (tea.Model, tea.Cmd) {
	ls := a.activeList()
	n := a.activeListLen()

	switch key {
	case "j", "down":
		ls.move(1, n)
	case "k", "up":
		ls.move(-1, n)
	case "g", "home":
		ls.cursor = 0
	case "G", "end":
		ls.move(n, n)
	case "/":
		return a, ls.startFilter()
	case "esc":
		if ls.query != "" {
			ls.query = ""
			ls.cursor = 0
		}
	case "a":
		if a.activeTab == tabIngredients {
			return a.openIngredientForm(model.Ingredient{})
		}
		return a.openRecipeForm(model.Recipe{})
	case "e", "enter":
		if a.activeTab == tabIngredients {
			if ing, ok := a.selectedIngredient(); ok {
				return a.openIngredientForm(ing)
			}
			return a, nil
		}
		if r, ok := a.selectedRecipe(); ok {
			return a.openRecipeForm(r)
		}
	case "d", "delete":
		a.confirmDelete()
	}
	return a, nil
}

func (a App) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ls := a.activeList()
	switch msg.String() {
	case "enter":
		ls.applyFilter()
		return a, nil
	case "esc":
		ls.filtering = false
		return a, nil
	}
	var cmd tea.Cmd
	ls.input, cmd = ls.input.Update(msg)
	return a, cmd
}

func (a *App) confirmDelete() {
	switch a.activeTab {
	case tabIngredients:
		ing, ok := a.selectedIngredient()
		if !ok {
			return
		}
		prompt := fmt.Sprintf("Delete %s?", ing.Name)
		if n := a.recipesUsing(ing.ID); n > 0 {
			prompt = fmt.Sprintf("Delete %s? It is used by %d recipe(s).", ing.Name, n)
		}
		a.confirming = &pendingDelete{tab: tabIngredients, id: ing.ID, prompt: prompt + " [y/N]"}
	case tabRecipes:
		r, ok := a.selectedRecipe()
		if !ok {
			return
		}
		a.confirming = &pendingDelete{tab: tabRecipes, id: r.ID, prompt: fmt.Sprintf("Delete %s? [y/N]", r.Name)}
	}
}

func (a App) deleteCmd(p *pendingDelete) tea.Cmd {
	id := p.id
	if p.tab == tabIngredients {
		return a.mutate("Ingredient deleted", func(ctx context.Context, s Store) error {
			return s.DeleteIngredient(ctx, id)
		})
	}
	return a.mutate("Recipe deleted", func(ctx context.Context, s Store) error {
		return s.DeleteRecipe(ctx, id)
	})
}

// recipesUsing counts recipes with at least one link to ingredient id.
func (a App) recipesUsing(id int64) int {
	n := 0
	for _, r := range a.recipes {
		for _, l := range r.Links {
			if l.IngredientID == id {
				n++
				break
			}
		}
	}
	return n
}

// ─── Forms ──────────────────────────────────────────────────────

func (a App) openIngredientForm(ing model.Ingredient) (tea.Model, tea.Cmd) {
	title := "New ingredient"
	if ing.ID != 0 {
		title = fmt.Sprintf("Edit ingredient #%d", ing.ID)
	}
	a.editID = ing.ID
	a.ingValues = NewIngredientValues(ing)
	return a.openForm(formIngredient, IngredientForm(title, a.ingValues))
}

func (a App) openRecipeForm(r model.Recipe) (tea.Model, tea.Cmd) {
	title := "New recipe"
	if r.ID != 0 {
		title = fmt.Sprintf("Edit recipe #%d", r.ID)
	}
	a.editID = r.ID
	a.recValues = NewRecipeValues(r, a.cfg.General.DefaultMargin, a.ingredients)
	return a.openForm(formRecipe, RecipeForm(title, a.recValues, a.ingredients))
}

func (a App) openSettingsForm() (tea.Model, tea.Cmd) {
	a.setValues = NewSettingsValues(a.cfg)
	return a.openForm(formSettings, SettingsForm(a.setValues))
}

func (a App) openForm(kind formKind, f *huh.Form) (tea.Model, tea.Cmd) {
	a.formKind = kind
	a.form = f
	if a.width > 0 {
		a.form = a.form.WithWidth(a.formWidth()).WithHeight(a.formHeight())
	}
	a.setStatus("", false)
	return a, a.form.Init()
}

func (a *App) closeForm() {
	a.form = nil
	a.formKind = formNone
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		return a.submitForm()
	case huh.StateAborted:
		a.closeForm()
		a.setStatus("Cancelled", false)
		return a, nil
	}
	return a, cmd
}

// submitForm acts on a completed form. The recipe form chains into the
// quantity form when ingredients were selected.
func (a App) submitForm() (tea.Model, tea.Cmd) {
	kind := a.formKind
	a.closeForm()

	var cmd tea.Cmd
	switch kind {
	case formIngredient:
		cmd = a.saveIngredient()
	case formRecipe:
		if qf := QuantityForm(a.recValues, a.ingredients); qf != nil {
			return a.openForm(formQuantities, qf)
		}
		cmd = a.saveRecipe()
	case formQuantities:
		cmd = a.saveRecipe()
	case formSettings:
		a.saveSettings()
	}
	return a, cmd
}

func (a *App) saveIngredient() tea.Cmd {
	name, price, unit, err := a.ingValues.Parse()
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}
	id := a.editID
	if id == 0 {
		return a.mutate("Ingredient added", func(ctx context.Context, s Store) error {
			_, err := s.AddIngredient(ctx, name, price, unit)
			return err
		})
	}
	return a.mutate("Ingredient updated", func(ctx context.Context, s Store) error {
		return s.EditIngredient(ctx, id, name, price, unit)
	})
}

func (a *App) saveRecipe() tea.Cmd {
	name, desc, margin, links, err := a.recValues.Parse()
	if err != nil {
		a.setStatus(err.Error(), true)
		return nil
	}
	id := a.editID
	if id == 0 {
		return a.mutate("Recipe added", func(ctx context.Context, s Store) error {
			_, err := s.AddRecipe(ctx, name, desc, margin, links)
			return err
		})
	}
	return a.mutate("Recipe updated", func(ctx context.Context, s Store) error {
		return s.EditRecipe(ctx, id, name, desc, margin, links)
	})
}

func (a *App) saveSettings() {
	updated, err := a.setValues.Apply(a.cfg)
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	if err := a.saveConfig(updated); err != nil {
		a.setStatus(fmt.Sprintf("saving config: %v", err), true)
		return
	}

	dbChanged := updated.DBPath() != a.cfg.DBPath()
	a.cfg = updated
	theme.SetActive(updated.Appearance.Theme)
	cli.Currency = updated.Appearance.Currency

	if dbChanged {
		a.setStatus("Settings saved; the new database is used on next start", false)
		return
	}
	a.setStatus("Settings saved", false)
}

func (a App) formWidth() int {
	return components.CardInnerWidth(a.contentWidth())
}

func (a App) formHeight() int {
	h := a.height - 8 // tab bar, status bar, card chrome
	if h < minContentHeight {
		h = minContentHeight
	}
	return h
}

// ─── Lists ──────────────────────────────────────────────────────

func (a *App) activeList() *listState {
	switch a.activeTab {
	case tabIngredients:
		return &a.ingState
	case tabRecipes:
		return &a.recState
	}
	return nil
}

func (a App) activeListLen() int {
	switch a.activeTab {
	case tabIngredients:
		return len(a.visibleIngredients())
	case tabRecipes:
		return len(a.visibleRecipes())
	}
	return 0
}

func (a App) visibleIngredients() []model.Ingredient {
	if a.ingState.query == "" {
		return a.ingredients
	}
	var out []model.Ingredient
	for _, ing := range a.ingredients {
		if matchName(ing.Name, a.ingState.query) {
			out = append(out, ing)
		}
	}
	return out
}

func (a App) visibleRecipes() []model.Recipe {
	if a.recState.query == "" {
		return a.recipes
	}
	var out []model.Recipe
	for _, r := range a.recipes {
		if matchName(r.Name, a.recState.query) {
			out = append(out, r)
		}
	}
	return out
}

func (a App) selectedIngredient() (model.Ingredient, bool) {
	list := a.visibleIngredients()
	if a.ingState.cursor < 0 || a.ingState.cursor >= len(list) {
		return model.Ingredient{}, false
	}
	return list[a.ingState.cursor], true
}

func (a App) selectedRecipe() (model.Recipe, bool) {
	list := a.visibleRecipes()
	if a.recState.cursor < 0 || a.recState.cursor >= len(list) {
		return model.Recipe{}, false
	}
	return list[a.recState.cursor], true
}

func matchName(name, query string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// ─── Views ──────────────────────────────────────────────────────

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if !a.loaded {
		return a.viewLoading()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  bakecost needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(2, 4)

	logoStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	subtitleStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(logoStyle.Render("◈ bakecost"))
	b.WriteString(subtitleStyle.Render(" · Recipe Costs"))
	b.WriteString("\n\n")
	b.WriteString(a.spinner.View())
	b.WriteString(subtitleStyle.Render(" Pricing recipes..."))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings [][2]string
	}{
		{"Navigation", [][2]string{
			{"o i r x", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move in lists"},
			{"g G", "First / Last item"},
		}},
		{"Actions", [][2]string{
			{"a", "Add ingredient or recipe"},
			{"e Enter", "Edit selection / settings"},
			{"d", "Delete selection"},
			{"/", "Filter by name"},
			{"Esc", "Clear filter / Cancel form"},
			{"^r", "Reload"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind[0])),
				descStyle.Render(bind[1]))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)
	statusBar := components.RenderStatusBar(w, a.hints(), a.statusLine(), a.statusErr || a.confirming != nil)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch {
	case a.form != nil:
		content = components.ContentCard("", a.form.View(), cw)
	case a.loadErr != nil:
		content = components.ContentCard("Error", a.loadErr.Error(), cw)
	default:
		switch a.activeTab {
		case tabOverview:
			content = a.renderOverviewTab(cw)
		case tabIngredients:
			content = a.renderIngredientsTab(cw, contentH)
		case tabRecipes:
			content = a.renderRecipesTab(cw, contentH)
		case tabSettings:
			content = a.renderSettingsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) hints() string {
	switch {
	case a.form != nil:
		return "[esc]cancel  [enter]next"
	case a.confirming != nil:
		return "[y]es  [n]o"
	}
	if ls := a.activeList(); ls != nil {
		if ls.filtering {
			return "[enter]apply  [esc]cancel"
		}
		return "[a]dd  [e]dit  [d]elete  [/]filter  [?]help  [q]uit"
	}
	if a.activeTab == tabSettings {
		return "[e]dit  [?]help  [q]uit"
	}
	return "[?]help  [q]uit"
}

func (a App) statusLine() string {
	switch {
	case a.confirming != nil:
		return a.confirming.prompt
	case a.loading && a.loaded:
		return "Reloading..."
	}
	return a.status
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
