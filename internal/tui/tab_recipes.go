package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/model"
	"github.com/theirongolddev/bakecost/internal/tui/components"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

func (a App) renderRecipesTab(cw, h int) string {
	t := theme.Active
	list := a.visibleRecipes()

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	if len(list) == 0 {
		var body strings.Builder
		body.WriteString(a.filterLine(&a.recState, mutedStyle))
		msg := "No recipes yet. Press a to add one."
		if a.recState.query != "" {
			msg = fmt.Sprintf("No recipes match %q", a.recState.query)
		}
		body.WriteString(mutedStyle.Render(msg))
		return components.ContentCard("Recipes", body.String(), cw)
	}

	leftW := cw * 2 / 5
	if leftW < 30 {
		leftW = 30
	}
	rightW := cw - leftW
	leftInner := components.CardInnerWidth(leftW)

	// Left pane: recipe list with final price
	var left strings.Builder
	left.WriteString(a.filterLine(&a.recState, mutedStyle))

	priceW := 12
	nameW := leftInner - priceW - 1
	visible := h - 5
	start, end := visibleWindow(a.recState.cursor, len(list), visible)
	for i := start; i < end; i++ {
		r := list[i]
		price := "n/a"
		if res, ok := a.results[r.ID]; ok {
			price = cli.FormatMoney(res.FinalPrice)
		}
		line := fmt.Sprintf("%-*s %*s", nameW, truncStr(r.Name, nameW), priceW, price)
		style := rowStyle
		if i == a.recState.cursor {
			style = selectedStyle
		}
		left.WriteString(style.Render(line))
		if i < end-1 {
			left.WriteString("\n")
		}
	}
	leftCard := components.ContentCard(fmt.Sprintf("Recipes [%d]", len(list)), left.String(), leftW)

	// Right pane: cost breakdown of the selection
	sel := list[a.recState.cursor]
	rightCard := components.ContentCard(truncStr(sel.Name, components.CardInnerWidth(rightW)), a.renderCostDetail(sel, rightW), rightW)

	return components.CardRow([]string{leftCard, rightCard})
}

// renderCostDetail renders the line items and totals for one recipe.
func (a App) renderCostDetail(r model.Recipe, w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	priceStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Bold(true)
	warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var body strings.Builder
	if r.Description != "" {
		body.WriteString(mutedStyle.Render(truncStr(r.Description, innerW)))
		body.WriteString("\n")
	}

	res, ok := a.results[r.ID]
	if !ok {
		body.WriteString(warnStyle.Render(fmt.Sprintf("! Not priced: margin %g%% is outside [0, 100). Edit the recipe to fix it.", r.Margin)))
		return body.String()
	}

	body.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	body.WriteString("\n")

	if len(res.Items) == 0 {
		body.WriteString(mutedStyle.Render("No ingredients linked."))
		body.WriteString("\n")
	} else {
		nameW := innerW - 12 - 14 - 10 - 3
		if nameW < 8 {
			nameW = 8
		}
		row := func(name, qty, unit, cost string) string {
			return fmt.Sprintf("%-*s %12s %14s %10s", nameW, truncStr(name, nameW), qty, unit, cost)
		}
		body.WriteString(headerStyle.Render(row("Ingredient", "Quantity", "Unit price", "Cost")))
		body.WriteString("\n")
		for _, it := range res.Items {
			body.WriteString(valueStyle.Render(row(
				it.Name,
				cli.FormatQuantity(it.Quantity, it.Unit),
				cli.FormatUnitPrice(it.UnitPrice, it.Unit),
				cli.FormatMoney(it.Cost),
			)))
			body.WriteString("\n")
		}
	}
	body.WriteString("\n")

	totals := [][2]string{
		{"Ingredients", cli.FormatMoney(res.IngredientCost)},
		{"Labor", cli.FormatMoney(res.LaborCost)},
		{"Total cost", cli.FormatMoney(res.TotalCost)},
		{"Margin", cli.FormatPercent(res.Margin)},
	}
	for _, kv := range totals {
		fmt.Fprintf(&body, "%s %s\n",
			mutedStyle.Render(fmt.Sprintf("%-12s", kv[0])),
			valueStyle.Render(kv[1]))
	}
	fmt.Fprintf(&body, "%s %s",
		mutedStyle.Render(fmt.Sprintf("%-12s", "Final price")),
		priceStyle.Render(cli.FormatMoney(res.FinalPrice)))

	if res.InvalidLinks > 0 {
		body.WriteString("\n")
		body.WriteString(warnStyle.Render(fmt.Sprintf("! Removed %d link(s) to deleted ingredients", res.InvalidLinks)))
	}
	return body.String()
}
