package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/tui/components"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

func (a App) renderIngredientsTab(cw, h int) string {
	t := theme.Active
	list := a.visibleIngredients()
	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceHover).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var body strings.Builder
	body.WriteString(a.filterLine(&a.ingState, mutedStyle))

	if len(list) == 0 {
		msg := "No ingredients yet. Press a to add one."
		if a.ingState.query != "" {
			msg = fmt.Sprintf("No ingredients match %q", a.ingState.query)
		}
		body.WriteString(mutedStyle.Render(msg))
		return components.ContentCard("Ingredients", body.String(), cw)
	}

	nameW := innerW - 6 - 14 - 6 - 10 - 4
	if nameW < 10 {
		nameW = 10
	}
	row := func(id, name, price, unit, used string) string {
		return fmt.Sprintf("%5s %-*s %14s %-6s %10s", id, nameW, truncStr(name, nameW), price, unit, used)
	}

	body.WriteString(headerStyle.Render(row("ID", "Name", "Unit price", "Unit", "Recipes")))
	body.WriteString("\n")

	visible := h - 6 // card border, title, header, filter line
	start, end := visibleWindow(a.ingState.cursor, len(list), visible)
	for i := start; i < end; i++ {
		ing := list[i]
		line := row(
			fmt.Sprintf("%d", ing.ID),
			ing.Name,
			cli.FormatUnitPrice(ing.UnitPrice, ing.Unit),
			string(ing.Unit),
			fmt.Sprintf("%d", a.recipesUsing(ing.ID)),
		)
		style := rowStyle
		if i == a.ingState.cursor {
			style = selectedStyle
		}
		body.WriteString(style.Render(fmt.Sprintf("%-*s", innerW, line)))
		if i < end-1 {
			body.WriteString("\n")
		}
	}

	title := fmt.Sprintf("Ingredients [%d]", len(list))
	return components.ContentCard(title, body.String(), cw)
}

// filterLine renders the filter input while typing, or the applied filter.
func (a App) filterLine(ls *listState, style lipgloss.Style) string {
	switch {
	case ls.filtering:
		return ls.input.View() + "\n"
	case ls.query != "":
		return style.Render(fmt.Sprintf("filter: %s  (esc to clear)", ls.query)) + "\n"
	}
	return ""
}
