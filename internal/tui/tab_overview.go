package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/report"
	"github.com/theirongolddev/bakecost/internal/tui/components"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

const overviewTopIngredients = 8

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	sum := report.Summarize(a.ordered)
	var b strings.Builder

	// Row 1: metric cards
	avgNote := ""
	if sum.Recipes > 0 {
		avgNote = fmt.Sprintf("over %d recipe(s)", sum.Recipes)
	}
	metrics := []components.Metric{
		{Label: "Ingredients", Value: cli.FormatNumber(int64(len(a.ingredients)))},
		{Label: "Recipes", Value: cli.FormatNumber(int64(len(a.recipes)))},
		{Label: "Avg price", Value: cli.FormatMoney(sum.AveragePrice), Note: avgNote},
		{Label: "Ingredient cost", Value: cli.FormatMoney(sum.IngredientCost), Note: "all recipes"},
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)

	if sum.Recipes == 0 {
		hint := "No recipes priced yet. Press r, then a to add one."
		if len(a.ingredients) == 0 {
			hint = "Start by adding ingredients: press i, then a."
		}
		b.WriteString(components.ContentCard("Getting started", mutedStyle.Render(hint), cw))
		return b.String()
	}

	// Row 2: price range + ingredient spend
	halves := components.LayoutRow(cw, 2)

	var rng strings.Builder
	extremes := []struct {
		label string
		name  string
		price float64
	}{
		{"Cheapest", sum.Cheapest.RecipeName, sum.Cheapest.FinalPrice},
		{"Most expensive", sum.MostExpensive.RecipeName, sum.MostExpensive.FinalPrice},
	}
	nameW := components.CardInnerWidth(halves[0]) - 30
	for _, e := range extremes {
		fmt.Fprintf(&rng, "%s %s %s\n",
			mutedStyle.Render(fmt.Sprintf("%-15s", e.label)),
			valueStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(e.name, nameW))),
			accentStyle.Render(cli.FormatMoney(e.price)))
	}
	rng.WriteString("\n")
	totals := [][2]string{
		{"Labor", cli.FormatMoney(sum.LaborCost)},
		{"Total cost", cli.FormatMoney(sum.TotalCost)},
		{"Sale value", cli.FormatMoney(sum.FinalPrice)},
	}
	for _, kv := range totals {
		fmt.Fprintf(&rng, "%s %s\n",
			mutedStyle.Render(fmt.Sprintf("%-15s", kv[0])),
			valueStyle.Render(kv[1]))
	}
	rangeCard := components.ContentCard("Prices", strings.TrimRight(rng.String(), "\n"), halves[0])

	usage := report.AggregateIngredients(a.ordered)
	if len(usage) > overviewTopIngredients {
		usage = usage[:overviewTopIngredients]
	}
	spendInner := components.CardInnerWidth(halves[1])
	labelW := 14
	barW := spendInner - labelW - 14
	var spend strings.Builder
	for i, u := range usage {
		spend.WriteString(components.ShareBar(u.Name, u.SharePercent/100, cli.FormatMoney(u.Cost), labelW, barW))
		if i < len(usage)-1 {
			spend.WriteString("\n")
		}
	}
	spendCard := components.ContentCard("Ingredient spend", spend.String(), halves[1])

	b.WriteString(components.CardRow([]string{rangeCard, spendCard}))

	// Row 3: recipes the engine could not price
	if a.skipped != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		var w strings.Builder
		for i, err := range unwrapJoined(a.skipped) {
			if i > 0 {
				w.WriteString("\n")
			}
			w.WriteString(warnStyle.Render("! " + err.Error()))
		}
		b.WriteString("\n")
		b.WriteString(components.ContentCard("Not priced", w.String(), cw))
	}

	return b.String()
}

// unwrapJoined splits an errors.Join result back into its parts.
func unwrapJoined(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
