package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bakecost/internal/cli"
	"github.com/theirongolddev/bakecost/internal/config"
	"github.com/theirongolddev/bakecost/internal/tui/components"
	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	fields := []struct{ label, value string }{
		{"Database", a.cfg.DBPath()},
		{"Default margin", cli.FormatPercent(a.cfg.General.DefaultMargin)},
		{"Theme", theme.Active.Name},
		{"Currency", a.cfg.Appearance.Currency},
		{"Config file", config.Path()},
	}

	var body strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&body, "%s %s\n",
			labelStyle.Render(fmt.Sprintf("%-16s", f.label)),
			valueStyle.Render(f.value))
	}
	body.WriteString("\n")
	body.WriteString(dimStyle.Render(fmt.Sprintf("Loaded in %s. Press e to edit.", a.loadTime.Round(time.Millisecond))))

	return components.ContentCard("Settings", body.String(), cw)
}
