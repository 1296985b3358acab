package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/bakecost/internal/tui/theme"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// a status message on the right. Error messages are shown in red.
func RenderStatusBar(width int, hints, status string, isErr bool) string {
	t := theme.Active

	base := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	statusStyle := base.Foreground(t.Green)
	if isErr {
		statusStyle = base.Foreground(t.Red).Bold(true)
	}

	left := " " + hints
	right := ""
	if status != "" {
		right = status + " "
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		// Status wins over hints when space runs out.
		left = ""
		padding = width - lipgloss.Width(right)
		if padding < 0 {
			padding = 0
		}
	}

	return base.Render(left) + base.Render(strings.Repeat(" ", padding)) + statusStyle.Render(right)
}
