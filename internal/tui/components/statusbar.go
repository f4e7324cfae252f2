package components

import (
	"github.com/wrenhale/letssave/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar. A non-empty
// notification takes over the left side until it expires.
func RenderStatusBar(width int, notification string) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Width(width)

	left := " [?]help  [q]uit"
	if notification != "" {
		notifStyle := lipgloss.NewStyle().
			Foreground(t.Green).
			Bold(true)
		left = " " + notifStyle.Render("✓ "+notification)
	}

	padding := width - lipgloss.Width(left)
	if padding < 0 {
		padding = 0
	}

	bar := left
	for i := 0; i < padding; i++ {
		bar += " "
	}

	return style.Render(bar)
}
