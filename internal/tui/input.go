package tui

import (
	"strconv"
	"strings"

	"github.com/wrenhale/letssave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// newField returns a text input styled for inline forms.
func newField(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Active.Accent)
	return ti
}

// parseAmount parses a user-typed money amount. Blank or junk input
// reports false.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
