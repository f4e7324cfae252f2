package tui

import (
	"fmt"
	"strconv"

	"github.com/wrenhale/letssave/internal/config"
	"github.com/wrenhale/letssave/internal/tui/components"
	"github.com/wrenhale/letssave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Settings fields, top to bottom.
const (
	settingTheme = iota
	settingSeed
	settingCount
)

type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
}

func newSettingsState() settingsState {
	return settingsState{
		input: newField("500", 12),
	}
}

func (a App) browseSettings(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.settings.cursor < settingCount-1 {
			a.settings.cursor++
		}
		return a, nil, true

	case "k", "up":
		if a.settings.cursor > 0 {
			a.settings.cursor--
		}
		return a, nil, true

	case "enter":
		switch a.settings.cursor {
		case settingTheme:
			// Cycle to the next theme and persist immediately.
			cfg, _ := config.Load()
			next := 0
			for i, t := range theme.All {
				if t.Name == theme.Active.Name {
					next = (i + 1) % len(theme.All)
					break
				}
			}
			cfg.Appearance.Theme = theme.All[next].Name
			theme.SetActive(cfg.Appearance.Theme)
			if err := config.Save(cfg); err != nil {
				a.saveErr = fmt.Errorf("saving config: %w", err)
				return a, tea.Quit, true
			}
			return a, nil, true

		case settingSeed:
			cfg, _ := config.Load()
			a.settings.editing = true
			if cfg.Ledger.SeedAvailable != nil {
				a.settings.input.SetValue(strconv.FormatFloat(*cfg.Ledger.SeedAvailable, 'f', -1, 64))
			} else {
				a.settings.input.SetValue("")
			}
			return a, tea.Batch(a.settings.input.Focus(), textinput.Blink), true
		}
	}
	return a, nil, false
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.settings.editing = false
		a.settings.input.Blur()
		return a, nil

	case "enter":
		cfg, _ := config.Load()
		raw := a.settings.input.Value()
		if raw == "" {
			cfg.Ledger.SeedAvailable = nil
		} else {
			v, ok := parseAmount(raw)
			if !ok {
				return a, nil
			}
			cfg.Ledger.SeedAvailable = &v
		}
		if err := config.Save(cfg); err != nil {
			a.saveErr = fmt.Errorf("saving config: %w", err)
			return a, tea.Quit
		}
		a.settings.editing = false
		a.settings.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg, _ := config.Load()

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	seedDisplay := "default (500)"
	if cfg.Ledger.SeedAvailable != nil {
		seedDisplay = strconv.FormatFloat(*cfg.Ledger.SeedAvailable, 'f', -1, 64)
	}

	rows := [settingCount][2]string{
		{"Theme", theme.Active.Name},
		{"Starting cash (new ledgers)", seedDisplay},
	}

	var body string
	for i, r := range rows {
		marker := "  "
		ls := labelStyle
		if i == a.settings.cursor {
			marker = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("❯ ")
			ls = ls.Bold(true)
		}
		value := valueStyle.Render(r[1])
		if i == settingSeed && a.settings.editing {
			value = a.settings.input.View()
		}
		body += marker + ls.Render(r[0]) + "\n  " + value + "\n"
	}

	if a.settings.editing {
		body += "\n" + dimStyle.Render("[enter] save  [esc] cancel")
	} else {
		body += "\n" + dimStyle.Render("[j/k] move  [enter] change")
	}
	prefs := components.ContentCard("Preferences", body, cw)

	info := components.ContentCard("Files",
		labelStyle.Render("Config  ")+dimStyle.Render(config.ConfigPath())+"\n"+
			labelStyle.Render("Ledger  ")+dimStyle.Render(config.DataPath(cfg)), cw)

	return lipgloss.JoinVertical(lipgloss.Left, prefs, info)
}
