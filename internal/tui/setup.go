package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wrenhale/letssave/internal/config"
	"github.com/wrenhale/letssave/internal/ledger"
	"github.com/wrenhale/letssave/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// setupValues holds the bound fields of the first-run form.
type setupValues struct {
	themeName    string
	startingCash string
}

func newSetupForm(vals *setupValues) *huh.Form {
	var themeOpts []huh.Option[string]
	for _, t := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(t.Name, t.Name))
	}

	vals.themeName = theme.Active.Name
	vals.startingCash = "500"

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("♥ Welcome to letssave").
				Description("A tiny piggybank for your spare cash.\nLet's set things up."),
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&vals.themeName),
			huh.NewInput().
				Title("Starting cash").
				Description("How much is in the piggybank right now?").
				Value(&vals.startingCash).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return nil
					}
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("enter a number")
					}
					return nil
				}),
		),
	)
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State != huh.StateCompleted {
		return a, cmd
	}

	cfg := config.DefaultConfig()
	cfg.Appearance.Theme = a.setupVals.themeName
	theme.SetActive(a.setupVals.themeName)

	var cmds []tea.Cmd
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	raw := strings.TrimSpace(a.setupVals.startingCash)
	if raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			seed := v
			cfg.Ledger.SeedAvailable = &seed
			if a.freshLedger {
				next := a.state
				next.Available = ledger.Clamp(v)
				if c := a.commit(next); c != nil {
					cmds = append(cmds, c)
				}
			}
		}
	}

	if err := config.Save(cfg); err != nil {
		a.saveErr = fmt.Errorf("saving config: %w", err)
		return a, tea.Quit
	}

	a.needSetup = false
	a.setupForm = nil
	a.settings = newSettingsState()
	return a, tea.Batch(cmds...)
}
