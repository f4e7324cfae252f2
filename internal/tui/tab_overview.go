package tui

import (
	"fmt"

	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/tui/components"
	"github.com/wrenhale/letssave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const piggyArt = `  ___
 (o o)
(  V  )
/--m-m-`

const piggyArtHappy = `  ___
 (^ ^)
(  V  ) ♥
/--m-m-`

type overviewState struct {
	depositing bool
	amount     textinput.Model
}

func newOverviewState() overviewState {
	return overviewState{
		amount: newField("0", 12),
	}
}

func (a App) browseOverview(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "a", "enter":
		a.overview.depositing = true
		a.overview.amount.SetValue("")
		a.overview.amount.Focus()
		return a, textinput.Blink, true
	}
	return a, nil, false
}

func (a App) updateOverviewInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.overview.depositing = false
		a.overview.amount.Blur()
		return a, nil

	case "enter":
		amount, ok := parseAmount(a.overview.amount.Value())
		if !ok {
			return a, nil
		}
		next, accepted := a.state.QuickDeposit(amount)
		if !accepted {
			return a, nil
		}
		a.overview.depositing = false
		a.overview.amount.Blur()
		a.overview.amount.SetValue("")
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify(fmt.Sprintf("Added %s to available cash", cli.FormatMoney(amount))),
			a.celebrate(),
		}
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	a.overview.amount, cmd = a.overview.amount.Update(msg)
	return a, cmd
}

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	s := a.state
	totals := s.Totals()

	cards := []struct{ Label, Value, Hint string }{
		{"Available", cli.FormatMoney(s.NetAvailable()), "after card balance"},
		{"Total saved", cli.FormatMoney(totals.Saved), "tucked into goals"},
		{"Credit card", cli.FormatMoney(s.CreditCardBalance), "owed right now"},
		{"Left to save", cli.FormatMoney(s.LeftToSave()), "to reach every goal"},
		{"Active goals", cli.FormatNumber(int64(len(s.Goals))), "in progress"},
	}
	row := components.MetricCardRow(cards, cw)

	art := piggyArt
	artColor := t.Accent
	caption := "Feed the piggy. Press [a] to add coins."
	if a.celebrating {
		art = piggyArtHappy
		artColor = t.Green
		caption = "Nom nom nom!"
	}

	artStyle := lipgloss.NewStyle().Foreground(artColor).Bold(true)
	captionStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	body := artStyle.Render(art) + "\n\n" + captionStyle.Render(caption)
	if a.overview.depositing {
		body += "\n\n" + lipgloss.NewStyle().Foreground(t.TextPrimary).Render("Coins to drop in:") +
			"\n" + a.overview.amount.View() +
			"\n" + lipgloss.NewStyle().Foreground(t.TextDim).Render("[enter] deposit  [esc] cancel")
	}
	piggy := components.ContentCard("Piggybank", body, cw)

	// Goal snapshot
	var goalLines string
	if len(s.Goals) == 0 {
		goalLines = lipgloss.NewStyle().Foreground(t.TextDim).Render("No goals yet. Head to the Goals tab.")
	} else {
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		for i, g := range s.Goals {
			if i > 0 {
				goalLines += "\n"
			}
			goalLines += fmt.Sprintf("%s  %s\n%s",
				nameStyle.Render(g.Name),
				lipgloss.NewStyle().Foreground(t.TextMuted).Render(
					cli.FormatMoney(g.Saved)+" of "+cli.FormatMoney(g.Target)),
				components.GoalMeter(g.Progress(), components.CardInnerWidth(cw)-6))
		}
	}
	goalsCard := components.ContentCard("Goals at a glance", goalLines, cw)

	return lipgloss.JoinVertical(lipgloss.Left, row, piggy, goalsCard)
}
