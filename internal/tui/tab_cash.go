package tui

import (
	"fmt"

	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/ledger"
	"github.com/wrenhale/letssave/internal/tui/components"
	"github.com/wrenhale/letssave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type cashState struct {
	editing bool
	dir     ledger.AdjustDirection
	amount  textinput.Model
}

func newCashState() cashState {
	return cashState{
		dir:    ledger.Add,
		amount: newField("0", 12),
	}
}

func (a App) browseCash(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "a", "enter":
		a.cash.dir = ledger.Add
	case "s":
		a.cash.dir = ledger.Spend
	default:
		return a, nil, false
	}
	a.cash.editing = true
	a.cash.amount.SetValue("")
	a.cash.amount.Focus()
	return a, textinput.Blink, true
}

func (a App) updateCashInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.cash.editing = false
		a.cash.amount.Blur()
		return a, nil

	case "tab":
		if a.cash.dir == ledger.Add {
			a.cash.dir = ledger.Spend
		} else {
			a.cash.dir = ledger.Add
		}
		return a, nil

	case "enter":
		amount, ok := parseAmount(a.cash.amount.Value())
		if !ok {
			return a, nil
		}
		next, accepted := a.state.AdjustCash(amount, a.cash.dir)
		if !accepted {
			return a, nil
		}
		a.cash.editing = false
		a.cash.amount.Blur()
		a.cash.amount.SetValue("")
		verb := "Added"
		tail := "to"
		if a.cash.dir == ledger.Spend {
			verb = "Removed"
			tail = "from"
		}
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify(fmt.Sprintf("%s %s %s your balance", verb, cli.FormatMoney(ledger.Clamp(amount)), tail)),
		}
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	a.cash.amount, cmd = a.cash.amount.Update(msg)
	return a, cmd
}

func (a App) renderCashTab(cw int) string {
	t := theme.Active
	s := a.state

	cards := []struct{ Label, Value, Hint string }{
		{"Available cash", cli.FormatMoney(s.Available), "ready to spend or save"},
		{"After card", cli.FormatMoney(s.NetAvailable()), "if the card were paid off"},
	}
	row := components.MetricCardRow(cards, cw)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	var body string
	if a.cash.editing {
		addLbl, spendLbl := "( ) Add", "( ) Spend"
		if a.cash.dir == ledger.Add {
			addLbl = "(•) Add"
		} else {
			spendLbl = "(•) Spend"
		}
		toggle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(addLbl) +
			"   " + lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(spendLbl)
		body = toggle + "\n\n" + a.cash.amount.View() + "\n" +
			dimStyle.Render("[tab] switch  [enter] apply  [esc] cancel")
	} else {
		body = dimStyle.Render("[a] add cash  [s] spend cash")
	}
	form := components.ContentCard("Adjust balance", body, cw)

	hint := components.ContentCard("", dimStyle.Render(
		"Spending more than you have floors the balance at "+cli.FormatMoney(0)+"."), cw)

	return lipgloss.JoinVertical(lipgloss.Left, row, form, hint)
}
