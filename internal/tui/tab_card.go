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

type cardMode int

const (
	cardCharge cardMode = iota
	cardPay
)

type cardState struct {
	editing bool
	mode    cardMode
	amount  textinput.Model
}

func newCardState() cardState {
	return cardState{
		mode:   cardCharge,
		amount: newField("0", 12),
	}
}

func (a App) browseCard(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "enter":
		a.card.mode = cardCharge
	case "p":
		a.card.mode = cardPay
	case "R":
		next, accepted := a.state.ResetCard()
		if !accepted {
			return a, nil, true
		}
		owed := a.state.CreditCardBalance
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify(fmt.Sprintf("Credit card balance reset from %s", cli.FormatMoney(owed))),
		}
		return a, tea.Batch(cmds...), true
	default:
		return a, nil, false
	}
	a.card.editing = true
	a.card.amount.SetValue("")
	a.card.amount.Focus()
	return a, textinput.Blink, true
}

func (a App) updateCardInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.card.editing = false
		a.card.amount.Blur()
		return a, nil

	case "tab":
		if a.card.mode == cardCharge {
			a.card.mode = cardPay
		} else {
			a.card.mode = cardCharge
		}
		return a, nil

	case "enter":
		amount, ok := parseAmount(a.card.amount.Value())
		if !ok {
			return a, nil
		}

		var (
			next     ledger.State
			notifMsg string
			accepted bool
		)
		if a.card.mode == cardCharge {
			next, accepted = a.state.ChargeCard(amount)
			notifMsg = fmt.Sprintf("Added %s to card balance", cli.FormatMoney(amount))
		} else {
			var paid float64
			next, paid, accepted = a.state.PayCard(amount)
			notifMsg = fmt.Sprintf("Paid %s to credit card", cli.FormatMoney(paid))
		}
		if !accepted {
			return a, nil
		}
		a.card.editing = false
		a.card.amount.Blur()
		a.card.amount.SetValue("")
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify(notifMsg),
		}
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	a.card.amount, cmd = a.card.amount.Update(msg)
	return a, cmd
}

func (a App) renderCardTab(cw int) string {
	t := theme.Active
	s := a.state

	owedHint := "nothing owed, nice"
	if s.CreditCardBalance > 0 {
		owedHint = "pay it down when you can"
	}
	cards := []struct{ Label, Value, Hint string }{
		{"Card balance", cli.FormatMoney(s.CreditCardBalance), owedHint},
		{"Available cash", cli.FormatMoney(s.Available), "what a payment draws from"},
	}
	row := components.MetricCardRow(cards, cw)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	var body string
	if a.card.editing {
		chargeLbl, payLbl := "( ) Charge", "( ) Pay"
		if a.card.mode == cardCharge {
			chargeLbl = "(•) Charge"
		} else {
			payLbl = "(•) Pay"
		}
		toggle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(chargeLbl) +
			"   " + lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(payLbl)
		body = toggle + "\n\n" + a.card.amount.View() + "\n" +
			dimStyle.Render("[tab] switch  [enter] apply  [esc] cancel")
	} else {
		body = dimStyle.Render("[enter] charge  [p] pay  [R] reset balance")
	}
	form := components.ContentCard("Credit card", body, cw)

	note := components.ContentCard("", dimStyle.Render(
		"Payments never exceed what you owe or what you have on hand."), cw)

	return lipgloss.JoinVertical(lipgloss.Left, row, form, note)
}
