package tui

import (
	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/tui/components"
	"github.com/wrenhale/letssave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type wishState struct {
	adding bool
	focus  int
	inputs [3]textinput.Model // title, price, link
	cursor int
}

func newWishState() wishState {
	w := wishState{}
	w.inputs[0] = newField("What do you want?", 60)
	w.inputs[1] = newField("0", 12)
	w.inputs[2] = newField("https://…", 200)
	return w
}

func (w *wishState) setFocus(idx int) tea.Cmd {
	w.focus = idx
	var cmd tea.Cmd
	for i := range w.inputs {
		if i == idx {
			cmd = w.inputs[i].Focus()
		} else {
			w.inputs[i].Blur()
		}
	}
	return cmd
}

func (a App) browseWish(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.wish.cursor < len(a.state.Wishlist)-1 {
			a.wish.cursor++
		}
		return a, nil, true

	case "k", "up":
		if a.wish.cursor > 0 {
			a.wish.cursor--
		}
		return a, nil, true

	case "a":
		a.wish.adding = true
		for i := range a.wish.inputs {
			a.wish.inputs[i].SetValue("")
		}
		return a, tea.Batch(a.wish.setFocus(0), textinput.Blink), true

	case "d":
		if a.wish.cursor >= len(a.state.Wishlist) {
			return a, nil, true
		}
		next, accepted := a.state.DeleteWish(a.state.Wishlist[a.wish.cursor].ID)
		if !accepted {
			return a, nil, true
		}
		if a.wish.cursor >= len(next.Wishlist) && a.wish.cursor > 0 {
			a.wish.cursor--
		}
		return a, a.commit(next), true

	case "m", "enter":
		if a.wish.cursor >= len(a.state.Wishlist) {
			return a, nil, true
		}
		item := a.state.Wishlist[a.wish.cursor]
		next, accepted := a.state.PromoteWish(item.ID)
		if !accepted {
			return a, nil, true
		}
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify("Created new goal: " + item.Title),
		}
		return a, tea.Batch(cmds...), true
	}

	return a, nil, false
}

func (a App) updateWishInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.wish.adding = false
		a.wish.setFocus(-1)
		return a, nil

	case "tab", "down":
		return a, a.wish.setFocus((a.wish.focus + 1) % 3)

	case "shift+tab", "up":
		return a, a.wish.setFocus((a.wish.focus + 2) % 3)

	case "enter":
		if a.wish.focus < 2 {
			return a, a.wish.setFocus(a.wish.focus + 1)
		}
		price, ok := parseAmount(a.wish.inputs[1].Value())
		if !ok {
			price = 0
		}
		next, accepted := a.state.AddWish(a.wish.inputs[0].Value(), price, a.wish.inputs[2].Value())
		if !accepted {
			return a, nil
		}
		a.wish.adding = false
		a.wish.setFocus(-1)
		return a, a.commit(next)
	}

	var cmd tea.Cmd
	a.wish.inputs[a.wish.focus], cmd = a.wish.inputs[a.wish.focus].Update(msg)
	return a, cmd
}

func (a App) renderWishTab(cw, _ int) string {
	t := theme.Active
	s := a.state

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var total float64
	for _, item := range s.Wishlist {
		total += item.Price
	}
	cards := []struct{ Label, Value, Hint string }{
		{"Wishes", cli.FormatNumber(int64(len(s.Wishlist))), "things you're eyeing"},
		{"Wishlist total", cli.FormatMoney(total), "if you bought it all"},
	}
	row := components.MetricCardRow(cards, cw)

	var body string
	if len(s.Wishlist) == 0 {
		body = dimStyle.Render("Nothing on the wishlist. Press [a] to dream a little.")
	} else {
		for i, item := range s.Wishlist {
			if i > 0 {
				body += "\n"
			}
			marker := "  "
			nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
			if i == a.wish.cursor {
				marker = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("❯ ")
				nameStyle = nameStyle.Bold(true)
			}
			line := marker + nameStyle.Render(item.Title) + "  " +
				mutedStyle.Render(cli.FormatMoney(item.Price))
			if item.Link != "" {
				line += "\n    " + dimStyle.Render(item.Link)
			}
			body += line
		}
	}

	if a.wish.adding {
		labelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		labels := [3]string{"Wish", "Price", "Link (optional)"}
		body += "\n\n" + labelStyle.Render("Add a wish")
		for i := 0; i < 3; i++ {
			ls := mutedStyle
			if a.wish.focus == i {
				ls = labelStyle
			}
			body += "\n" + ls.Render(labels[i]) + "\n" + a.wish.inputs[i].View()
		}
		body += "\n" + dimStyle.Render("[enter] add  [esc] cancel")
	} else {
		body += "\n\n" + dimStyle.Render("[j/k] move  [a]dd  [m]ake it a goal  [d]elete")
	}

	list := components.ContentCard("Wishlist", body, cw)
	return lipgloss.JoinVertical(lipgloss.Left, row, list)
}
