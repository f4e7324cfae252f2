package tui

import (
	"fmt"
	"strconv"

	"github.com/wrenhale/letssave/internal/cli"
	"github.com/wrenhale/letssave/internal/ledger"
	"github.com/wrenhale/letssave/internal/tui/components"
	"github.com/wrenhale/letssave/internal/tui/theme"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Hangout draft field order: train, meals, activity, template name.
const (
	hangoutTrain = iota
	hangoutMeals
	hangoutActivity
	hangoutName
	hangoutFieldCount
)

type hangoutState struct {
	editing bool
	focus   int
	inputs  [hangoutFieldCount]textinput.Model
}

func newHangoutState() hangoutState {
	h := hangoutState{}
	h.inputs[hangoutTrain] = newField("0", 12)
	h.inputs[hangoutMeals] = newField("0", 12)
	h.inputs[hangoutActivity] = newField("0", 12)
	h.inputs[hangoutName] = newField("My hangout", 40)
	return h
}

// draft reads the current inputs into a hangout draft. Blank or junk
// fields read as zero.
func (h hangoutState) draft() ledger.HangoutDraft {
	get := func(idx int) float64 {
		v, ok := parseAmount(h.inputs[idx].Value())
		if !ok {
			return 0
		}
		return v
	}
	return ledger.HangoutDraft{
		Train:    get(hangoutTrain),
		Meals:    get(hangoutMeals),
		Activity: get(hangoutActivity),
	}
}

func (h *hangoutState) applyTemplate(t ledger.HangoutTemplate) {
	d := ledger.DraftFromTemplate(t)
	h.inputs[hangoutTrain].SetValue(strconv.FormatFloat(d.Train, 'f', -1, 64))
	h.inputs[hangoutMeals].SetValue(strconv.FormatFloat(d.Meals, 'f', -1, 64))
	h.inputs[hangoutActivity].SetValue(strconv.FormatFloat(d.Activity, 'f', -1, 64))
}

func (h *hangoutState) setFocus(idx int) tea.Cmd {
	h.focus = idx
	var cmd tea.Cmd
	for i := range h.inputs {
		if i == idx {
			cmd = h.inputs[i].Focus()
		} else {
			h.inputs[i].Blur()
		}
	}
	return cmd
}

func (a App) browseHangout(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "enter", "e":
		a.hangout.editing = true
		cmd := a.hangout.setFocus(hangoutTrain)
		return a, tea.Batch(cmd, textinput.Blink), true

	case "p":
		next, accepted := a.state.PromoteHangout(a.hangout.draft())
		if !accepted {
			return a, nil, true
		}
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify("Created a piggybank for your hangout"),
		}
		return a, tea.Batch(cmds...), true

	case "s":
		next, accepted := a.state.SaveTemplate(a.hangout.inputs[hangoutName].Value(), a.hangout.draft())
		if !accepted {
			return a, nil, true
		}
		a.hangout.inputs[hangoutName].SetValue("")
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify("Saved hangout template"),
		}
		return a, tea.Batch(cmds...), true
	}

	// Digit keys apply the nth saved template.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(a.state.HangoutTemplates) {
			a.hangout.applyTemplate(a.state.HangoutTemplates[idx])
		}
		return a, nil, true
	}

	return a, nil, false
}

func (a App) updateHangoutInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.hangout.editing = false
		a.hangout.setFocus(-1)
		return a, nil

	case "tab", "down", "enter":
		if msg.String() == "enter" && a.hangout.focus == hangoutFieldCount-1 {
			a.hangout.editing = false
			a.hangout.setFocus(-1)
			return a, nil
		}
		return a, a.hangout.setFocus((a.hangout.focus + 1) % hangoutFieldCount)

	case "shift+tab", "up":
		return a, a.hangout.setFocus((a.hangout.focus - 1 + hangoutFieldCount) % hangoutFieldCount)
	}

	var cmd tea.Cmd
	a.hangout.inputs[a.hangout.focus], cmd = a.hangout.inputs[a.hangout.focus].Update(msg)
	return a, cmd
}

func (a App) renderHangoutTab(cw int) string {
	t := theme.Active
	h := a.hangout

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	focusLabel := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	labels := [hangoutFieldCount]string{"Train fare", "Meals", "Activity", "Template name"}
	var body string
	for i := 0; i < hangoutFieldCount; i++ {
		ls := labelStyle
		if h.editing && h.focus == i {
			ls = focusLabel
		}
		body += ls.Render(labels[i]) + "\n" + h.inputs[i].View() + "\n"
	}

	totalStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	body += "\n" + labelStyle.Render("Day total: ") + totalStyle.Render(cli.FormatMoney(h.draft().Total()))

	if h.editing {
		body += "\n" + dimStyle.Render("[tab] next field  [esc] done")
	} else {
		body += "\n" + dimStyle.Render("[e]dit  [p]iggybank it  [s]ave template  [1-9] apply template")
	}
	form := components.ContentCard("Plan a hangout", body, cw)

	var tmplBody string
	if len(a.state.HangoutTemplates) == 0 {
		tmplBody = dimStyle.Render("No templates saved yet.")
	} else {
		nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
		numStyle := lipgloss.NewStyle().Foreground(t.Cyan).Bold(true)
		for i, tmpl := range a.state.HangoutTemplates {
			if i > 0 {
				tmplBody += "\n"
			}
			total := ledger.DraftFromTemplate(tmpl).Total()
			tmplBody += fmt.Sprintf("%s %s  %s",
				numStyle.Render(fmt.Sprintf("[%d]", i+1)),
				nameStyle.Render(tmpl.Name),
				labelStyle.Render(cli.FormatMoney(total)))
		}
	}
	templates := components.ContentCard("Saved templates", tmplBody, cw)

	return lipgloss.JoinVertical(lipgloss.Left, form, templates)
}
