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
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type goalsMode int

const (
	goalsBrowsing goalsMode = iota
	goalsAdding
	goalsTransferring
	goalsEditing
)

// goalDraft stages an in-progress edit of one goal. Drafts are keyed by
// goal id so a cancelled edit never touches the goal itself.
type goalDraft struct {
	inputs [3]textinput.Model // name, target, saved
	focus  int
}

type goalsState struct {
	mode   goalsMode
	cursor int

	addInputs [2]textinput.Model // name, target
	addFocus  int

	release bool
	amount  textinput.Model

	drafts    map[string]*goalDraft
	editingID string

	// deleteConfirmed is heap-allocated so the confirm form's bound
	// pointer survives the model being copied every Update.
	deleteForm      *huh.Form
	deleteID        string
	deleteConfirmed *bool
}

func newGoalsState() goalsState {
	g := goalsState{
		amount: newField("0", 12),
		drafts: make(map[string]*goalDraft),
	}
	g.addInputs[0] = newField("Goal name", 40)
	g.addInputs[1] = newField("0", 12)
	return g
}

func (a App) cursorGoal() (ledger.Goal, bool) {
	if a.goals.cursor < 0 || a.goals.cursor >= len(a.state.Goals) {
		return ledger.Goal{}, false
	}
	return a.state.Goals[a.goals.cursor], true
}

func (g *goalsState) clampCursor(n int) {
	if g.cursor >= n {
		g.cursor = n - 1
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
}

func (a App) browseGoals(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case "j", "down":
		if a.goals.cursor < len(a.state.Goals)-1 {
			a.goals.cursor++
		}
		return a, nil, true

	case "k", "up":
		if a.goals.cursor > 0 {
			a.goals.cursor--
		}
		return a, nil, true

	case "a":
		a.goals.mode = goalsAdding
		a.goals.addInputs[0].SetValue("")
		a.goals.addInputs[1].SetValue("")
		a.goals.addFocus = 0
		a.goals.addInputs[1].Blur()
		return a, tea.Batch(a.goals.addInputs[0].Focus(), textinput.Blink), true

	case "t", "l":
		if _, ok := a.cursorGoal(); !ok {
			return a, nil, true
		}
		a.goals.mode = goalsTransferring
		a.goals.release = key == "l"
		a.goals.amount.SetValue("")
		return a, tea.Batch(a.goals.amount.Focus(), textinput.Blink), true

	case "e":
		goal, ok := a.cursorGoal()
		if !ok {
			return a, nil, true
		}
		a.goals.mode = goalsEditing
		a.goals.editingID = goal.ID
		draft, exists := a.goals.drafts[goal.ID]
		if !exists {
			draft = &goalDraft{}
			draft.inputs[0] = newField("Goal name", 40)
			draft.inputs[1] = newField("0", 12)
			draft.inputs[2] = newField("0", 12)
			draft.inputs[0].SetValue(goal.Name)
			draft.inputs[1].SetValue(strconv.FormatFloat(goal.Target, 'f', -1, 64))
			draft.inputs[2].SetValue(strconv.FormatFloat(goal.Saved, 'f', -1, 64))
			a.goals.drafts[goal.ID] = draft
		}
		draft.focus = 0
		draft.inputs[1].Blur()
		draft.inputs[2].Blur()
		return a, tea.Batch(draft.inputs[0].Focus(), textinput.Blink), true

	case "d":
		goal, ok := a.cursorGoal()
		if !ok {
			return a, nil, true
		}
		confirmed := false
		a.goals.deleteID = goal.ID
		a.goals.deleteConfirmed = &confirmed
		a.goals.deleteForm = huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Delete %q?", goal.Name)).
					Description("Its saved cash goes away with it.").
					Affirmative("Delete").
					Negative("Keep").
					Value(&confirmed),
			),
		)
		return a, a.goals.deleteForm.Init(), true
	}

	return a, nil, false
}

func (a App) updateGoalsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch a.goals.mode {
	case goalsAdding:
		return a.updateGoalsAdd(msg)
	case goalsTransferring:
		return a.updateGoalsTransfer(msg)
	case goalsEditing:
		return a.updateGoalsEdit(msg)
	}
	return a, nil
}

func (a App) updateGoalsAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.goals.mode = goalsBrowsing
		a.goals.addInputs[0].Blur()
		a.goals.addInputs[1].Blur()
		return a, nil

	case "tab", "down", "shift+tab", "up":
		a.goals.addFocus = 1 - a.goals.addFocus
		a.goals.addInputs[1-a.goals.addFocus].Blur()
		return a, a.goals.addInputs[a.goals.addFocus].Focus()

	case "enter":
		if a.goals.addFocus == 0 {
			a.goals.addFocus = 1
			a.goals.addInputs[0].Blur()
			return a, a.goals.addInputs[1].Focus()
		}
		target, ok := parseAmount(a.goals.addInputs[1].Value())
		if !ok {
			target = 0
		}
		next, accepted := a.state.AddGoal(a.goals.addInputs[0].Value(), target)
		if !accepted {
			return a, nil
		}
		a.goals.mode = goalsBrowsing
		a.goals.addInputs[0].Blur()
		a.goals.addInputs[1].Blur()
		created := next.Goals[len(next.Goals)-1]
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify("Created new goal: " + created.Name),
		}
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	a.goals.addInputs[a.goals.addFocus], cmd = a.goals.addInputs[a.goals.addFocus].Update(msg)
	return a, cmd
}

func (a App) updateGoalsTransfer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.goals.mode = goalsBrowsing
		a.goals.amount.Blur()
		return a, nil

	case "enter":
		goal, ok := a.cursorGoal()
		if !ok {
			a.goals.mode = goalsBrowsing
			a.goals.amount.Blur()
			return a, nil
		}
		amount, ok := parseAmount(a.goals.amount.Value())
		if !ok {
			return a, nil
		}

		var (
			next     ledger.State
			accepted bool
			notifMsg string
		)
		if a.goals.release {
			next, _, accepted = a.state.ReleaseFromGoal(goal.ID, amount)
			notifMsg = fmt.Sprintf("Released %s from goal", cli.FormatMoney(ledger.Clamp(amount)))
		} else {
			next, _, accepted = a.state.TransferToGoal(goal.ID, amount)
			notifMsg = fmt.Sprintf("Saved %s to your goal!", cli.FormatMoney(ledger.Clamp(amount)))
		}
		if !accepted {
			return a, nil
		}
		a.goals.mode = goalsBrowsing
		a.goals.amount.Blur()
		a.goals.amount.SetValue("")
		cmds := []tea.Cmd{
			a.commit(next),
			a.notify(notifMsg),
		}
		return a, tea.Batch(cmds...)
	}

	var cmd tea.Cmd
	a.goals.amount, cmd = a.goals.amount.Update(msg)
	return a, cmd
}

func (a App) updateGoalsEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	draft, ok := a.goals.drafts[a.goals.editingID]
	if !ok {
		a.goals.mode = goalsBrowsing
		return a, nil
	}

	switch msg.String() {
	case "esc":
		delete(a.goals.drafts, a.goals.editingID)
		a.goals.mode = goalsBrowsing
		a.goals.editingID = ""
		return a, nil

	case "tab", "down":
		draft.inputs[draft.focus].Blur()
		draft.focus = (draft.focus + 1) % 3
		return a, draft.inputs[draft.focus].Focus()

	case "shift+tab", "up":
		draft.inputs[draft.focus].Blur()
		draft.focus = (draft.focus + 2) % 3
		return a, draft.inputs[draft.focus].Focus()

	case "enter":
		if draft.focus < 2 {
			draft.inputs[draft.focus].Blur()
			draft.focus++
			return a, draft.inputs[draft.focus].Focus()
		}
		// Commit. Unparseable numbers keep the draft open.
		target, okT := parseAmount(draft.inputs[1].Value())
		saved, okS := parseAmount(draft.inputs[2].Value())
		if !okT || !okS {
			return a, nil
		}
		next, accepted := a.state.EditGoal(a.goals.editingID, draft.inputs[0].Value(), target, saved)
		if !accepted {
			return a, nil
		}
		delete(a.goals.drafts, a.goals.editingID)
		a.goals.mode = goalsBrowsing
		a.goals.editingID = ""
		return a, a.commit(next)
	}

	var cmd tea.Cmd
	draft.inputs[draft.focus], cmd = draft.inputs[draft.focus].Update(msg)
	return a, cmd
}

func (a App) updateDeleteForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		a.goals.deleteForm = nil
		a.goals.deleteID = ""
		return a, nil
	}

	form, cmd := a.goals.deleteForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.goals.deleteForm = f
	}

	if a.goals.deleteForm.State != huh.StateCompleted {
		return a, cmd
	}

	id := a.goals.deleteID
	confirmed := a.goals.deleteConfirmed != nil && *a.goals.deleteConfirmed
	a.goals.deleteForm = nil
	a.goals.deleteID = ""
	a.goals.deleteConfirmed = nil

	if !confirmed {
		return a, cmd
	}

	next, accepted := a.state.DeleteGoal(id)
	if !accepted {
		return a, cmd
	}
	delete(a.goals.drafts, id)
	a.goals.clampCursor(len(next.Goals))
	cmds := []tea.Cmd{a.commit(next)}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

func (a App) renderDeleteModal() string {
	t := theme.Active
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Red).
		Padding(1, 3)
	return style.Render(a.goals.deleteForm.View())
}

func (a App) renderGoalsTab(cw, _ int) string {
	t := theme.Active
	s := a.state
	totals := s.Totals()

	cards := []struct{ Label, Value, Hint string }{
		{"Total saved", cli.FormatMoney(totals.Saved), "tucked into goals"},
		{"Total target", cli.FormatMoney(totals.Target), "what it all adds up to"},
		{"Left to save", cli.FormatMoney(s.LeftToSave()), "still to go"},
	}
	row := components.MetricCardRow(cards, cw)

	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var body string
	if len(s.Goals) == 0 {
		body = dimStyle.Render("No goals yet. Press [a] to create one.")
	} else {
		for i, g := range s.Goals {
			if i > 0 {
				body += "\n\n"
			}
			body += a.renderGoalRow(g, i, cw)
		}
	}

	if a.goals.mode == goalsAdding {
		labelStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
		body += "\n\n" + labelStyle.Render("New goal") + "\n" +
			a.goals.addInputs[0].View() + "\n" +
			mutedStyle.Render("Target") + "\n" +
			a.goals.addInputs[1].View() + "\n" +
			dimStyle.Render("[enter] create  [esc] cancel")
	} else {
		body += "\n\n" + dimStyle.Render("[j/k] move  [a]dd  [t]ransfer in  re[l]ease  [e]dit  [d]elete")
	}

	list := components.ContentCard("Your goals", body, cw)
	return lipgloss.JoinVertical(lipgloss.Left, row, list)
}

func (a App) renderGoalRow(g ledger.Goal, idx, cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)

	selected := idx == a.goals.cursor
	marker := "  "
	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	if selected {
		marker = lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("❯ ")
		nameStyle = nameStyle.Bold(true)
	}

	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	status := cli.FormatMoney(g.Saved) + " of " + cli.FormatMoney(g.Target)
	if g.Ahead() > 0 {
		status += "  " + lipgloss.NewStyle().Foreground(t.Green).Render(
			cli.FormatMoney(g.Ahead())+" ahead")
	} else if g.Remaining() > 0 {
		status += "  " + mutedStyle.Render(cli.FormatMoney(g.Remaining())+" to go")
	}

	out := marker + nameStyle.Render(g.Name) + "  " + mutedStyle.Render(status) + "\n" +
		"  " + components.GoalMeter(g.Progress(), inner-8)

	if !selected {
		return out
	}

	switch a.goals.mode {
	case goalsTransferring:
		action := "Save it"
		if a.goals.release {
			action = "Release"
		}
		out += "\n  " + lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render(action) + " " +
			a.goals.amount.View() + "\n  " +
			dimStyle.Render("[enter] apply  [esc] cancel")

	case goalsEditing:
		if draft, ok := a.goals.drafts[g.ID]; ok && a.goals.editingID == g.ID {
			labels := [3]string{"Name", "Target", "Saved"}
			for i := 0; i < 3; i++ {
				ls := mutedStyle
				if draft.focus == i {
					ls = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
				}
				out += "\n  " + ls.Render(labels[i]) + "\n  " + draft.inputs[i].View()
			}
			out += "\n  " + dimStyle.Render("[enter] save  [esc] discard")
		}
	}

	return out
}
