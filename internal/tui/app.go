// Package tui provides the interactive Bubble Tea app for letssave.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/wrenhale/letssave/internal/config"
	"github.com/wrenhale/letssave/internal/ledger"
	"github.com/wrenhale/letssave/internal/store"
	"github.com/wrenhale/letssave/internal/tui/components"
	"github.com/wrenhale/letssave/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// notifTimeoutMsg clears the transient notification when its timer fires.
type notifTimeoutMsg struct {
	seq int
}

// celebrationDoneMsg clears the piggy celebration flag.
type celebrationDoneMsg struct {
	seq int
}

const (
	notifTTL     = 3 * time.Second
	celebrateTTL = 900 * time.Millisecond

	minTerminalWidth = 70
	maxContentWidth  = 150
	minContentHeight = 5
)

// Tab indices, matching components.Tabs order.
const (
	tabOverview = iota
	tabCash
	tabCard
	tabHangout
	tabGoals
	tabWishlist
	tabSettings
)

// App is the root Bubble Tea model. It owns the ledger snapshot and
// persists it through the store after every accepted mutation.
type App struct {
	st    *store.Store
	state ledger.State

	// Set when a persistence write fails; the app quits and the
	// command surfaces it.
	saveErr error

	// True when this run initialized a fresh ledger (no stored doc).
	freshLedger bool

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	// Transient notification + celebration. Sequence numbers let a new
	// notification simply outlive an older timer.
	notification string
	notifSeq     int
	celebrating  bool
	celebrateSeq int

	// Per-tab state
	overview overviewState
	cash     cashState
	card     cardState
	hangout  hangoutState
	goals    goalsState
	wish     wishState
	settings settingsState

	// First-run setup (huh form). The form binds to heap-allocated
	// values so they survive the model being copied every Update.
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool
}

// NewApp creates the TUI app around an open store and a loaded ledger.
func NewApp(st *store.Store, state ledger.State, freshLedger bool) App {
	a := App{
		st:          st,
		state:       state,
		freshLedger: freshLedger,
		needSetup:   !config.Exists(),
		overview:    newOverviewState(),
		cash:        newCashState(),
		card:        newCardState(),
		hangout:     newHangoutState(),
		goals:       newGoalsState(),
		wish:        newWishState(),
		settings:    newSettingsState(),
	}
	if a.needSetup {
		a.setupVals = &setupValues{}
		a.setupForm = newSetupForm(a.setupVals)
	}
	return a
}

// SaveErr reports a fatal persistence failure after the program exits.
func (a App) SaveErr() error {
	return a.saveErr
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	if a.setupForm != nil {
		return a.setupForm.Init()
	}
	return nil
}

// commit replaces the ledger snapshot and persists it. A failed write
// is fatal: the app records the error and quits.
func (a *App) commit(next ledger.State) tea.Cmd {
	a.state = next
	data, err := ledger.Encode(next)
	if err != nil {
		a.saveErr = fmt.Errorf("encoding ledger: %w", err)
		return tea.Quit
	}
	if err := a.st.Save(ledger.StorageKey, data); err != nil {
		a.saveErr = err
		return tea.Quit
	}
	return nil
}

// notify sets the transient notification and schedules its expiry. A
// newer notification overwrites a pending one; the stale timer is
// ignored by sequence number.
func (a *App) notify(msg string) tea.Cmd {
	a.notification = msg
	a.notifSeq++
	seq := a.notifSeq
	return tea.Tick(notifTTL, func(time.Time) tea.Msg {
		return notifTimeoutMsg{seq: seq}
	})
}

// celebrate raises the piggy celebration flag for a short moment.
// Overlapping triggers extend it.
func (a *App) celebrate() tea.Cmd {
	a.celebrating = true
	a.celebrateSeq++
	seq := a.celebrateSeq
	return tea.Tick(celebrateTTL, func(time.Time) tea.Msg {
		return celebrationDoneMsg{seq: seq}
	})
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case notifTimeoutMsg:
		if msg.seq == a.notifSeq {
			a.notification = ""
		}
		return a, nil

	case celebrationDoneMsg:
		if msg.seq == a.celebrateSeq {
			a.celebrating = false
		}
		return a, nil

	case tea.KeyMsg:
		return a.updateKey(msg)
	}

	// First-run setup consumes everything else (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Delete confirmation modal
	if a.goals.deleteForm != nil {
		return a.updateDeleteForm(msg)
	}

	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global: quit
	if key == "ctrl+c" {
		return a, tea.Quit
	}

	// First-run setup wizard intercepts all keys
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	// Goal delete confirmation intercepts all keys
	if a.goals.deleteForm != nil {
		return a.updateDeleteForm(msg)
	}

	// Active text inputs intercept keys on their tab
	switch {
	case a.activeTab == tabOverview && a.overview.depositing:
		return a.updateOverviewInput(msg)
	case a.activeTab == tabCash && a.cash.editing:
		return a.updateCashInput(msg)
	case a.activeTab == tabCard && a.card.editing:
		return a.updateCardInput(msg)
	case a.activeTab == tabHangout && a.hangout.editing:
		return a.updateHangoutInput(msg)
	case a.activeTab == tabGoals && a.goals.mode != goalsBrowsing:
		return a.updateGoalsInput(msg)
	case a.activeTab == tabWishlist && a.wish.adding:
		return a.updateWishInput(msg)
	case a.activeTab == tabSettings && a.settings.editing:
		return a.updateSettingsInput(msg)
	}

	// Help toggle / dismiss
	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	if key == "q" {
		return a, tea.Quit
	}

	// Tab-local browse keys first so they win over nothing; tab
	// switching letters are checked after.
	switch a.activeTab {
	case tabOverview:
		if model, cmd, handled := a.browseOverview(key); handled {
			return model, cmd
		}
	case tabCash:
		if model, cmd, handled := a.browseCash(key); handled {
			return model, cmd
		}
	case tabCard:
		if model, cmd, handled := a.browseCard(key); handled {
			return model, cmd
		}
	case tabHangout:
		if model, cmd, handled := a.browseHangout(key); handled {
			return model, cmd
		}
	case tabGoals:
		if model, cmd, handled := a.browseGoals(key); handled {
			return model, cmd
		}
	case tabWishlist:
		if model, cmd, handled := a.browseWish(key); handled {
			return model, cmd
		}
	case tabSettings:
		if model, cmd, handled := a.browseSettings(key); handled {
			return model, cmd
		}
	}

	// Tab navigation
	switch key {
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}
	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
		}
	}

	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf(
			"\n  Terminal too narrow (%d cols)\n\n  letssave needs at least %d columns.\n",
			a.width, minTerminalWidth,
		)
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n"
	statusBar := components.RenderStatusBar(w, a.notification)

	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabCash:
		content = a.renderCashTab(cw)
	case tabCard:
		content = a.renderCardTab(cw)
	case tabHangout:
		content = a.renderHangoutTab(cw)
	case tabGoals:
		content = a.renderGoalsTab(cw, contentH)
	case tabWishlist:
		content = a.renderWishTab(cw, contentH)
	case tabSettings:
		content = a.renderSettingsTab(cw)
	}

	// Delete confirmation renders as a centered modal over everything.
	if a.goals.deleteForm != nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center,
			a.renderDeleteModal(),
			lipgloss.WithWhitespaceBackground(t.Background))
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(titleStyle.Render("♥ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	navBindings := []struct{ key, desc string }{
		{"o c r h g w x", "Jump to tab"},
		{"← →", "Previous / Next tab"},
		{"j k", "Navigate lists"},
	}
	for _, bind := range navBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions"))
	b.WriteString("\n")
	actionBindings := []struct{ key, desc string }{
		{"Enter", "Open form / Confirm"},
		{"Esc", "Back / Cancel"},
		{"a", "Quick deposit (Overview) / Add wish"},
		{"t l", "Transfer in / Release (Goals)"},
		{"e d", "Edit / Delete goal"},
		{"m", "Make goal from wish"},
		{"p s 1-9", "Promote / Save / Apply template (Hangout)"},
		{"R", "Reset card balance (Card)"},
		{"?", "Toggle help"},
		{"q", "Quit"},
	}
	for _, bind := range actionBindings {
		fmt.Fprintf(&b, "  %s  %s\n",
			keyStyle.Render(fmt.Sprintf("%-14s", bind.key)),
			descStyle.Render(bind.desc))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

// ─── Helpers ────────────────────────────────────────────────────

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}
