package tui

import (
	"path/filepath"
	"testing"

	"github.com/wrenhale/letssave/internal/config"
	"github.com/wrenhale/letssave/internal/ledger"
	"github.com/wrenhale/letssave/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T) App {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if err := config.Save(config.DefaultConfig()); err != nil {
		t.Fatalf("saving config: %v", err)
	}

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	a := NewApp(st, ledger.DefaultState(), false)
	m, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m.(App)
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		m, _ := a.Update(keyMsg(k))
		a = m.(App)
	}
	return a
}

func TestTabNavigation(t *testing.T) {
	a := newTestApp(t)

	cases := []struct {
		key  string
		want int
	}{
		{"c", tabCash},
		{"r", tabCard},
		{"h", tabHangout},
		{"g", tabGoals},
		{"w", tabWishlist},
		{"x", tabSettings},
		{"o", tabOverview},
	}
	for _, tc := range cases {
		a = press(t, a, tc.key)
		if a.activeTab != tc.want {
			t.Fatalf("key %q: activeTab = %d, want %d", tc.key, a.activeTab, tc.want)
		}
	}

	a = press(t, a, "left")
	if a.activeTab != tabSettings {
		t.Fatalf("left from Overview should wrap to Settings, got %d", a.activeTab)
	}
	a = press(t, a, "right")
	if a.activeTab != tabOverview {
		t.Fatalf("right from Settings should wrap to Overview, got %d", a.activeTab)
	}
}

func TestQuickDeposit(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "a", "25", "enter")

	if a.state.Available != 525 {
		t.Fatalf("available = %v, want 525", a.state.Available)
	}
	if a.notification != "Added $25 to available cash" {
		t.Fatalf("notification = %q", a.notification)
	}
	if !a.celebrating {
		t.Fatal("expected celebration after deposit")
	}
	if a.overview.depositing {
		t.Fatal("deposit form should close after submit")
	}
}

func TestQuickDepositRejectsJunk(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "a", "pig", "enter")

	if a.state.Available != 500 {
		t.Fatalf("available = %v, want 500", a.state.Available)
	}
	if !a.overview.depositing {
		t.Fatal("form should stay open on junk input")
	}
}

func TestNotificationExpiry(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "a", "10", "enter")

	// A stale timer must not clear a newer notification.
	staleSeq := a.notifSeq
	a = press(t, a, "a", "20", "enter")
	m, _ := a.Update(notifTimeoutMsg{seq: staleSeq})
	a = m.(App)
	if a.notification != "Added $20 to available cash" {
		t.Fatalf("stale timeout cleared notification, got %q", a.notification)
	}

	m, _ = a.Update(notifTimeoutMsg{seq: a.notifSeq})
	a = m.(App)
	if a.notification != "" {
		t.Fatalf("notification not cleared, got %q", a.notification)
	}
}

func TestCelebrationExpiry(t *testing.T) {
	a := newTestApp(t)
	a = press(t, a, "a", "10", "enter")

	m, _ := a.Update(celebrationDoneMsg{seq: a.celebrateSeq})
	a = m.(App)
	if a.celebrating {
		t.Fatal("celebration should clear when its timer fires")
	}
}

func TestCashSpend(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "c", "s", "100", "enter")

	if a.state.Available != 400 {
		t.Fatalf("available = %v, want 400", a.state.Available)
	}
	if a.notification != "Removed $100 from your balance" {
		t.Fatalf("notification = %q", a.notification)
	}
}

func TestCashDirectionToggle(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "c", "s", "tab", "50", "enter")

	if a.state.Available != 550 {
		t.Fatalf("tab should flip spend back to add, available = %v", a.state.Available)
	}
}

func TestCardChargeAndPay(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "r", "enter", "200", "enter")
	if a.state.CreditCardBalance != 200 {
		t.Fatalf("card balance = %v, want 200", a.state.CreditCardBalance)
	}

	a = press(t, a, "p", "500", "enter")
	if a.state.CreditCardBalance != 0 {
		t.Fatalf("card balance = %v, want 0", a.state.CreditCardBalance)
	}
	if a.state.Available != 300 {
		t.Fatalf("available = %v, want 300", a.state.Available)
	}
	if a.notification != "Paid $200 to credit card" {
		t.Fatalf("notification = %q", a.notification)
	}
}

func TestCardReset(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "r", "enter", "150", "enter", "R")

	if a.state.CreditCardBalance != 0 {
		t.Fatalf("card balance = %v, want 0", a.state.CreditCardBalance)
	}
	if a.state.Available != 500 {
		t.Fatalf("reset must not touch available, got %v", a.state.Available)
	}
	if a.notification != "Credit card balance reset from $150" {
		t.Fatalf("notification = %q", a.notification)
	}
}

func TestPersistenceAcrossMutations(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "a", "75", "enter")

	data, found, err := a.st.Load(ledger.StorageKey)
	if err != nil || !found {
		t.Fatalf("ledger not persisted: found=%v err=%v", found, err)
	}
	got := ledger.Decode(data)
	if got.Available != 575 {
		t.Fatalf("persisted available = %v, want 575", got.Available)
	}
}

func TestHelpOverlay(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "?")
	if !a.showHelp {
		t.Fatal("help should open")
	}
	a = press(t, a, "g")
	if a.showHelp {
		t.Fatal("any key should dismiss help")
	}
	if a.activeTab != tabOverview {
		t.Fatal("key dismissing help must not also switch tabs")
	}
}

func TestFirstRunShowsSetup(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	a := NewApp(st, ledger.DefaultState(), true)
	if !a.needSetup {
		t.Fatal("missing config should trigger first-run setup")
	}
	if cmd := a.Init(); cmd == nil {
		t.Fatal("Init should start the setup form")
	}
}
