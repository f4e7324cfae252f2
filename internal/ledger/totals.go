package ledger

import "math"

// Totals is the aggregate saved/target across all goals.
type Totals struct {
	Saved  float64
	Target float64
}

// Totals sums saved and target across the goal list.
func (s State) Totals() Totals {
	var t Totals
	for _, g := range s.Goals {
		t.Saved += g.Saved
		t.Target += g.Target
	}
	return t
}

// LeftToSave is the remaining distance to all targets combined, floored
// at zero when the goals are collectively ahead.
func (s State) LeftToSave() float64 {
	t := s.Totals()
	return math.Max(t.Target-t.Saved, 0)
}

// NetAvailable is available cash minus the card balance owed. It can go
// negative.
func (s State) NetAvailable() float64 {
	return s.Available - s.CreditCardBalance
}

// Progress is how far along the goal is, 0 to 1, capped at 1 even when
// saved runs ahead of the target.
func (g Goal) Progress() float64 {
	if g.Target == 0 {
		return 0
	}
	return math.Min(1, g.Saved/g.Target)
}

// Remaining is what's left to hit the target, floored at zero.
func (g Goal) Remaining() float64 {
	return math.Max(g.Target-g.Saved, 0)
}

// Ahead is how far the goal has saved past its target, zero when it
// hasn't.
func (g Goal) Ahead() float64 {
	return math.Max(g.Saved-g.Target, 0)
}
