// Package ledger defines the budgeting state and its pure mutation operations.
package ledger

import (
	"math"

	"github.com/google/uuid"
)

// StorageKey is the document key the ledger persists under.
const StorageKey = "letsSave.v1"

// State is the full budgeting ledger. Mutators never modify a State in
// place; they return a fresh copy so callers always hold an immutable
// snapshot.
type State struct {
	Available         float64           `json:"available"`
	CreditCardBalance float64           `json:"creditCardBalance"`
	HangoutTemplates  []HangoutTemplate `json:"hangoutTemplates"`
	Wishlist          []WishItem        `json:"wishlist"`
	Goals             []Goal            `json:"goals"`
}

// Goal is a named savings target. Saved may run ahead of Target.
type Goal struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Target float64 `json:"target"`
	Saved  float64 `json:"saved"`
}

// WishItem is a desired purchase or experience with an optional link.
type WishItem struct {
	ID    string  `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Link  string  `json:"link,omitempty"`
}

// HangoutTemplate is a saved preset of three hangout line items.
// Templates are immutable once saved.
type HangoutTemplate struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Train    float64 `json:"train"`
	Meals    float64 `json:"meals"`
	Activity float64 `json:"activity"`
}

// HangoutDraft is the transient three-field hangout budget being planned.
// It is UI state, never persisted.
type HangoutDraft struct {
	Train    float64
	Meals    float64
	Activity float64
}

// Total returns the clamped sum of the draft's line items.
func (d HangoutDraft) Total() float64 {
	return Clamp(d.Train) + Clamp(d.Meals) + Clamp(d.Activity)
}

// DraftFromTemplate copies a template's line items into a fresh draft,
// replacing whatever was there.
func DraftFromTemplate(t HangoutTemplate) HangoutDraft {
	return HangoutDraft{
		Train:    Clamp(t.Train),
		Meals:    Clamp(t.Meals),
		Activity: Clamp(t.Activity),
	}
}

// Clamp coerces a numeric input into the valid ledger range: non-finite
// values become 0, negatives floor at 0.
func Clamp(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Max(0, v)
}

// NewID returns a fresh opaque entity ID.
func NewID() string {
	return uuid.NewString()
}

// DefaultState is the seed ledger used on first run and whenever the
// persisted document is unusable.
func DefaultState() State {
	return State{
		Available:         500,
		CreditCardBalance: 0,
		HangoutTemplates: []HangoutTemplate{
			{ID: "nyc-day", Name: builtinTemplateName, Train: 60, Meals: 45, Activity: 35},
		},
		Wishlist: []WishItem{},
		Goals: []Goal{
			{ID: "japan-trip", Name: "Japan trip", Target: 2000, Saved: 500},
			{ID: "iphone", Name: "New iPhone", Target: 1200, Saved: 0},
		},
	}
}

// builtinTemplateName is the name of the seed hangout template. Goals
// promoted from the hangout draft always take this name.
const builtinTemplateName = "NYC day trip"

// FindGoal returns the goal with the given id, or false.
func (s State) FindGoal(id string) (Goal, bool) {
	for _, g := range s.Goals {
		if g.ID == id {
			return g, true
		}
	}
	return Goal{}, false
}

// FindWish returns the wishlist item with the given id, or false.
func (s State) FindWish(id string) (WishItem, bool) {
	for _, w := range s.Wishlist {
		if w.ID == id {
			return w, true
		}
	}
	return WishItem{}, false
}

// clone deep-copies the state so mutators can edit freely.
func (s State) clone() State {
	out := s
	out.HangoutTemplates = append([]HangoutTemplate(nil), s.HangoutTemplates...)
	out.Wishlist = append([]WishItem(nil), s.Wishlist...)
	out.Goals = append([]Goal(nil), s.Goals...)
	return out
}
