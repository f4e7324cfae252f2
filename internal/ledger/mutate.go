package ledger

import (
	"math"
	"strings"
)

// AdjustDirection selects whether a cash adjustment adds or spends.
type AdjustDirection int

// Cash adjustment directions.
const (
	Add AdjustDirection = iota
	Spend
)

// AdjustCash adds income or logs a spend against available cash. A spend
// cannot take available below zero. Returns false (state unchanged) when
// the amount clamps to zero.
func (s State) AdjustCash(amount float64, dir AdjustDirection) (State, bool) {
	amount = Clamp(amount)
	if amount == 0 {
		return s, false
	}
	out := s.clone()
	if dir == Spend {
		amount = -amount
	}
	out.Available = Clamp(out.Available + amount)
	return out, true
}

// QuickDeposit adds the amount straight into available cash. This is the
// coin-drop path; unlike AdjustCash it has no spend direction.
func (s State) QuickDeposit(amount float64) (State, bool) {
	amount = Clamp(amount)
	if amount == 0 {
		return s, false
	}
	out := s.clone()
	out.Available += amount
	return out, true
}

// AddGoal appends a new goal with nothing saved yet. Rejects an empty
// name or a target that clamps to zero.
func (s State) AddGoal(name string, target float64) (State, bool) {
	name = strings.TrimSpace(name)
	target = Clamp(target)
	if name == "" || target == 0 {
		return s, false
	}
	out := s.clone()
	out.Goals = append(out.Goals, Goal{
		ID:     NewID(),
		Name:   name,
		Target: target,
		Saved:  0,
	})
	return out, true
}

// EditGoal replaces a goal's name, target, and saved amount in one step.
// The whole edit is rejected if the name trims empty or the target clamps
// to zero.
func (s State) EditGoal(id, name string, target, saved float64) (State, bool) {
	name = strings.TrimSpace(name)
	target = Clamp(target)
	saved = Clamp(saved)
	if name == "" || target == 0 {
		return s, false
	}
	out := s.clone()
	for i, g := range out.Goals {
		if g.ID == id {
			out.Goals[i].Name = name
			out.Goals[i].Target = target
			out.Goals[i].Saved = saved
			return out, true
		}
	}
	return s, false
}

// DeleteGoal removes the goal with the given id. Confirmation is the
// caller's job; this is the committed removal.
func (s State) DeleteGoal(id string) (State, bool) {
	out := s.clone()
	for i, g := range out.Goals {
		if g.ID == id {
			out.Goals = append(out.Goals[:i], out.Goals[i+1:]...)
			return out, true
		}
	}
	return s, false
}

// ChargeCard increases the credit card balance. There is no ceiling.
func (s State) ChargeCard(amount float64) (State, bool) {
	amount = Clamp(amount)
	if amount == 0 {
		return s, false
	}
	out := s.clone()
	out.CreditCardBalance += amount
	return out, true
}

// PayCard pays down the card from available cash. The effective payment
// is min(amount, available, owed): paying more than you have or more
// than you owe silently truncates, it never errors. Returns the payment
// actually made.
func (s State) PayCard(amount float64) (State, float64, bool) {
	amount = Clamp(amount)
	if amount == 0 {
		return s, 0, false
	}
	payment := math.Min(amount, math.Min(s.Available, s.CreditCardBalance))
	out := s.clone()
	out.Available -= payment
	out.CreditCardBalance -= payment
	return out, payment, true
}

// ResetCard writes the card balance off to zero without touching
// available cash. No-op when nothing is owed.
func (s State) ResetCard() (State, bool) {
	if s.CreditCardBalance == 0 {
		return s, false
	}
	out := s.clone()
	out.CreditCardBalance = 0
	return out, true
}

// TransferToGoal moves cash into a goal's saved amount, capped at what is
// available. Returns the amount actually moved.
func (s State) TransferToGoal(id string, amount float64) (State, float64, bool) {
	amount = Clamp(amount)
	if amount == 0 || s.Available == 0 {
		return s, 0, false
	}
	out := s.clone()
	for i, g := range out.Goals {
		if g.ID == id {
			move := math.Min(amount, out.Available)
			out.Available -= move
			out.Goals[i].Saved += move
			return out, move, true
		}
	}
	return s, 0, false
}

// ReleaseFromGoal moves saved money back into available cash, capped at
// what the goal holds. Returns the amount actually moved.
func (s State) ReleaseFromGoal(id string, amount float64) (State, float64, bool) {
	amount = Clamp(amount)
	if amount == 0 {
		return s, 0, false
	}
	out := s.clone()
	for i, g := range out.Goals {
		if g.ID == id {
			if g.Saved == 0 {
				return s, 0, false
			}
			move := math.Min(amount, g.Saved)
			out.Available += move
			out.Goals[i].Saved -= move
			return out, move, true
		}
	}
	return s, 0, false
}

// AddWish appends a wishlist item. Rejects an empty title or a price
// that clamps to zero.
func (s State) AddWish(title string, price float64, link string) (State, bool) {
	title = strings.TrimSpace(title)
	price = Clamp(price)
	if title == "" || price == 0 {
		return s, false
	}
	out := s.clone()
	out.Wishlist = append(out.Wishlist, WishItem{
		ID:    NewID(),
		Title: title,
		Price: price,
		Link:  strings.TrimSpace(link),
	})
	return out, true
}

// DeleteWish removes a wishlist item by id.
func (s State) DeleteWish(id string) (State, bool) {
	out := s.clone()
	for i, w := range out.Wishlist {
		if w.ID == id {
			out.Wishlist = append(out.Wishlist[:i], out.Wishlist[i+1:]...)
			return out, true
		}
	}
	return s, false
}

// PromoteWish creates a goal from a wishlist item: target is the price,
// nothing saved yet. The wish itself stays on the list; this is a copy,
// not a move.
func (s State) PromoteWish(id string) (State, bool) {
	item, ok := s.FindWish(id)
	if !ok || item.Price == 0 {
		return s, false
	}
	out := s.clone()
	out.Goals = append(out.Goals, Goal{
		ID:     NewID(),
		Name:   item.Title,
		Target: item.Price,
		Saved:  0,
	})
	return out, true
}

// PromoteHangout creates a goal from the hangout draft's total. The goal
// takes the built-in template's name; only the target varies with the
// draft.
func (s State) PromoteHangout(draft HangoutDraft) (State, bool) {
	total := draft.Total()
	if total == 0 {
		return s, false
	}
	out := s.clone()
	out.Goals = append(out.Goals, Goal{
		ID:     NewID(),
		Name:   builtinTemplateName,
		Target: total,
		Saved:  0,
	})
	return out, true
}

// SaveTemplate stores the draft as a reusable hangout template. Rejects
// an empty name or a draft whose total clamps to zero.
func (s State) SaveTemplate(name string, draft HangoutDraft) (State, bool) {
	name = strings.TrimSpace(name)
	if name == "" || draft.Total() == 0 {
		return s, false
	}
	out := s.clone()
	out.HangoutTemplates = append(out.HangoutTemplates, HangoutTemplate{
		ID:       NewID(),
		Name:     name,
		Train:    Clamp(draft.Train),
		Meals:    Clamp(draft.Meals),
		Activity: Clamp(draft.Activity),
	})
	return out, true
}
