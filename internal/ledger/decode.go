package ledger

import "encoding/json"

// Decode rebuilds a valid State from an arbitrary persisted document.
// Malformed input never fails: a root that isn't a JSON object falls
// back to the default state, and every field inside an object root falls
// back to its own default. The returned state always satisfies the
// ledger invariants (finite, non-negative numbers, non-empty names,
// unique ids).
func Decode(data []byte) State {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return DefaultState()
	}

	var obj map[string]any
	switch v := root.(type) {
	case map[string]any:
		obj = v
	case []any:
		// An array root reads as an object with no usable fields.
		obj = map[string]any{}
	default:
		return DefaultState()
	}

	def := DefaultState()
	return State{
		Available:         asNumber(obj["available"]),
		CreditCardBalance: asNumber(obj["creditCardBalance"]),
		HangoutTemplates:  decodeTemplates(obj["hangoutTemplates"], def.HangoutTemplates),
		Wishlist:          decodeWishlist(obj["wishlist"]),
		Goals:             decodeGoals(obj["goals"], def.Goals),
	}
}

// Encode serializes the state for persistence.
func Encode(s State) ([]byte, error) {
	return json.Marshal(s)
}

func decodeTemplates(v any, fallback []HangoutTemplate) []HangoutTemplate {
	items, ok := v.([]any)
	if !ok {
		return fallback
	}
	out := make([]HangoutTemplate, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		out = append(out, HangoutTemplate{
			ID:       asID(obj["id"]),
			Name:     asString(obj["name"], "Hangout"),
			Train:    asNumber(obj["train"]),
			Meals:    asNumber(obj["meals"]),
			Activity: asNumber(obj["activity"]),
		})
	}
	return out
}

func decodeWishlist(v any) []WishItem {
	items, ok := v.([]any)
	if !ok {
		return []WishItem{}
	}
	out := make([]WishItem, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		out = append(out, WishItem{
			ID:    asID(obj["id"]),
			Title: asString(obj["title"], "Wish"),
			Price: asNumber(obj["price"]),
			Link:  asString(obj["link"], ""),
		})
	}
	return out
}

func decodeGoals(v any, fallback []Goal) []Goal {
	items, ok := v.([]any)
	if !ok {
		return fallback
	}
	out := make([]Goal, 0, len(items))
	for _, item := range items {
		obj, _ := item.(map[string]any)
		out = append(out, Goal{
			ID:     asID(obj["id"]),
			Name:   asString(obj["name"], "Untitled goal"),
			Target: asNumber(obj["target"]),
			Saved:  asNumber(obj["saved"]),
		})
	}
	return out
}

// asNumber coerces a decoded JSON value to a clamped float. Anything
// that isn't a number reads as 0.
func asNumber(v any) float64 {
	f, ok := v.(float64)
	if !ok {
		return 0
	}
	return Clamp(f)
}

// asString coerces a decoded JSON value to a string, substituting the
// fallback for missing, non-string, or empty values.
func asString(v any, fallback string) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return fallback
	}
	return s
}

// asID keeps a usable stored id and mints a fresh one otherwise.
func asID(v any) string {
	s, ok := v.(string)
	if !ok || s == "" {
		return NewID()
	}
	return s
}
