package ledger

import (
	"reflect"
	"testing"
)

func TestDecodeRoundTrip(t *testing.T) {
	s := State{
		Available:         350,
		CreditCardBalance: 75,
		HangoutTemplates: []HangoutTemplate{
			{ID: "t1", Name: "Beach day", Train: 20, Meals: 30, Activity: 10},
		},
		Wishlist: []WishItem{
			{ID: "w1", Title: "Camera", Price: 450, Link: "https://example.com"},
		},
		Goals: []Goal{
			{ID: "g1", Name: "Trip", Target: 1000, Saved: 200},
		},
	}

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got := Decode(data)
	if !reflect.DeepEqual(got, s) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, s)
	}
}

func TestDecodeGarbageFallsBackToDefault(t *testing.T) {
	def := DefaultState()
	for _, in := range []string{"null", `"hello"`, "42", "true", "{not json"} {
		got := Decode([]byte(in))
		if !reflect.DeepEqual(got, def) {
			t.Errorf("Decode(%q) != default state:\ngot %+v", in, got)
		}
	}
}

func TestDecodeEmptyObjectUsesFieldDefaults(t *testing.T) {
	got := Decode([]byte("{}"))

	// Missing numbers read as zero, missing lists fall back per field.
	if got.Available != 0 || got.CreditCardBalance != 0 {
		t.Fatalf("numbers = %v/%v, want 0/0", got.Available, got.CreditCardBalance)
	}
	def := DefaultState()
	if !reflect.DeepEqual(got.HangoutTemplates, def.HangoutTemplates) {
		t.Fatalf("templates = %+v, want defaults", got.HangoutTemplates)
	}
	if !reflect.DeepEqual(got.Goals, def.Goals) {
		t.Fatalf("goals = %+v, want defaults", got.Goals)
	}
	if len(got.Wishlist) != 0 {
		t.Fatalf("wishlist = %+v, want empty", got.Wishlist)
	}
}

func TestDecodeArrayRootBehavesLikeEmptyObject(t *testing.T) {
	if !reflect.DeepEqual(Decode([]byte("[1,2,3]")), Decode([]byte("{}"))) {
		t.Fatal("array root should decode like an empty object")
	}
}

func TestDecodeWrongTypedFields(t *testing.T) {
	got := Decode([]byte(`{
		"available": "lots",
		"creditCardBalance": -50,
		"goals": "not a list",
		"wishlist": {"oops": true},
		"hangoutTemplates": 7
	}`))

	if got.Available != 0 {
		t.Errorf("available = %v, want 0 for non-numeric input", got.Available)
	}
	if got.CreditCardBalance != 0 {
		t.Errorf("card balance = %v, want negative clamped to 0", got.CreditCardBalance)
	}
	def := DefaultState()
	if !reflect.DeepEqual(got.Goals, def.Goals) {
		t.Errorf("goals = %+v, want defaults for non-list", got.Goals)
	}
	if len(got.Wishlist) != 0 {
		t.Errorf("wishlist = %+v, want empty for non-list", got.Wishlist)
	}
	if !reflect.DeepEqual(got.HangoutTemplates, def.HangoutTemplates) {
		t.Errorf("templates = %+v, want defaults for non-list", got.HangoutTemplates)
	}
}

func TestDecodePartialItems(t *testing.T) {
	got := Decode([]byte(`{
		"goals": [{"target": 500}, {"id": "g2", "name": "Bike", "target": 300, "saved": -20}],
		"wishlist": [{"price": 80}, 12],
		"hangoutTemplates": [{"train": 15}]
	}`))

	if len(got.Goals) != 2 {
		t.Fatalf("goals = %d, want 2", len(got.Goals))
	}
	if got.Goals[0].Name != "Untitled goal" || got.Goals[0].Target != 500 {
		t.Errorf("goal fallback = %+v", got.Goals[0])
	}
	if got.Goals[0].ID == "" {
		t.Error("missing goal id not regenerated")
	}
	if got.Goals[1].Saved != 0 {
		t.Errorf("negative saved = %v, want clamped 0", got.Goals[1].Saved)
	}

	if len(got.Wishlist) != 2 {
		t.Fatalf("wishlist = %d, want 2", len(got.Wishlist))
	}
	if got.Wishlist[0].Title != "Wish" || got.Wishlist[0].Price != 80 {
		t.Errorf("wish fallback = %+v", got.Wishlist[0])
	}
	// A non-object list entry still yields a defaulted item.
	if got.Wishlist[1].Title != "Wish" || got.Wishlist[1].Price != 0 {
		t.Errorf("non-object wish = %+v", got.Wishlist[1])
	}

	if got.HangoutTemplates[0].Name != "Hangout" || got.HangoutTemplates[0].Train != 15 {
		t.Errorf("template fallback = %+v", got.HangoutTemplates[0])
	}
}

func TestTotals(t *testing.T) {
	s := State{
		Available:         500,
		CreditCardBalance: 200,
		Goals: []Goal{
			{Target: 1000, Saved: 600},
			{Target: 500, Saved: 700},
		},
	}

	tot := s.Totals()
	if tot.Saved != 1300 || tot.Target != 1500 {
		t.Fatalf("totals = %+v, want 1300/1500", tot)
	}
	if s.LeftToSave() != 200 {
		t.Fatalf("left to save = %v, want 200", s.LeftToSave())
	}
	if s.NetAvailable() != 300 {
		t.Fatalf("net available = %v, want 300", s.NetAvailable())
	}
}

func TestGoalProgress(t *testing.T) {
	cases := []struct {
		goal Goal
		want float64
	}{
		{Goal{Target: 1000, Saved: 500}, 0.5},
		{Goal{Target: 1000, Saved: 1500}, 1},
		{Goal{Target: 0, Saved: 100}, 0},
	}
	for _, tc := range cases {
		if got := tc.goal.Progress(); got != tc.want {
			t.Errorf("Progress(%+v) = %v, want %v", tc.goal, got, tc.want)
		}
	}

	ahead := Goal{Target: 100, Saved: 150}
	if ahead.Ahead() != 50 || ahead.Remaining() != 0 {
		t.Errorf("ahead goal: Ahead=%v Remaining=%v", ahead.Ahead(), ahead.Remaining())
	}
}
