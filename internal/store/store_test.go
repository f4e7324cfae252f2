package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "letssave.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoadMissingKey(t *testing.T) {
	s := openTestStore(t)

	data, ok, err := s.Load("letsSave.v1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok || data != nil {
		t.Fatalf("missing key: ok=%v data=%q, want absent", ok, data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	doc := []byte(`{"available":500,"goals":[]}`)
	if err := s.Save("letsSave.v1", doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := s.Load("letsSave.v1")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("saved document not found")
	}
	if string(got) != string(doc) {
		t.Fatalf("loaded %q, want %q", got, doc)
	}
}

func TestSaveReplacesValue(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save("k", []byte("one")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if err := s.Save("k", []byte("two")); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, ok, err := s.Load("k")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if string(got) != "two" {
		t.Fatalf("loaded %q, want %q", got, "two")
	}
}
