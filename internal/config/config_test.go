package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Appearance.Theme != "piggy" {
		t.Fatalf("default theme = %q, want piggy", cfg.Appearance.Theme)
	}
	if cfg.Ledger.SeedAvailable != nil {
		t.Fatal("default seed should be unset")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Appearance.Theme != "piggy" {
		t.Fatalf("theme = %q, want default", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	seed := 750.0
	cfg := DefaultConfig()
	cfg.Appearance.Theme = "tokyo-night"
	cfg.General.DataDir = "/tmp/ledger-data"
	cfg.Ledger.SeedAvailable = &seed

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Appearance.Theme != "tokyo-night" {
		t.Errorf("theme = %q", got.Appearance.Theme)
	}
	if got.General.DataDir != "/tmp/ledger-data" {
		t.Errorf("data dir = %q", got.General.DataDir)
	}
	if got.Ledger.SeedAvailable == nil || *got.Ledger.SeedAvailable != 750 {
		t.Errorf("seed = %v, want 750", got.Ledger.SeedAvailable)
	}
}

func TestDataPathHonorsOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.General.DataDir = "/custom/dir"
	if got := DataPath(cfg); got != filepath.Join("/custom/dir", "letssave.db") {
		t.Fatalf("DataPath = %q", got)
	}

	cfg.General.DataDir = ""
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	if got := DataPath(cfg); got != filepath.Join("/xdg/data", "letssave", "letssave.db") {
		t.Fatalf("DataPath with XDG = %q", got)
	}
	_ = os.Unsetenv("XDG_DATA_HOME")
}
