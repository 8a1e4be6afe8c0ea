package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default("/tmp/slipboard.db")
	if cfg.Database.Path != "/tmp/slipboard.db" {
		t.Fatalf("unexpected db path %q", cfg.Database.Path)
	}
	if cfg.Deal.Count != 4 {
		t.Fatalf("unexpected deal count %d", cfg.Deal.Count)
	}
	if cfg.Deal.MinHeight != 80 || cfg.Deal.MaxHeight != 180 {
		t.Fatalf("unexpected height range %d-%d", cfg.Deal.MinHeight, cfg.Deal.MaxHeight)
	}
	if len(cfg.Deal.Palette) == 0 {
		t.Fatal("expected a default palette")
	}
	if cfg.Logging.Level != "info" {
		t.Fatalf("unexpected log level %q", cfg.Logging.Level)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	defaults := Default("/tmp/slipboard.db")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), defaults)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != defaults.Database.Path {
		t.Fatalf("expected default db path, got %q", cfg.Database.Path)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[database]
path = "/custom/slipboard.db"

[deal]
count = 6
min_height = 100
max_height = 140
palette = ["#aabbcc", "#ddeeff"]

[ui]
confirm_quit = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := Load(path, Default("/tmp/default.db"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Path != "/custom/slipboard.db" {
		t.Fatalf("unexpected db path %q", cfg.Database.Path)
	}
	if cfg.Deal.Count != 6 {
		t.Fatalf("unexpected deal count %d", cfg.Deal.Count)
	}
	if cfg.Deal.MinHeight != 100 || cfg.Deal.MaxHeight != 140 {
		t.Fatalf("unexpected height range %d-%d", cfg.Deal.MinHeight, cfg.Deal.MaxHeight)
	}
	if len(cfg.Deal.Palette) != 2 {
		t.Fatalf("unexpected palette %#v", cfg.Deal.Palette)
	}
	if !cfg.UI.ConfirmQuit {
		t.Fatal("expected confirm_quit from config override")
	}
}

func TestLoadRejectsInvalidHeights(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[database]
path = "/custom/slipboard.db"

[deal]
count = 4
min_height = 180
max_height = 80
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path, Default("/tmp/default.db")); err == nil {
		t.Fatal("expected error for inverted height range")
	}
}

func TestLoadRejectsInvalidPaletteColor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[database]
path = "/custom/slipboard.db"

[deal]
palette = ["red"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if _, err := Load(path, Default("/tmp/default.db")); err == nil {
		t.Fatal("expected error for non-hex palette color")
	}
}

func TestEnsureConfigDir(t *testing.T) {
	target := filepath.Join(t.TempDir(), "a", "b", "config.toml")
	if err := EnsureConfigDir(target); err != nil {
		t.Fatalf("EnsureConfigDir() error = %v", err)
	}
	if _, err := os.Stat(filepath.Dir(target)); err != nil {
		t.Fatalf("expected dir to exist, stat error %v", err)
	}
}
