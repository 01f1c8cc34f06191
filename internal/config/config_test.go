package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("VSLICE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Slicer.TextSize != 8 {
		t.Fatalf("expected default text size 8, got %v", cfg.Slicer.TextSize)
	}
	if cfg.Slicer.DefaultSelection != "" {
		t.Fatalf("expected no default selection, got %q", cfg.Slicer.DefaultSelection)
	}
	if cfg.Database.Path == "" {
		t.Fatal("expected a default database path")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[database]
path = "/tmp/vslice-test.db"

[dataset]
name = "branch-returns"

[slicer]
text_size = 12
default_selection = "5"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("VSLICE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Path != "/tmp/vslice-test.db" {
		t.Fatalf("unexpected db path %q", cfg.Database.Path)
	}
	if cfg.Dataset.Name != "branch-returns" {
		t.Fatalf("unexpected dataset %q", cfg.Dataset.Name)
	}
	if cfg.Slicer.TextSize != 12 {
		t.Fatalf("expected text size 12, got %v", cfg.Slicer.TextSize)
	}
	if cfg.Slicer.DefaultSelection != "5" {
		t.Fatalf("expected default selection %q, got %q", "5", cfg.Slicer.DefaultSelection)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("VSLICE_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("VSLICE_DATASET_NAME", "other-set")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dataset.Name != "other-set" {
		t.Fatalf("expected env override, got %q", cfg.Dataset.Name)
	}
}
