package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".treediff")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}

	configContent := `indent: 4
defaultFormat: yaml
watchIntervalMs: 250
colors:
  added: "#00ff00"
  removed: "#ff0000"
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Indent != 4 {
		t.Errorf("Indent = %d, want 4", cfg.Indent)
	}
	if cfg.DefaultFormat != "yaml" {
		t.Errorf("DefaultFormat = %q, want %q", cfg.DefaultFormat, "yaml")
	}
	if cfg.WatchIntervalMs != 250 {
		t.Errorf("WatchIntervalMs = %d, want 250", cfg.WatchIntervalMs)
	}
	if cfg.Colors.Added != "#00ff00" {
		t.Errorf("Colors.Added = %q, want %q", cfg.Colors.Added, "#00ff00")
	}
	// Fields the file doesn't set keep their defaults.
	if cfg.Colors.Changed != Default().Colors.Changed {
		t.Errorf("Colors.Changed = %q, want default %q", cfg.Colors.Changed, Default().Colors.Changed)
	}
	if cfg.HistoryLimit != Default().HistoryLimit {
		t.Errorf("HistoryLimit = %d, want default %d", cfg.HistoryLimit, Default().HistoryLimit)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	// No config file - should return defaults, not error
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Indent != Default().Indent {
		t.Errorf("Indent = %d, want default %d", cfg.Indent, Default().Indent)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".treediff")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("indent:\n  - not a number"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadConfigRejectsNonsenseValues(t *testing.T) {
	tmpHome := t.TempDir()
	t.Setenv("HOME", tmpHome)

	configDir := filepath.Join(tmpHome, ".treediff")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("indent: -3\nwatchIntervalMs: 0\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Indent != Default().Indent || cfg.WatchIntervalMs != Default().WatchIntervalMs {
		t.Errorf("expected defaults for invalid values, got %+v", cfg)
	}
}
