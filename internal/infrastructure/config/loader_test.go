package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedsDefaultsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	loader := NewFileLoader(path)

	cfg, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generation.Model != "gemini-2.0-flash" {
		t.Errorf("default model = %q", cfg.Generation.Model)
	}
	if cfg.Generation.TimeoutSeconds != 30 {
		t.Errorf("default timeout = %d", cfg.Generation.TimeoutSeconds)
	}
	if cfg.History.Window != 5 {
		t.Errorf("default history window = %d", cfg.History.Window)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("default config not written: %v", err)
	}
}

func TestLoadParsesAndHydrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := `config_format_version: "1"
generation:
  model: gemini-2.0-pro
  temperature: 0.4
history:
  window: 8
credential:
  cache_path: /tmp/custom_key
`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := NewFileLoader(path).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Generation.Model != "gemini-2.0-pro" {
		t.Errorf("model = %q", cfg.Generation.Model)
	}
	if cfg.Generation.TimeoutSeconds != 30 {
		t.Errorf("timeout not hydrated, got %d", cfg.Generation.TimeoutSeconds)
	}
	if cfg.History.Window != 8 {
		t.Errorf("window = %d", cfg.History.Window)
	}
	if cfg.Credential.CachePath != "/tmp/custom_key" {
		t.Errorf("cache path = %q", cfg.Credential.CachePath)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFileLoader(path).Load(context.Background()); err == nil {
		t.Fatal("expected parse error")
	}
}
