package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg Config
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("storage:\n  path: /tmp/custom.db\ninput:\n  swipe_threshold: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Storage.Path != "/tmp/custom.db" {
		t.Errorf("Storage.Path = %q", cfg.Storage.Path)
	}
	if cfg.Input.SwipeThreshold != 5 {
		t.Errorf("SwipeThreshold = %d, expected 5", cfg.Input.SwipeThreshold)
	}
	// Unset sections keep defaults
	if cfg.Server.Address != ":23234" {
		t.Errorf("Server.Address = %q, expected default", cfg.Server.Address)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, expected default", cfg.Log.Level)
	}
}

func TestLoadNormalizesInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("input:\n  swipe_threshold: -3\nserver:\n  idle_timeout_minutes: 0\n  address: \"\"\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Input.SwipeThreshold != 2 {
		t.Errorf("SwipeThreshold = %d, expected default 2", cfg.Input.SwipeThreshold)
	}
	if cfg.Server.IdleTimeout() != 30*time.Minute {
		t.Errorf("IdleTimeout = %v, expected 30m", cfg.Server.IdleTimeout())
	}
	if cfg.Server.Address != ":23234" {
		t.Errorf("Address = %q, expected default", cfg.Server.Address)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing custom config")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("storage: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}
