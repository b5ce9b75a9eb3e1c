package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.LeadPadding() != time.Second || cfg.TrailPadding() != time.Second {
		t.Fatalf("expected 1s default paddings, got %v/%v", cfg.LeadPadding(), cfg.TrailPadding())
	}
	if cfg.FFmpeg.Profile != "av1" {
		t.Fatalf("expected default profile av1, got %q", cfg.FFmpeg.Profile)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[find]
lead_padding_seconds = 2.5
trail_padding_seconds = 0.25
workers = 3

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatalf("expected existing config at %q", path)
	}
	if cfg.LeadPadding() != 2500*time.Millisecond {
		t.Fatalf("expected 2.5s lead padding, got %v", cfg.LeadPadding())
	}
	if cfg.TrailPadding() != 250*time.Millisecond {
		t.Fatalf("expected 0.25s trail padding, got %v", cfg.TrailPadding())
	}
	if cfg.Find.Workers != 3 {
		t.Fatalf("expected 3 workers, got %d", cfg.Find.Workers)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsNegativePadding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[find]\nlead_padding_seconds = -1.0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative padding")
	}
}

func TestLoadRejectsUnknownLogFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[logging]\nformat = \"yaml\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestNormalizeExpandsHome(t *testing.T) {
	cfg := Default()
	cfg.Paths.CacheDir = "~/cache"
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize returned error: %v", err)
	}
	if strings.HasPrefix(cfg.Paths.CacheDir, "~") {
		t.Fatalf("expected tilde expansion, got %q", cfg.Paths.CacheDir)
	}
	if !filepath.IsAbs(cfg.Paths.CacheDir) {
		t.Fatalf("expected absolute path, got %q", cfg.Paths.CacheDir)
	}
}

func TestSampleConfigLoads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(Sample()), 0o644); err != nil {
		t.Fatalf("write sample: %v", err)
	}
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("embedded sample must load cleanly: %v", err)
	}
}
