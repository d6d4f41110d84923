package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.OutputDir != "site" {
		t.Errorf("expected default output_dir %q, got %q", "site", cfg.OutputDir)
	}
	if cfg.Terminal.Style != StyleAuto {
		t.Errorf("expected default terminal style %q, got %q", StyleAuto, cfg.Terminal.Style)
	}
	if cfg.ContentFile != "" {
		t.Errorf("expected built-in content by default, got %q", cfg.ContentFile)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.quickref.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.OutputDir = "public"
	original.HighlightStyle = "monokai"
	original.Terminal.Style = "dark"
	original.Terminal.WordWrap = 72
	original.CORS.AllowAll = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("round-trip mismatch:\n got  %+v\n want %+v", *loaded, *original)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("terminal:\n  style: light\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Terminal.Style != "light" {
		t.Errorf("terminal.style = %q, want light", cfg.Terminal.Style)
	}
	if cfg.Terminal.WordWrap != 100 {
		t.Errorf("terminal.word_wrap = %d, want default 100", cfg.Terminal.WordWrap)
	}
	if cfg.Port != 8080 {
		t.Errorf("port = %d, want default 8080", cfg.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("QUICKREF_PORT", "9191")
	t.Setenv("QUICKREF_TERMINAL__STYLE", "notty")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9191 {
		t.Errorf("env override failed: got port %d, want 9191", loaded.Port)
	}
	if loaded.Terminal.Style != "notty" {
		t.Errorf("nested env override failed: got %q, want notty", loaded.Terminal.Style)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"negative port", func(c *Config) { c.Port = -1 }},
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
		{"unknown style", func(c *Config) { c.Terminal.Style = "neon" }},
		{"negative wrap", func(c *Config) { c.Terminal.WordWrap = -5 }},
		{"missing content file", func(c *Config) { c.ContentFile = filepath.Join(os.TempDir(), "quickref-does-not-exist.yml") }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	for _, in := range []string{"80", " 8080 ", "65535"} {
		if err := validatePort(in); err != nil {
			t.Errorf("validatePort(%q) = %v, want nil", in, err)
		}
	}
	for _, in := range []string{"", "abc", "0", "65536"} {
		if err := validatePort(in); err == nil {
			t.Errorf("validatePort(%q) should fail", in)
		}
	}
}

func TestPortRuleMatchesWizard(t *testing.T) {
	for _, port := range []int{-1, 0, 1, 8080, 65535, 65536} {
		cfg := DefaultConfig()
		cfg.Port = port
		validateErr := cfg.Validate()
		wizardErr := validatePort(strconv.Itoa(port))
		if (validateErr == nil) != (wizardErr == nil) {
			t.Errorf("port %d: Validate = %v, validatePort = %v", port, validateErr, wizardErr)
		}
	}
}
