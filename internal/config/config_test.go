package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.ViewTTL != 30*time.Minute {
		t.Errorf("expected default view_ttl 30m, got %s", cfg.ViewTTL)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("expected default output_dir %q, got %q", "dist", cfg.OutputDir)
	}
	if cfg.AllowAllOrigins {
		t.Error("expected CORS restricted by default")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.sellonet.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.Title = "Sellonet Staging"
	original.AllowAllOrigins = true
	original.ViewTTL = 5 * time.Minute
	original.MaxViews = 42
	original.OutputDir = "public"

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

func TestLoadYAMLDurations(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")
	data := "port: 3000\nview_ttl: 10m\nsweep_interval: 15s\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != 3000 {
		t.Errorf("port: got %d, want 3000", cfg.Port)
	}
	if cfg.ViewTTL != 10*time.Minute {
		t.Errorf("view_ttl: got %s, want 10m", cfg.ViewTTL)
	}
	if cfg.SweepInterval != 15*time.Second {
		t.Errorf("sweep_interval: got %s, want 15s", cfg.SweepInterval)
	}
	// Unset keys keep their defaults.
	if cfg.MaxViews != 10000 {
		t.Errorf("max_views: got %d, want default", cfg.MaxViews)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("SELLONET_PORT", "7070")
	t.Setenv("SELLONET_ALLOW_ALL_ORIGINS", "true")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 7070 {
		t.Errorf("env override failed: got %d, want 7070", loaded.Port)
	}
	if !loaded.AllowAllOrigins {
		t.Error("env override for allow_all_origins failed")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("SELLONET_TITLE=From Dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SELLONET_TITLE", "")
	os.Unsetenv("SELLONET_TITLE")

	if err := LoadDotEnv(envPath); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	cfg, err := Load(filepath.Join(dir, "missing.yml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "From Dotenv" {
		t.Errorf("title: got %q, want %q", cfg.Title, "From Dotenv")
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("missing .env should be ignored, got %v", err)
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
		mutate func(*Config)
	}{
		{"zero port", func(c *Config) { c.Port = 0 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty title", func(c *Config) { c.Title = "  " }},
		{"zero ttl", func(c *Config) { c.ViewTTL = 0 }},
		{"zero sweep", func(c *Config) { c.SweepInterval = 0 }},
		{"zero max views", func(c *Config) { c.MaxViews = 0 }},
		{"empty output dir", func(c *Config) { c.OutputDir = "" }},
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
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"8080", false},
		{"1", false},
		{"0", true},
		{"65536", true},
		{"http", true},
	}
	for _, tt := range tests {
		err := validatePort(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("validatePort(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
