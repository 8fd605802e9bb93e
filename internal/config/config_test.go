package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := filepath.Join(dir, "basecamp.db"); cfg.DatabasePath != want {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, want)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.SuperuserEmail != "" || cfg.SuperuserPassword != "" {
		t.Error("superuser credentials should default to empty")
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	content := "database_path: /tmp/other.db\nlog_level: debug\nsuperuser_email: admin@example.com\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatabasePath != "/tmp/other.db" {
		t.Errorf("DatabasePath = %q, want /tmp/other.db", cfg.DatabasePath)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.SuperuserEmail != "admin@example.com" {
		t.Errorf("SuperuserEmail = %q, want admin@example.com", cfg.SuperuserEmail)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BASECAMP_LOG_LEVEL", "warn")
	t.Setenv("BASECAMP_DATABASE_PATH", "/tmp/env.db")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.DatabasePath != "/tmp/env.db" {
		t.Errorf("DatabasePath = %q, want /tmp/env.db", cfg.DatabasePath)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	if _, err := Load(dir); err == nil {
		t.Error("Load succeeded on a malformed config file")
	}
}
