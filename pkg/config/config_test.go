package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.BindAddr == "" || cfg.DatabasePath == "" {
		t.Fatalf("defaults incomplete: %+v", cfg)
	}
	if cfg.Seed.Username != "admin" {
		t.Errorf("unexpected seed user %q", cfg.Seed.Username)
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("empty path should return defaults, got %+v", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qural.yaml")
	content := "bind_addr: 0.0.0.0:9000\ndatabase_path: /tmp/ann.db\ndebug: true\nseed:\n  username: boss\n  password: s3cret\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BindAddr != "0.0.0.0:9000" {
		t.Errorf("bind_addr %q", cfg.BindAddr)
	}
	if cfg.DatabasePath != "/tmp/ann.db" {
		t.Errorf("database_path %q", cfg.DatabasePath)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
	if cfg.Seed.Username != "boss" || cfg.Seed.Password != "s3cret" {
		t.Errorf("seed %+v", cfg.Seed)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "qural.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.BindAddr != Default().BindAddr {
		t.Errorf("bind_addr should keep default, got %q", cfg.BindAddr)
	}
	if cfg.Seed.Username != "admin" {
		t.Errorf("seed user should keep default, got %q", cfg.Seed.Username)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/qural.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n  - ["), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error")
	}
}
