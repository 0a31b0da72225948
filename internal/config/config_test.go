// ABOUTME: Tests for glucolog configuration management.
// ABOUTME: Covers load, save, defaults, directory resolution, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGetDataDirDefault(t *testing.T) {
	cfg := &Config{}

	// GetDataDir with empty DataDir should return storage.DataDir()
	got := cfg.GetDataDir()
	if got == "" {
		t.Error("GetDataDir() returned empty string")
	}
}

func TestGetDataDirExplicit(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/glucolog-test"}
	if got := cfg.GetDataDir(); got != "/tmp/glucolog-test" {
		t.Errorf("GetDataDir() = %q, want %q", got, "/tmp/glucolog-test")
	}
}

func TestGetReportDirDefault(t *testing.T) {
	cfg := &Config{DataDir: "/tmp/glucolog-test"}
	want := filepath.Join("/tmp/glucolog-test", "reports")
	if got := cfg.GetReportDir(); got != want {
		t.Errorf("GetReportDir() = %q, want %q", got, want)
	}
}

func TestGetReportDirExplicit(t *testing.T) {
	cfg := &Config{ReportDir: "/tmp/glucolog-reports"}
	if got := cfg.GetReportDir(); got != "/tmp/glucolog-reports" {
		t.Errorf("GetReportDir() = %q, want %q", got, "/tmp/glucolog-reports")
	}
}

func TestExpandPathEmpty(t *testing.T) {
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want %q", got, "")
	}
}

func TestExpandPathAbsolute(t *testing.T) {
	if got := ExpandPath("/tmp/foo"); got != "/tmp/foo" {
		t.Errorf("ExpandPath(\"/tmp/foo\") = %q, want %q", got, "/tmp/foo")
	}
}

func TestExpandPathTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~")
	if got != home {
		t.Errorf("ExpandPath(\"~\") = %q, want %q", got, home)
	}
}

func TestExpandPathTildeSlash(t *testing.T) {
	home, _ := os.UserHomeDir()

	got := ExpandPath("~/data/glucolog")
	want := filepath.Join(home, "data/glucolog")
	if got != want {
		t.Errorf("ExpandPath(\"~/data/glucolog\") = %q, want %q", got, want)
	}
}

func TestExpandPathRelative(t *testing.T) {
	if got := ExpandPath("data/glucolog"); got != "data/glucolog" {
		t.Errorf("ExpandPath(\"data/glucolog\") = %q, want %q", got, "data/glucolog")
	}
}

func TestGetDataDirExpandsTilde(t *testing.T) {
	home, _ := os.UserHomeDir()

	cfg := &Config{DataDir: "~/glucolog-data"}
	got := cfg.GetDataDir()
	want := filepath.Join(home, "glucolog-data")
	if got != want {
		t.Errorf("GetDataDir() = %q, want %q", got, want)
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Set XDG_CONFIG_HOME to a temp dir with no config file
	tmpDir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file should not error: %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}

	// Should return defaults
	if cfg.DataDir != "" {
		t.Errorf("Expected empty DataDir, got %q", cfg.DataDir)
	}
	if cfg.ReportDir != "" {
		t.Errorf("Expected empty ReportDir, got %q", cfg.ReportDir)
	}
}

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	cfg := &Config{
		DataDir:   "/tmp/glucolog-data",
		ReportDir: "/tmp/glucolog-reports",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded.DataDir != "/tmp/glucolog-data" {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, "/tmp/glucolog-data")
	}
	if loaded.ReportDir != "/tmp/glucolog-reports" {
		t.Errorf("ReportDir mismatch: got %q, want %q", loaded.ReportDir, "/tmp/glucolog-reports")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()

	// Point to a non-existent subdirectory
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "nonexistent"))

	cfg := &Config{DataDir: "/tmp/glucolog-data"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() should create directory: %v", err)
	}

	configDir := filepath.Join(tmpDir, "nonexistent", "glucolog")
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		t.Error("Expected config directory to be created")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	// Write invalid JSON
	configDir := filepath.Join(tmpDir, "glucolog")
	os.MkdirAll(configDir, 0755)
	os.WriteFile(filepath.Join(configDir, "config.json"), []byte("invalid json"), 0600)

	_, err := Load()
	if err == nil {
		t.Error("Expected error for invalid JSON config")
	}
}

func TestGetConfigPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	got := GetConfigPath()
	want := filepath.Join(tmpDir, "glucolog", "config.json")
	if got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestOpenStorage(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := &Config{DataDir: tmpDir}

	repo, err := cfg.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage() failed: %v", err)
	}
	defer repo.Close()

	// Verify database file was created
	dbPath := filepath.Join(tmpDir, "glucolog.db")
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Expected glucolog.db to be created")
	}
}

func TestConfigJSONSerialization(t *testing.T) {
	cfg := &Config{
		DataDir:   "~/glucolog-data",
		ReportDir: "~/glucolog-reports",
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if loaded.DataDir != cfg.DataDir {
		t.Errorf("DataDir mismatch: got %q, want %q", loaded.DataDir, cfg.DataDir)
	}
	if loaded.ReportDir != cfg.ReportDir {
		t.Errorf("ReportDir mismatch: got %q, want %q", loaded.ReportDir, cfg.ReportDir)
	}
}

func TestConfigJSONOmitsEmpty(t *testing.T) {
	cfg := &Config{}

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// Empty config should result in "{}" since fields have omitempty
	if string(data) != "{}" {
		t.Errorf("Expected empty JSON object, got %s", string(data))
	}
}
