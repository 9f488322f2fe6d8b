package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig_NonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/file.toml")
	if err == nil {
		t.Error("Expected error for non-existent file")
	}
}

func TestLoadConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.toml")

	invalidTOML := `[general
	data_dir = "/tmp"`

	if err := os.WriteFile(configFile, []byte(invalidTOML), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if _, err := LoadConfig(configFile); err == nil {
		t.Error("Expected error for invalid TOML")
	}
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "warninglists.toml")

	validTOML := `[general]
data_dir = "/var/lib/warninglists"
source_url = "https://example.com/lists.zip"

[lookup]
default_lists = ["List of known IPv4 public DNS resolvers"]
output_format = "{{value}} -> {{name}}"

[api]
listen_addr = "0.0.0.0:9000"
enable_metrics = false

[watch]
enabled = false
debounce_ms = 1000`

	if err := os.WriteFile(configFile, []byte(validTOML), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatalf("Expected no error for valid config: %v", err)
	}

	if cfg.General.DataDir != "/var/lib/warninglists" {
		t.Errorf("Expected data_dir '/var/lib/warninglists', got %s", cfg.General.DataDir)
	}
	if cfg.GetAbsListsDir() != "/var/lib/warninglists/lists" {
		t.Errorf("Unexpected lists dir: %s", cfg.GetAbsListsDir())
	}
	if len(cfg.Lookup.DefaultLists) != 1 {
		t.Errorf("Expected 1 default list, got %v", cfg.Lookup.DefaultLists)
	}
	if cfg.API.ListenAddr != "0.0.0.0:9000" || cfg.API.EnableMetrics {
		t.Errorf("Unexpected api section: %+v", cfg.API)
	}
	if cfg.Watch.Enabled || cfg.Watch.DebounceMs != 1000 {
		t.Errorf("Unexpected watch section: %+v", cfg.Watch)
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Expected valid config, got: %v", err)
	}
}

func TestLoadConfig_DefaultsForMissingSections(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "warninglists.toml")

	if err := os.WriteFile(configFile, []byte("[general]\ndata_dir = \"data\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(configFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.GetAbsDataDir() != filepath.Join(tmpDir, "data") {
		t.Errorf("Expected relative data dir resolved against config dir, got %s", cfg.GetAbsDataDir())
	}
	if cfg.Lookup == nil || cfg.Lookup.OutputFormat != DefaultOutputFormat {
		t.Errorf("Expected default lookup section, got %+v", cfg.Lookup)
	}
	if cfg.API == nil || cfg.API.ListenAddr != DefaultListenAddr {
		t.Errorf("Expected default api section, got %+v", cfg.API)
	}
	if cfg.Watch == nil || cfg.Watch.DebounceMs != DefaultDebounceMs {
		t.Errorf("Expected default watch section, got %+v", cfg.Watch)
	}
}

func TestLoadOrDefault_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "missing.toml")

	cfg, err := LoadOrDefault(configFile)
	if err != nil {
		t.Fatalf("Expected defaults, got error: %v", err)
	}
	if cfg.GetConfigPath() != configFile {
		t.Errorf("Expected config path %s, got %s", configFile, cfg.GetConfigPath())
	}
	if cfg.GetAbsDataDir() != filepath.Join(tmpDir, DefaultDataDir) {
		t.Errorf("Unexpected data dir: %s", cfg.GetAbsDataDir())
	}
	if err := cfg.ValidateConfig(); err != nil {
		t.Errorf("Default config must be valid: %v", err)
	}
}

func TestWriteConfig_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := DefaultConfig(tmpDir)
	cfg.Lookup.DefaultLists = []string{"a", "b"}

	if err := cfg.WriteConfig(); err != nil {
		t.Fatalf("WriteConfig() error = %v", err)
	}

	loaded, err := LoadConfig(cfg.GetConfigPath())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if strings.Join(loaded.Lookup.DefaultLists, ",") != "a,b" {
		t.Errorf("Unexpected default lists after round trip: %v", loaded.Lookup.DefaultLists)
	}
}
