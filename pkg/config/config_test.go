package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestGetConfigDir validates config directory access
func TestGetConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test_config")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	configDir := GetConfigDir()
	if configDir == "" {
		t.Fatal("Config directory should not be empty")
	}

	if _, err := os.Stat(configDir); err != nil {
		t.Errorf("Config directory should exist: %v", err)
	}
}

// TestGetCredentialsPath validates credentials path
func TestGetCredentialsPath(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test_config")); err != nil {
		t.Fatalf("Failed to initialize config: %v", err)
	}

	credsPath := GetCredentialsPath()
	if credsPath == "" {
		t.Fatal("Credentials path should not be empty")
	}

	if !filepath.IsAbs(credsPath) {
		t.Error("Credentials path should be absolute")
	}
}

// TestInitWithCustomPath validates custom config path
func TestInitWithCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	customConfigPath := filepath.Join(tempDir, "custom", "path", "config.toml")

	if err := Init(customConfigPath); err != nil {
		t.Fatalf("Failed to initialize with custom path: %v", err)
	}

	configDir := GetConfigDir()
	expectedDir := filepath.Join(tempDir, "custom", "path")

	if configDir != expectedDir {
		t.Errorf("Expected config dir %s, got %s", expectedDir, configDir)
	}
}

// TestConfigDirectoryCreation validates directory is created
func TestConfigDirectoryCreation(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "new", "config", "location", "config.toml")

	if err := Init(configPath); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	configDir := GetConfigDir()
	if _, err := os.Stat(configDir); err != nil {
		t.Fatalf("Config directory was not created: %v", err)
	}
}

// TestDefaultValues validates built-in defaults
func TestDefaultValues(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"exports.dir", "exports"},
		{"exports.merged_file", "Juan365_MERGED_ALL.csv"},
		{"data.dir", "data"},
		{"dashboard.out", "dashboard.html"},
		{"dashboard.title", "Juan365 Dashboard"},
		{"api.base_url", "https://graph.facebook.com/v21.0"},
		{"output.format", "text"},
		{"log.level", "info"},
	}

	for _, tc := range tests {
		if got := GetString(tc.key); got != tc.want {
			t.Errorf("GetString(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}

// TestDefaultInts validates integer defaults
func TestDefaultInts(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	tests := []struct {
		key  string
		want int
	}{
		{"exports.hour_offset", 16},
		{"dashboard.top_posts", 15},
		{"api.timeout", 30},
		{"api.post_limit", 100},
		{"api.hour_offset", 8},
	}

	for _, tc := range tests {
		if got := GetInt(tc.key); got != tc.want {
			t.Errorf("GetInt(%q) = %d, want %d", tc.key, got, tc.want)
		}
	}
}

// TestSetRunOnly validates that Set does not persist to disk
func TestSetRunOnly(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")
	if err := Init(configPath); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	Set("exports.dir", filepath.Join(tempDir, "elsewhere"))

	if got := GetString("exports.dir"); got != filepath.Join(tempDir, "elsewhere") {
		t.Errorf("Set value not visible: got %q", got)
	}

	if _, err := os.Stat(configPath); !os.IsNotExist(err) {
		t.Error("Set should not write the config file")
	}
}

// TestTildeExpansion validates ~ expansion on path-like keys
func TestTildeExpansion(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	Set("exports.dir", "~/exports")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("No home directory: %v", err)
	}

	if got := GetString("exports.dir"); got != filepath.Join(home, "exports") {
		t.Errorf("Expected tilde expansion, got %q", got)
	}
}

// TestMultipleInitCalls validates multiple initialization calls
func TestMultipleInitCalls(t *testing.T) {
	tempDir := t.TempDir()
	path1 := filepath.Join(tempDir, "config1", "config.toml")
	path2 := filepath.Join(tempDir, "config2", "config.toml")

	if err := Init(path1); err != nil {
		t.Fatalf("First init failed: %v", err)
	}

	firstDir := GetConfigDir()

	if err := Init(path2); err != nil {
		t.Fatalf("Second init failed: %v", err)
	}

	secondDir := GetConfigDir()

	if firstDir == secondDir {
		t.Errorf("Config dir should change after re-init, both were %s", firstDir)
	}
}

// TestCredentialsPathStructure validates credentials live under the config dir
func TestCredentialsPathStructure(t *testing.T) {
	tempDir := t.TempDir()
	if err := Init(filepath.Join(tempDir, "test_config")); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	credsPath := GetCredentialsPath()
	configDir := GetConfigDir()

	if filepath.Dir(credsPath) != configDir {
		t.Errorf("Credentials path %s should be under config dir %s", credsPath, configDir)
	}
}
