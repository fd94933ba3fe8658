package psdk

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_ProjectConfig(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	projectConfig := `
baseUrl: http://example.com:3000
credStore: keyring
`
	os.WriteFile("panel.yaml", []byte(projectConfig), 0644)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://example.com:3000" {
		t.Errorf("Expected baseUrl http://example.com:3000, got %s", cfg.BaseURL)
	}

	if cfg.CredStore != "keyring" {
		t.Errorf("Expected credStore keyring, got %s", cfg.CredStore)
	}
}

func TestLoadConfig_LocalOverride(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	projectConfig := `
baseUrl: http://example.com:3000
timeoutSeconds: 5
`
	os.WriteFile("panel.yaml", []byte(projectConfig), 0644)

	os.MkdirAll(ConfigRoot, 0755)
	localConfig := `
baseUrl: http://localhost:8080
timeoutSeconds: 30
`
	os.WriteFile(filepath.Join(ConfigRoot, "config.yaml"), []byte(localConfig), 0644)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Local override should win
	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected baseUrl http://localhost:8080 (from local override), got %s", cfg.BaseURL)
	}

	if cfg.Timeout != 30 {
		t.Errorf("Expected timeoutSeconds 30 (from local override), got %d", cfg.Timeout)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://localhost:8080" {
		t.Errorf("Expected default baseUrl http://localhost:8080, got %s", cfg.BaseURL)
	}
	if cfg.CredStore != "cookiefile" {
		t.Errorf("Expected default credStore cookiefile, got %s", cfg.CredStore)
	}
	if cfg.Timeout != 10 {
		t.Errorf("Expected default timeoutSeconds 10, got %d", cfg.Timeout)
	}
}

func TestLoadConfig_TrailingSlashNormalized(t *testing.T) {
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	os.Chdir(tempDir)
	defer os.Chdir(oldWd)

	os.WriteFile("panel.yaml", []byte("baseUrl: http://example.com/\n"), 0644)

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://example.com" {
		t.Errorf("Expected trailing slash stripped, got %s", cfg.BaseURL)
	}
}

func TestLoadConfig_ExplicitFile(t *testing.T) {
	tempDir := t.TempDir()

	path := filepath.Join(tempDir, "custom.yaml")
	os.WriteFile(path, []byte("baseUrl: http://custom:9000\n"), 0644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.BaseURL != "http://custom:9000" {
		t.Errorf("Expected baseUrl http://custom:9000, got %s", cfg.BaseURL)
	}
	if cfg.ConfigFileUsed() != path {
		t.Errorf("Expected config file %s, got %s", path, cfg.ConfigFileUsed())
	}
}
