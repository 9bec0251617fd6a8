package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.DefaultSpec = "екон"
	cfg.SemesterStart = "2023-09-04"
	cfg.AccentColor = "99"
	cfg.SavedFiles = []string{"rozklad.xlsx"}

	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".rozkladctl.json")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Errorf("expected config file to be created at %s", configPath)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Write invalid JSON to the config file
	configPath := filepath.Join(tempDir, ".rozkladctl.json")
	if err := os.WriteFile(configPath, []byte("invalid json { content"), 0644); err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestRememberFile(t *testing.T) {
	cfg := &AppConfig{SavedFiles: []string{"a.xlsx", "b.docx"}}

	cfg.RememberFile("b.docx")
	want := []string{"b.docx", "a.xlsx"}
	if !reflect.DeepEqual(cfg.SavedFiles, want) {
		t.Errorf("expected deduplicated recent-first list %v, got %v", want, cfg.SavedFiles)
	}

	cfg.RememberFile("c.html")
	if cfg.SavedFiles[0] != "c.html" || len(cfg.SavedFiles) != 3 {
		t.Errorf("unexpected saved files: %v", cfg.SavedFiles)
	}
}
