package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	DefaultSpec   string   `json:"default_spec,omitempty"`   // specialization code used when --spec is omitted in FEN mode
	SemesterStart string   `json:"semester_start,omitempty"` // Monday of week 1, YYYY-MM-DD
	AccentColor   string   `json:"accent_color,omitempty"`
	SavedFiles    []string `json:"saved_files,omitempty"`
}

// getConfigPath returns the absolute path to ~/.rozkladctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".rozkladctl.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// RememberFile adds path to the saved-files list, most recent first,
// dropping duplicates and keeping only the last ten entries.
func (c *AppConfig) RememberFile(path string) {
	files := []string{path}
	for _, f := range c.SavedFiles {
		if f != path {
			files = append(files, f)
		}
	}
	if len(files) > 10 {
		files = files[:10]
	}
	c.SavedFiles = files
}
