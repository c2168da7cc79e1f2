// Package files owns the on-disk configuration. Clip data itself never
// touches disk here; it lives behind the backend interface.
package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/clipdeck/clipdeck-terminal/pkg/models"
)

const (
	ConfigDirName = "clipdeck"
	SettingsFile  = "settings.yaml"
)

// SettingsPath returns the settings file location under the user config
// directory, honoring XDG_CONFIG_HOME.
func SettingsPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(base, ConfigDirName, SettingsFile), nil
}

// ReadSettings loads the settings file. Callers fall back to
// models.DefaultSettings() on error; a missing file is not special-cased.
func ReadSettings() (*models.Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}
	return ReadSettingsFrom(path)
}

// ReadSettingsFrom loads settings from an explicit path.
func ReadSettingsFrom(path string) (*models.Settings, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}
	return settings, nil
}

// WriteSettings persists settings, creating the config directory if needed.
func WriteSettings(settings *models.Settings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	return WriteSettingsTo(path, settings)
}

// WriteSettingsTo persists settings to an explicit path.
func WriteSettingsTo(path string, settings *models.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for settings: %w", err)
	}

	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}
	return nil
}
