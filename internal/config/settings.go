package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are user preferences persisted between sessions.
type Settings struct {
	Theme string `yaml:"theme"`
}

// DefaultSettings returns the settings used when no file exists yet.
func DefaultSettings() Settings {
	return Settings{Theme: "classic"}
}

// settingsPath returns the path to the user settings file.
func settingsPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".blockfall", "settings.yaml"), nil
}

// LoadSettings reads the persisted settings, falling back to defaults when
// the file is missing or unreadable. The error reports why the fallback
// was taken; callers may log it and continue.
func LoadSettings() (Settings, error) {
	path, err := settingsPath()
	if err != nil {
		return DefaultSettings(), err
	}
	return LoadSettingsFrom(path)
}

// LoadSettingsFrom reads settings from an explicit path.
func LoadSettingsFrom(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultSettings(), err
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), err
	}
	if s.Theme == "" {
		s.Theme = DefaultSettings().Theme
	}
	return s, nil
}

// SaveSettings writes the settings to the user settings file, creating
// the directory when needed.
func SaveSettings(s Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	return SaveSettingsTo(path, s)
}

// SaveSettingsTo writes settings to an explicit path.
func SaveSettingsTo(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
