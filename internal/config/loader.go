package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlockfall loads the Blockfall configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	var cfg BlockfallConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blockfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/blockfall.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBlockfallYAML, &cfg); err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// ApplyBlockfallPreset modifies the config based on a difficulty preset.
// Presets rewrite the gravity curve; the fixed preset pins the interval
// so the game never speeds up.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseMs = 1000
		cfg.Gravity.Factor = 0.90
	case DifficultyNormal:
		cfg.Gravity.BaseMs = 800
		cfg.Gravity.Factor = 0.85
	case DifficultyHard:
		cfg.Gravity.BaseMs = 550
		cfg.Gravity.Factor = 0.78
	case DifficultyFixed:
		cfg.Gravity.Factor = 1.0
	}
}
