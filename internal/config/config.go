// Package config provides YAML-based game configuration loading and
// user settings persistence for the blockfall platform.
package config

import "fmt"

// BlockfallConfig contains all configuration for the Blockfall game.
type BlockfallConfig struct {
	Field   FieldConfig   `yaml:"field"`
	Gravity GravityConfig `yaml:"gravity"`
	Queue   QueueConfig   `yaml:"queue"`
}

// FieldConfig defines the playing field dimensions.
type FieldConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GravityConfig defines the speed curve. The gravity interval at level N
// is BaseMs * Factor^(N-1) milliseconds per row.
type GravityConfig struct {
	BaseMs int     `yaml:"base_ms"`
	Factor float64 `yaml:"factor"`
}

// QueueConfig defines the piece queue parameters.
type QueueConfig struct {
	Lookahead int `yaml:"lookahead"`
}

// Validate reports the first problem with the configuration, or nil.
func (c BlockfallConfig) Validate() error {
	if c.Field.Width < 4 {
		return fmt.Errorf("field.width must be at least 4, got %d", c.Field.Width)
	}
	if c.Field.Height < 4 {
		return fmt.Errorf("field.height must be at least 4, got %d", c.Field.Height)
	}
	if c.Gravity.BaseMs <= 0 {
		return fmt.Errorf("gravity.base_ms must be positive, got %d", c.Gravity.BaseMs)
	}
	if c.Gravity.Factor <= 0 || c.Gravity.Factor > 1 {
		return fmt.Errorf("gravity.factor must be in (0, 1], got %g", c.Gravity.Factor)
	}
	if c.Queue.Lookahead < 1 {
		return fmt.Errorf("queue.lookahead must be at least 1, got %d", c.Queue.Lookahead)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// PresetNames returns the selectable difficulty presets in menu order.
func PresetNames() []string {
	return []string{
		string(DifficultyEasy),
		string(DifficultyNormal),
		string(DifficultyHard),
		string(DifficultyFixed),
	}
}
