package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the default Blockfall configuration.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Field: FieldConfig{
			Width:  10,
			Height: 20,
		},
		Gravity: GravityConfig{
			BaseMs: 800,  // Level 1 drops one row every 800ms
			Factor: 0.85, // Each level is 15% faster
		},
		Queue: QueueConfig{
			Lookahead: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "blockfall":
		return defaultBlockfallYAML
	default:
		return nil
	}
}
