package config

import (
	_ "embed"
)

//go:embed defaults/sokoban.yaml
var defaultSokobanYAML []byte

// DefaultConfig returns the hardcoded default configuration.
func DefaultConfig() SokobanConfig {
	return SokobanConfig{
		AutoPlay: AutoPlayConfig{
			StartDelayMS: 100,
			MoveDelayMS:  75,
			PushDelayMS:  250,
		},
		Display: DisplayConfig{
			CellWidth: 2,
			ShowTrail: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSokobanYAML
}
