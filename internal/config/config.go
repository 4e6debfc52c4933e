// Package config provides YAML-based configuration loading for the
// Sokoban player.
package config

import (
	"time"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

// SokobanConfig contains all configuration for the player.
type SokobanConfig struct {
	AutoPlay AutoPlayConfig `yaml:"autoplay"`
	Display  DisplayConfig  `yaml:"display"`
	Levels   LevelsConfig   `yaml:"levels"`
}

// AutoPlayConfig defines auto-play delays in milliseconds.
type AutoPlayConfig struct {
	StartDelayMS int `yaml:"start_delay_ms"`
	MoveDelayMS  int `yaml:"move_delay_ms"`
	PushDelayMS  int `yaml:"push_delay_ms"` // Used when the next step pushes a box
}

// DisplayConfig defines how the board is drawn.
type DisplayConfig struct {
	CellWidth int  `yaml:"cell_width"` // Screen columns per grid cell, 1 or 2
	ShowTrail bool `yaml:"show_trail"`
}

// LevelsConfig defines where extra levels are read from.
type LevelsConfig struct {
	Dir string `yaml:"dir"` // Empty means builtin levels only
}

// Timing converts the auto-play delays to ticks at tickRate.
func (c SokobanConfig) Timing(tickRate int) core.AutoPlayTiming {
	return core.NewAutoPlayTiming(
		msToDuration(c.AutoPlay.StartDelayMS, core.DefaultAutoPlayStart),
		msToDuration(c.AutoPlay.MoveDelayMS, core.DefaultAutoPlayMove),
		msToDuration(c.AutoPlay.PushDelayMS, core.DefaultAutoPlayPush),
		tickRate,
	)
}

func msToDuration(ms int, fallback time.Duration) time.Duration {
	if ms <= 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}
