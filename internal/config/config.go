// Package config provides YAML-based game configuration loading for the
// 2048 platform.
package config

import "github.com/mkorolik/tui2048/internal/engine"

// GameConfig contains all tunable parameters for a 2048 game.
type GameConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Goal  GoalConfig  `yaml:"goal"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Size int `yaml:"size"` // Board dimension N (NxN), minimum 2
}

// SpawnConfig defines the tile spawn distribution.
type SpawnConfig struct {
	FourChance float64 `yaml:"four_chance"` // Probability of spawning 4 instead of 2
}

// GoalConfig defines the optional win condition.
type GoalConfig struct {
	Target int `yaml:"target"` // Tile value that marks a win; 0 disables
}

// Normalize replaces out-of-range values with defaults so a partial or
// sloppy config file still yields a playable game.
func (c *GameConfig) Normalize() {
	if c.Board.Size < engine.MinBoardSize {
		c.Board.Size = engine.DefaultBoardSize
	}
	if c.Spawn.FourChance < 0 || c.Spawn.FourChance >= 1 {
		c.Spawn.FourChance = engine.DefaultSpawnFourChance
	}
	if c.Goal.Target < 0 {
		c.Goal.Target = 0
	}
}
