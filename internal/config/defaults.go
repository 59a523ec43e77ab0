package config

import (
	_ "embed"

	"github.com/mkorolik/tui2048/internal/engine"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration, used as a
// last resort when even the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Size: engine.DefaultBoardSize,
		},
		Spawn: SpawnConfig{
			FourChance: engine.DefaultSpawnFourChance,
		},
		Goal: GoalConfig{
			Target: 0,
		},
	}
}
