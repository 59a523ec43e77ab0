package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if cfg.Board.Size != 4 {
		t.Errorf("default board size = %d, want 4", cfg.Board.Size)
	}
	if cfg.Spawn.FourChance != 0.11 {
		t.Errorf("default four_chance = %v, want 0.11", cfg.Spawn.FourChance)
	}
	if cfg.Goal.Target != 0 {
		t.Errorf("default goal target = %d, want 0 (disabled)", cfg.Goal.Target)
	}
}

func TestLoadGameEmbeddedDefault(t *testing.T) {
	// With no custom path and no user/local config visible from the test
	// working directory, loading falls through to the embedded YAML.
	cfg, err := LoadGame("")
	if err != nil {
		t.Fatalf("LoadGame(\"\") failed: %v", err)
	}

	if cfg.Board.Size < 2 {
		t.Errorf("loaded board size = %d, want >= 2", cfg.Board.Size)
	}
	if cfg.Spawn.FourChance < 0 || cfg.Spawn.FourChance >= 1 {
		t.Errorf("loaded four_chance = %v, out of range", cfg.Spawn.FourChance)
	}
}

func TestLoadGameCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "game.yaml")

	content := []byte("board:\n  size: 5\nspawn:\n  four_chance: 0.2\ngoal:\n  target: 2048\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadGame(path)
	if err != nil {
		t.Fatalf("LoadGame(%s) failed: %v", path, err)
	}

	if cfg.Board.Size != 5 {
		t.Errorf("board size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Spawn.FourChance != 0.2 {
		t.Errorf("four_chance = %v, want 0.2", cfg.Spawn.FourChance)
	}
	if cfg.Goal.Target != 2048 {
		t.Errorf("goal target = %d, want 2048", cfg.Goal.Target)
	}
}

func TestLoadGameMissingCustomPath(t *testing.T) {
	if _, err := LoadGame("/nonexistent/game.yaml"); err == nil {
		t.Error("LoadGame with missing explicit path should fail")
	}
}

func TestLoadGameInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("board: [not a map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := LoadGame(path); err == nil {
		t.Error("LoadGame with invalid YAML should fail")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   GameConfig
		want GameConfig
	}{
		{
			name: "zero values fall back to defaults",
			in:   GameConfig{},
			want: GameConfig{
				Board: BoardConfig{Size: 4},
				Spawn: SpawnConfig{FourChance: 0.11},
				Goal:  GoalConfig{Target: 0},
			},
		},
		{
			name: "board size below minimum",
			in:   GameConfig{Board: BoardConfig{Size: 1}, Spawn: SpawnConfig{FourChance: 0.11}},
			want: GameConfig{
				Board: BoardConfig{Size: 4},
				Spawn: SpawnConfig{FourChance: 0.11},
			},
		},
		{
			name: "spawn chance of one or more",
			in:   GameConfig{Board: BoardConfig{Size: 4}, Spawn: SpawnConfig{FourChance: 1.5}},
			want: GameConfig{
				Board: BoardConfig{Size: 4},
				Spawn: SpawnConfig{FourChance: 0.11},
			},
		},
		{
			name: "negative goal disabled",
			in:   GameConfig{Board: BoardConfig{Size: 4}, Spawn: SpawnConfig{FourChance: 0.11}, Goal: GoalConfig{Target: -1}},
			want: GameConfig{
				Board: BoardConfig{Size: 4},
				Spawn: SpawnConfig{FourChance: 0.11},
				Goal:  GoalConfig{Target: 0},
			},
		},
		{
			name: "valid config untouched",
			in:   GameConfig{Board: BoardConfig{Size: 6}, Spawn: SpawnConfig{FourChance: 0.25}, Goal: GoalConfig{Target: 4096}},
			want: GameConfig{
				Board: BoardConfig{Size: 6},
				Spawn: SpawnConfig{FourChance: 0.25},
				Goal:  GoalConfig{Target: 4096},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.in
			cfg.Normalize()
			if cfg != tt.want {
				t.Errorf("GameConfig = %+v, want %+v", cfg, tt.want)
			}
		})
	}
}
