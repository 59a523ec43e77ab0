package t2048

import "github.com/mkorolik/tui2048/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Size   int
	Goal   int // Win target tile, 0 when disabled
	Engine engine.Snapshot
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	es := g.eng.Snapshot()

	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	case es.Finished && es.Won:
		state = StateWin
	case es.Finished:
		state = StateGameOver
	}

	return Snapshot{
		Tick:   g.tick,
		Size:   g.boardSize,
		Goal:   g.goalTile,
		Engine: es,
		State:  state,
	}
}
