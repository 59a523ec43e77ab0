// Package t2048 adapts the sliding-tile merge engine to the arcade
// game interface so it can run inside the TUI platform.
package t2048

import (
	"github.com/mkorolik/tui2048/internal/config"
	"github.com/mkorolik/tui2048/internal/core"
	"github.com/mkorolik/tui2048/internal/engine"
	"github.com/mkorolik/tui2048/internal/registry"
)

// Game implements the 2048 puzzle on top of the merge engine.
type Game struct {
	eng  *engine.Game
	tick uint64

	boardSize       int
	goalTile        int
	spawnFourChance float64

	// Screen dimensions
	screenW int
	screenH int

	paused        bool
	tooSmall      bool
	moveProcessed bool // Prevent multiple moves per tick
}

// Package-level variables for config overrides set by the CLI before Reset.
var (
	selectedConfigPath string
	selectedBoardSize  int
	selectedGoalTile   = -1
)

// SetConfigPath points the game at an explicit YAML config file.
func SetConfigPath(path string) {
	selectedConfigPath = path
}

// SetBoardSize overrides the configured board dimension. 0 keeps the config value.
func SetBoardSize(size int) {
	selectedBoardSize = size
}

// SetGoalTile overrides the configured win target. Negative keeps the config
// value; 0 disables the win condition.
func SetGoalTile(target int) {
	selectedGoalTile = target
}

// New creates a new 2048 game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.moveProcessed = false

	gameCfg, err := config.LoadGame(selectedConfigPath)
	if err != nil {
		gameCfg = config.DefaultGameConfig()
	}

	g.boardSize = gameCfg.Board.Size
	if selectedBoardSize >= engine.MinBoardSize {
		g.boardSize = selectedBoardSize
	}

	g.goalTile = gameCfg.Goal.Target
	if selectedGoalTile >= 0 {
		g.goalTile = selectedGoalTile
	}

	g.spawnFourChance = gameCfg.Spawn.FourChance

	eng, err := engine.NewGame(g.boardSize,
		engine.WithSeed(cfg.Seed),
		engine.WithGoalTile(g.goalTile),
		engine.WithSpawnFourChance(g.spawnFourChance),
	)
	if err != nil {
		// Config was normalized, so only a bad override can land here.
		eng, _ = engine.NewGame(engine.DefaultBoardSize, engine.WithSeed(cfg.Seed))
		g.boardSize = engine.DefaultBoardSize
	}
	g.eng = eng

	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough for the board.
func (g *Game) checkScreenSize() {
	minW := g.boardSize*g.cellWidth() + 1
	minH := g.boardSize*cellHeight + 1 + hudHeight + 1
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.moveProcessed = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.eng.Finished() {
		// Will be reset by platform
		return core.StepResult{State: g.State()}
	}

	var dir engine.Direction
	moved := false

	switch {
	case in.Has(core.ActionUp):
		dir = engine.DirUp
		moved = true
	case in.Has(core.ActionDown):
		dir = engine.DirDown
		moved = true
	case in.Has(core.ActionLeft):
		dir = engine.DirLeft
		moved = true
	case in.Has(core.ActionRight):
		dir = engine.DirRight
		moved = true
	}

	if moved && !g.moveProcessed {
		g.eng.ApplyMove(dir)
		g.moveProcessed = true
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.eng.Score(),
		GameOver: g.eng.Finished(),
		Won:      g.eng.Won(),
		Paused:   g.paused || g.tooSmall,
	}
}

// BoardSize returns the grid dimension of the running game.
func (g *Game) BoardSize() int {
	return g.boardSize
}

// MaxTile returns the highest tile currently on the board.
func (g *Game) MaxTile() int {
	return g.eng.Board().MaxTile()
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD/HJKL: Move | P: Pause | R: Restart | Q: Quit"
}
