package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// DefaultSpawnFourChance is the probability that a spawned tile is a 4
// instead of a 2.
const DefaultSpawnFourChance = 0.11

// initialTiles is how many tiles a fresh game starts with.
const initialTiles = 2

// Game owns a single play-through: board, score, RNG, and the terminal
// flags. It is single-threaded by contract; callers serialize access. A new
// game is a wholesale replacement via NewGame, never an in-place re-init.
type Game struct {
	board           *Board
	rng             *rand.Rand
	score           int
	finished        bool
	won             bool
	goalTile        int
	spawnFourChance float64
	lastMoveChanged bool
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed fixes the RNG seed for deterministic play.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGoalTile sets the tile value that marks the game as won. Zero
// disables the win condition entirely, which is the default: the won flag
// then never becomes true. Reaching the goal does not stop play.
func WithGoalTile(target int) Option {
	return func(g *Game) {
		g.goalTile = target
	}
}

// WithSpawnFourChance overrides the probability of spawning a 4. Values
// outside [0, 1) fall back to the default.
func WithSpawnFourChance(chance float64) Option {
	return func(g *Game) {
		if chance < 0 || chance >= 1 {
			chance = DefaultSpawnFourChance
		}
		g.spawnFourChance = chance
	}
}

// NewGame starts a fresh game on a size x size board with the initial
// tiles spawned. Size below MinBoardSize is rejected.
func NewGame(size int, opts ...Option) (*Game, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("engine: board size must be at least %d, got %d", MinBoardSize, size)
	}

	g := &Game{
		board:           NewBoard(size),
		spawnFourChance: DefaultSpawnFourChance,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	for i := 0; i < initialTiles; i++ {
		g.SpawnTile()
	}

	return g, nil
}

// ApplyMove resolves one move. When the board changed it spawns a tile,
// clears merge flags, and re-evaluates the terminal condition. A finished
// game ignores moves and reports no change. The returned bool is true iff
// the move changed the board.
func (g *Game) ApplyMove(dir Direction) (bool, error) {
	if g.finished {
		return false, nil
	}

	score, changed, err := g.board.Resolve(dir)
	if err != nil {
		return false, err
	}

	g.lastMoveChanged = changed
	if !changed {
		return false, nil
	}

	g.score += score
	g.SpawnTile()
	g.board.ClearMergeFlags()

	if g.goalTile > 0 && g.board.MaxTile() >= g.goalTile {
		g.won = true
	}
	if !g.board.CanMove() {
		g.finished = true
	}

	return true, nil
}

// SpawnTile places a 2 or a 4 in a uniformly random empty cell. Sampling
// from the empty-cell list guarantees termination; on a full board this is
// a no-op returning false.
func (g *Game) SpawnTile() bool {
	empty := g.board.EmptyCells()
	if len(empty) == 0 {
		return false
	}

	p := empty[g.rng.Intn(len(empty))]
	value := 2
	if g.rng.Float64() < g.spawnFourChance {
		value = 4
	}
	g.board.Set(p.X, p.Y, value)
	return true
}

// Board exposes the underlying grid. The platform layer only reads it;
// mutation outside ApplyMove is reserved for tests.
func (g *Game) Board() *Board {
	return g.board
}

// Score returns the accumulated score. It never decreases.
func (g *Game) Score() int {
	return g.score
}

// Finished reports whether no legal move remains.
func (g *Game) Finished() bool {
	return g.finished
}

// Won reports whether the configured goal tile was reached.
func (g *Game) Won() bool {
	return g.won
}

// Snapshot is a read-only copy of everything the caller needs to render:
// grid values, score, and the terminal flags.
type Snapshot struct {
	Size            int
	Board           [][]int
	Score           int
	MaxTile         int
	Finished        bool
	Won             bool
	LastMoveChanged bool
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Size:            g.board.Size(),
		Board:           g.board.Values(),
		Score:           g.score,
		MaxTile:         g.board.MaxTile(),
		Finished:        g.finished,
		Won:             g.won,
		LastMoveChanged: g.lastMoveChanged,
	}
}
