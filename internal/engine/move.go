package engine

import "errors"

// Direction is one of the four move directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// ErrInvalidDirection is returned when a move uses a direction value
// outside the four defined constants. The input layer filters keys before
// calling the engine, so seeing this error means a caller bug.
var ErrInvalidDirection = errors.New("engine: invalid direction")

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// delta returns the per-step offset a tile travels in this direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	}
	return 0, 0
}

// Resolve shifts and merges all tiles in the given direction. It returns
// the score gained from merges and whether any cell value changed.
//
// The sweep starts at the row or column adjacent to the target edge and
// walks away from it, so merges along a line resolve nearest-edge-first and
// a tile can never combine with a second tile behind one it just merged
// with. Each tile walks step by step toward the edge: into an empty cell it
// keeps going, onto an equal unmerged tile it merges exactly once (the
// merge flag blocks a second merge this move), anything else blocks it.
//
// Resolve does not clear merge flags; callers clear them via
// ClearMergeFlags after spawning, before accepting the next move.
func (b *Board) Resolve(dir Direction) (score int, changed bool, err error) {
	dx, dy := dir.delta()

	switch dir {
	case DirUp:
		for x := 0; x < b.size; x++ {
			for y := 1; y < b.size; y++ {
				s, c := b.walkTile(x, y, dx, dy)
				score += s
				changed = changed || c
			}
		}
	case DirDown:
		for x := 0; x < b.size; x++ {
			for y := b.size - 2; y >= 0; y-- {
				s, c := b.walkTile(x, y, dx, dy)
				score += s
				changed = changed || c
			}
		}
	case DirLeft:
		for y := 0; y < b.size; y++ {
			for x := 1; x < b.size; x++ {
				s, c := b.walkTile(x, y, dx, dy)
				score += s
				changed = changed || c
			}
		}
	case DirRight:
		for y := 0; y < b.size; y++ {
			for x := b.size - 2; x >= 0; x-- {
				s, c := b.walkTile(x, y, dx, dy)
				score += s
				changed = changed || c
			}
		}
	default:
		return 0, false, ErrInvalidDirection
	}

	return score, changed, nil
}

// walkTile propagates the tile at (x, y) one step at a time toward the
// target edge until it merges, is blocked, or reaches the boundary.
func (b *Board) walkTile(x, y, dx, dy int) (score int, changed bool) {
	for {
		cur := b.cells[y][x]
		if cur.Value == 0 {
			return score, changed
		}

		nx, ny := x+dx, y+dy
		if nx < 0 || nx >= b.size || ny < 0 || ny >= b.size {
			return score, changed
		}

		next := &b.cells[ny][nx]
		switch {
		case next.Value == 0:
			*next = cur
			b.cells[y][x] = Cell{}
			x, y = nx, ny
			changed = true

		case next.Value == cur.Value && !next.merged && !cur.merged:
			next.Value *= 2
			next.merged = true
			b.cells[y][x] = Cell{}
			score += next.Value
			changed = true
			return score, changed

		default:
			return score, changed
		}
	}
}
