// Package engine implements the 2048 board engine: move resolution with
// single-merge-per-tile semantics, weighted tile spawning, and terminal
// state detection. It contains no I/O and no external dependencies; the
// platform layer drives it through Game and reads state through Snapshot.
package engine

import "fmt"

// MinBoardSize is the smallest playable board dimension.
const MinBoardSize = 2

// DefaultBoardSize is the classic 4x4 board.
const DefaultBoardSize = 4

// Cell is a single grid position. Value zero means empty; any non-zero
// value is a power of two. The merged flag marks a tile that already
// combined during the current move so it cannot merge twice; it is cleared
// by ClearMergeFlags before the next move is accepted.
type Cell struct {
	Value  int
	merged bool
}

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Board is an NxN grid of cells. Coordinates are (x, y) with (0, 0) at the
// top-left; all access must satisfy 0 <= x, y < Size. Out-of-range access
// is a programming error and panics.
type Board struct {
	size  int
	cells [][]Cell
}

// NewBoard creates an empty size x size board. Size below MinBoardSize
// panics; callers that take size from user input validate through NewGame.
func NewBoard(size int) *Board {
	if size < MinBoardSize {
		panic(fmt.Sprintf("engine: board size %d below minimum %d", size, MinBoardSize))
	}
	cells := make([][]Cell, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
	}
	return &Board{size: size, cells: cells}
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// At returns the cell at (x, y).
func (b *Board) At(x, y int) Cell {
	return b.cells[y][x]
}

// Set places a tile value at (x, y), clearing any merge flag there.
func (b *Board) Set(x, y, value int) {
	b.cells[y][x] = Cell{Value: value}
}

// IsEmpty reports whether the cell at (x, y) holds no tile.
func (b *Board) IsEmpty(x, y int) bool {
	return b.cells[y][x].Value == 0
}

// IsFull reports whether every cell holds a tile.
func (b *Board) IsFull() bool {
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].Value == 0 {
				return false
			}
		}
	}
	return true
}

// ClearMergeFlags resets the per-move merge flag on every cell. Called once
// per resolved move, after spawning and before the next move is accepted.
func (b *Board) ClearMergeFlags() {
	for y := range b.cells {
		for x := range b.cells[y] {
			b.cells[y][x].merged = false
		}
	}
}

// EmptyCells returns the coordinates of every empty cell.
func (b *Board) EmptyCells() []Point {
	var empty []Point
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].Value == 0 {
				empty = append(empty, Point{X: x, Y: y})
			}
		}
	}
	return empty
}

// HasAdjacentPair reports whether any two axis-adjacent cells hold the same
// non-zero value. Checking right and down neighbors covers every pair.
func (b *Board) HasAdjacentPair() bool {
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			v := b.cells[y][x].Value
			if v == 0 {
				continue
			}
			if x < b.size-1 && b.cells[y][x+1].Value == v {
				return true
			}
			if y < b.size-1 && b.cells[y+1][x].Value == v {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any move can still change the board: true while
// an empty cell or an adjacent equal pair exists. This is the authoritative
// "no legal move remains" condition when it returns false.
func (b *Board) CanMove() bool {
	if !b.IsFull() {
		return true
	}
	return b.HasAdjacentPair()
}

// MaxTile returns the largest tile value on the board, zero when empty.
func (b *Board) MaxTile() int {
	maxVal := 0
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].Value > maxVal {
				maxVal = b.cells[y][x].Value
			}
		}
	}
	return maxVal
}

// Values returns a row-major copy of the tile values. Mutating the copy
// does not affect the board.
func (b *Board) Values() [][]int {
	values := make([][]int, b.size)
	for y := range values {
		values[y] = make([]int, b.size)
		for x := range values[y] {
			values[y][x] = b.cells[y][x].Value
		}
	}
	return values
}

// SetValues replaces the board contents from a row-major value grid.
// The grid must be exactly Size x Size. Merge flags are cleared.
func (b *Board) SetValues(values [][]int) error {
	if len(values) != b.size {
		return fmt.Errorf("engine: value grid has %d rows, board needs %d", len(values), b.size)
	}
	for y, row := range values {
		if len(row) != b.size {
			return fmt.Errorf("engine: value grid row %d has %d cells, board needs %d", y, len(row), b.size)
		}
	}
	for y, row := range values {
		for x, v := range row {
			b.cells[y][x] = Cell{Value: v}
		}
	}
	return nil
}

// Equal reports whether two boards hold identical tile values.
func (b *Board) Equal(other *Board) bool {
	if b.size != other.size {
		return false
	}
	for y := range b.cells {
		for x := range b.cells[y] {
			if b.cells[y][x].Value != other.cells[y][x].Value {
				return false
			}
		}
	}
	return true
}
