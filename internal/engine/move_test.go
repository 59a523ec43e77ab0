package engine

import "testing"

// boardFrom builds a board from row-major values, failing the test on a
// malformed grid.
func boardFrom(t *testing.T, values [][]int) *Board {
	t.Helper()
	b := NewBoard(len(values))
	if err := b.SetValues(values); err != nil {
		t.Fatalf("SetValues() failed: %v", err)
	}
	return b
}

func assertValues(t *testing.T, b *Board, want [][]int) {
	t.Helper()
	got := b.Values()
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Fatalf("board mismatch at (%d,%d): got %d, want %d\ngot: %v\nwant: %v",
					x, y, got[y][x], want[y][x], got, want)
			}
		}
	}
}

func TestResolveDirections(t *testing.T) {
	tests := []struct {
		name    string
		board   [][]int
		dir     Direction
		want    [][]int
		score   int
		changed bool
	}{
		{
			name: "left merges adjacent pair",
			board: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			dir: DirLeft,
			want: [][]int{
				{4, 0, 0, 0},
				{8, 0, 0, 0},
				{4, 4, 0, 0},
				{2, 0, 0, 0},
			},
			score:   20,
			changed: true,
		},
		{
			name: "right merges nearest edge first",
			board: [][]int{
				{2, 2, 0, 0},
				{4, 0, 4, 0},
				{2, 2, 2, 2},
				{0, 0, 0, 2},
			},
			dir: DirRight,
			want: [][]int{
				{0, 0, 0, 4},
				{0, 0, 0, 8},
				{0, 0, 4, 4},
				{0, 0, 0, 2},
			},
			score:   20,
			changed: true,
		},
		{
			name: "up compacts columns",
			board: [][]int{
				{2, 4, 2, 0},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 2},
			},
			dir: DirUp,
			want: [][]int{
				{4, 8, 4, 2},
				{0, 0, 4, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   20,
			changed: true,
		},
		{
			name: "down compacts columns",
			board: [][]int{
				{2, 4, 2, 2},
				{2, 0, 2, 0},
				{0, 4, 2, 0},
				{0, 0, 2, 0},
			},
			dir: DirDown,
			want: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 4, 0},
				{4, 8, 4, 2},
			},
			score:   20,
			changed: true,
		},
		{
			name: "already compacted is a no-op",
			board: [][]int{
				{4, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			dir: DirLeft,
			want: [][]int{
				{4, 2, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
			score:   0,
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.board)
			score, changed, err := b.Resolve(tt.dir)
			if err != nil {
				t.Fatalf("Resolve(%v) failed: %v", tt.dir, err)
			}
			assertValues(t, b, tt.want)
			if score != tt.score {
				t.Errorf("Resolve(%v) score = %d, want %d", tt.dir, score, tt.score)
			}
			if changed != tt.changed {
				t.Errorf("Resolve(%v) changed = %v, want %v", tt.dir, changed, tt.changed)
			}
		})
	}
}

func TestResolveSmallBoardLeft(t *testing.T) {
	b := boardFrom(t, [][]int{
		{2, 2, 0},
		{0, 0, 0},
		{0, 0, 0},
	})

	score, changed, err := b.Resolve(DirLeft)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	assertValues(t, b, [][]int{
		{4, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	if score != 4 {
		t.Errorf("score = %d, want 4", score)
	}
	if !changed {
		t.Error("Resolve should report the board changed")
	}
}

func TestResolveRightNearestEdgePriority(t *testing.T) {
	// The rightmost pair merges first; the leftover 2 shifts right but
	// must not merge into the freshly created 4.
	b := boardFrom(t, [][]int{
		{2, 0, 2, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	score, changed, err := b.Resolve(DirRight)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	assertValues(t, b, [][]int{
		{0, 0, 2, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if score != 4 {
		t.Errorf("score = %d, want 4", score)
	}
	if !changed {
		t.Error("Resolve should report the board changed")
	}
}

func TestResolveSingleMergePerTile(t *testing.T) {
	tests := []struct {
		name  string
		row   []int
		want  []int
		score int
	}{
		{
			name:  "four equal tiles become two pairs",
			row:   []int{4, 4, 4, 4},
			want:  []int{8, 8, 0, 0},
			score: 16,
		},
		{
			name:  "merge result does not chain into following tile",
			row:   []int{2, 2, 4, 0},
			want:  []int{4, 4, 0, 0},
			score: 4,
		},
		{
			name:  "three equal tiles merge nearest edge pair only",
			row:   []int{2, 2, 2, 0},
			want:  []int{4, 2, 0, 0},
			score: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := [][]int{tt.row, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
			b := boardFrom(t, values)

			score, _, err := b.Resolve(DirLeft)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}

			want := [][]int{tt.want, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
			assertValues(t, b, want)
			if score != tt.score {
				t.Errorf("score = %d, want %d", score, tt.score)
			}
		})
	}
}

func TestResolveNoChangeLeavesBoardIdentical(t *testing.T) {
	values := [][]int{
		{2, 4, 8, 16},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	b := boardFrom(t, values)
	before := b.Values()

	_, changed, err := b.Resolve(DirLeft)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if changed {
		t.Fatal("Resolve reported change on an immovable board")
	}
	assertValues(t, b, before)
}

func TestResolveConservation(t *testing.T) {
	// Merging two tiles of value v removes 2v and adds one tile of 2v:
	// the total tile value on the board is invariant under any move.
	boards := [][][]int{
		{
			{2, 2, 4, 4},
			{8, 0, 8, 2},
			{2, 4, 2, 4},
			{16, 16, 0, 2},
		},
		{
			{2, 0, 0, 2},
			{0, 4, 4, 0},
			{2, 2, 2, 2},
			{0, 0, 0, 0},
		},
	}
	dirs := []Direction{DirUp, DirDown, DirLeft, DirRight}

	sum := func(b *Board) int {
		total := 0
		for _, row := range b.Values() {
			for _, v := range row {
				total += v
			}
		}
		return total
	}

	for _, values := range boards {
		for _, dir := range dirs {
			b := boardFrom(t, values)
			before := sum(b)

			score, _, err := b.Resolve(dir)
			if err != nil {
				t.Fatalf("Resolve(%v) failed: %v", dir, err)
			}
			if after := sum(b); after != before {
				t.Errorf("Resolve(%v) changed total tile value: %d -> %d", dir, before, after)
			}
			if score < 0 {
				t.Errorf("Resolve(%v) returned negative score %d", dir, score)
			}
		}
	}
}

func TestResolveInvalidDirection(t *testing.T) {
	b := NewBoard(4)
	b.Set(0, 0, 2)

	_, _, err := b.Resolve(Direction(42))
	if err != ErrInvalidDirection {
		t.Errorf("Resolve(invalid) error = %v, want ErrInvalidDirection", err)
	}
}

func TestDirectionString(t *testing.T) {
	dirs := map[Direction]string{
		DirUp:          "Up",
		DirDown:        "Down",
		DirLeft:        "Left",
		DirRight:       "Right",
		Direction(999): "Unknown",
	}
	for dir, want := range dirs {
		if got := dir.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", dir, got, want)
		}
	}
}
