package engine

import "testing"

func TestCanMove(t *testing.T) {
	tests := []struct {
		name  string
		board [][]int
		want  bool
	}{
		{
			name: "full board with no adjacent pair",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: false,
		},
		{
			name: "full board with horizontal pair",
			board: [][]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "full board with vertical pair",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{32, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "board with an empty cell",
			board: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 0, 4096},
				{8192, 16384, 32768, 65536},
			},
			want: true,
		},
		{
			name: "empty board",
			board: [][]int{
				{0, 0},
				{0, 0},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardFrom(t, tt.board)
			if got := b.CanMove(); got != tt.want {
				t.Errorf("CanMove() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEmptyCells(t *testing.T) {
	b := boardFrom(t, [][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	})

	cells := b.EmptyCells()
	if len(cells) != 8 {
		t.Errorf("EmptyCells() count = %d, want 8", len(cells))
	}
	for _, p := range cells {
		if !b.IsEmpty(p.X, p.Y) {
			t.Errorf("EmptyCells() returned occupied cell (%d,%d)", p.X, p.Y)
		}
	}
}

func TestIsFull(t *testing.T) {
	b := boardFrom(t, [][]int{
		{2, 4},
		{8, 16},
	})
	if !b.IsFull() {
		t.Error("IsFull() = false on a full board")
	}

	b.Set(1, 0, 0)
	if b.IsFull() {
		t.Error("IsFull() = true with an empty cell")
	}
}

func TestMaxTile(t *testing.T) {
	b := boardFrom(t, [][]int{
		{2, 4, 8, 16},
		{32, 64, 128, 256},
		{512, 1024, 2048, 4},
		{8, 16, 32, 64},
	})
	if got := b.MaxTile(); got != 2048 {
		t.Errorf("MaxTile() = %d, want 2048", got)
	}

	if got := NewBoard(3).MaxTile(); got != 0 {
		t.Errorf("MaxTile() on empty board = %d, want 0", got)
	}
}

func TestClearMergeFlags(t *testing.T) {
	b := boardFrom(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	// A merge sets the flag on the target cell; a second resolve in the
	// same direction must be able to merge again once flags are cleared.
	if _, _, err := b.Resolve(DirLeft); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	b.Set(1, 0, 4)
	b.ClearMergeFlags()

	score, changed, err := b.Resolve(DirLeft)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if !changed || score != 8 {
		t.Errorf("after ClearMergeFlags: changed = %v, score = %d; want true, 8", changed, score)
	}
	assertValues(t, b, [][]int{
		{8, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
}

func TestMergeFlagBlocksSecondMergeWithoutClear(t *testing.T) {
	b := boardFrom(t, [][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	if _, _, err := b.Resolve(DirLeft); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	b.Set(1, 0, 4)

	// Flags not cleared: the fresh 4 may shift but not merge into the
	// flagged 4 at the edge.
	score, _, err := b.Resolve(DirLeft)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if score != 0 {
		t.Errorf("score = %d, want 0 (merge flag should block)", score)
	}
	assertValues(t, b, [][]int{
		{4, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
}

func TestSetValuesValidation(t *testing.T) {
	b := NewBoard(3)

	if err := b.SetValues([][]int{{1, 2}, {3, 4}}); err == nil {
		t.Error("SetValues() accepted a grid with the wrong row count")
	}
	if err := b.SetValues([][]int{{1, 2}, {3, 4}, {5, 6}}); err == nil {
		t.Error("SetValues() accepted a grid with short rows")
	}
}

func TestNewBoardPanicsBelowMinimum(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewBoard(1) did not panic")
		}
	}()
	NewBoard(1)
}

func TestEqual(t *testing.T) {
	a := boardFrom(t, [][]int{{2, 0}, {0, 4}})
	b := boardFrom(t, [][]int{{2, 0}, {0, 4}})
	c := boardFrom(t, [][]int{{2, 0}, {4, 0}})

	if !a.Equal(b) {
		t.Error("Equal() = false for identical boards")
	}
	if a.Equal(c) {
		t.Error("Equal() = true for different boards")
	}
	if a.Equal(NewBoard(3)) {
		t.Error("Equal() = true for boards of different size")
	}
}
