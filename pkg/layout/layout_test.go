package layout

import "testing"

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{2.5, 3},
		{-2.5, -2},
		{2.4, 2},
		{2.6, 3},
		{0, 0},
		{0.5, 1},
		{-0.5, 0},
		{-2.6, -3},
		{1.4142135623730951, 1},
		{2.23606797749979, 2},
	}

	for _, tt := range tests {
		if got := RoundHalfUp(tt.in); got != tt.want {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewGrid_Sizes(t *testing.T) {
	tests := []struct {
		n, rows, cols int
	}{
		{1, 1, 1},
		{2, 1, 2},
		{3, 2, 2},
		{4, 2, 2},
		{5, 2, 3},
		{6, 2, 3},
		{7, 3, 3},
		{9, 3, 3},
		{10, 3, 4},
	}

	for _, tt := range tests {
		g := NewGrid(tt.n, false)
		if g.Rows != tt.rows || g.Cols != tt.cols {
			t.Errorf("NewGrid(%d) = %dx%d, want %dx%d", tt.n, g.Rows, g.Cols, tt.rows, tt.cols)
		}
	}
}

func TestNewGrid_NoEmptyRow(t *testing.T) {
	for n := 1; n <= 200; n++ {
		g := NewGrid(n, true)
		if g.Rows*g.Cols < n {
			t.Errorf("n=%d: %dx%d grid too small", n, g.Rows, g.Cols)
		}
		if g.Rows*g.Cols-g.Cols >= n {
			t.Errorf("n=%d: %dx%d grid has an empty row", n, g.Rows, g.Cols)
		}
	}
}

func TestGrid_SharedTicks(t *testing.T) {
	g := NewGrid(4, true)
	want := []struct{ hideX, hideY bool }{
		{true, false},
		{true, true},
		{false, false},
		{false, true},
	}

	for i, c := range g.Cells() {
		if c.HideXTicks != want[i].hideX || c.HideYTicks != want[i].hideY {
			t.Errorf("cell %d hides x=%v y=%v, want x=%v y=%v",
				c.Index, c.HideXTicks, c.HideYTicks, want[i].hideX, want[i].hideY)
		}
	}
}

func TestGrid_PartialLastRow(t *testing.T) {
	// 2x3 grid holding 5 plots: cell 3 has no cell below it.
	g := NewGrid(5, true)
	hideX := []bool{true, true, false, false, false}
	for i, c := range g.Cells() {
		if c.HideXTicks != hideX[i] {
			t.Errorf("cell %d HideXTicks = %v, want %v", c.Index, c.HideXTicks, hideX[i])
		}
	}
}

func TestGrid_NoShare(t *testing.T) {
	for _, c := range NewGrid(6, false).Cells() {
		if c.HideXTicks || c.HideYTicks {
			t.Errorf("cell %d hides ticks without sharing", c.Index)
		}
	}
}

func TestGrid_SingleColumn(t *testing.T) {
	// A lone shared plot is in the first column and has nothing below it.
	c := NewGrid(1, true).Cell(1)
	if c.HideXTicks || c.HideYTicks {
		t.Errorf("single cell hides x=%v y=%v, want neither", c.HideXTicks, c.HideYTicks)
	}
}

func TestGrid_CellPosition(t *testing.T) {
	c := NewGrid(5, false).Cell(5)
	if c.Row != 1 || c.Col != 1 {
		t.Errorf("Cell(5) at row %d col %d, want 1,1", c.Row, c.Col)
	}
}

func TestGrid_FigureWidth(t *testing.T) {
	if w := NewGrid(6, false).FigureWidth(4); w != 6 {
		t.Errorf("FigureWidth(4) = %v, want 6", w)
	}
	if w := NewGrid(1, false).FigureWidth(4); w != 4 {
		t.Errorf("FigureWidth(4) = %v, want 4", w)
	}
}
