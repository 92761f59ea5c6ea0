// Package layout arranges the plots of a graph into a near-square grid.
//
// Cells are numbered from 1 in row-major order. When axes are shared, tick
// labels are hidden on every cell that has another cell directly below it
// (x) and on every cell outside the first column (y).
package layout

import "math"

// RoundHalfUp rounds x to the nearest integer, settling ties upward.
// Unlike math.Round, RoundHalfUp(-2.5) is -2.
func RoundHalfUp(x float64) float64 {
	fl := math.Floor(x)
	if x-fl < 0.5 {
		return fl
	}
	return fl + 1
}

// Grid is the subplot arrangement for n plots.
type Grid struct {
	Rows  int
	Cols  int
	N     int
	Share bool
}

// NewGrid returns the grid for n plots: rows is sqrt(n) rounded half up and
// cols is just enough to fit the rest, so no row is left empty. n must be at
// least 1.
func NewGrid(n int, share bool) Grid {
	if n < 1 {
		n = 1
	}
	rows := int(RoundHalfUp(math.Sqrt(float64(n))))
	cols := (n + rows - 1) / rows
	return Grid{Rows: rows, Cols: cols, N: n, Share: share}
}

// Cell describes one subplot of a grid.
type Cell struct {
	Index      int // 1-based, row-major
	Row, Col   int // 0-based
	HideXTicks bool
	HideYTicks bool
}

// Cell returns the cell for the 1-based index i.
func (g Grid) Cell(i int) Cell {
	return Cell{
		Index:      i,
		Row:        (i - 1) / g.Cols,
		Col:        (i - 1) % g.Cols,
		HideXTicks: g.Share && i+g.Cols <= g.N,
		HideYTicks: g.Share && (i-1)%g.Cols != 0,
	}
}

// Cells returns all n cells in drawing order.
func (g Grid) Cells() []Cell {
	cells := make([]Cell, g.N)
	for i := range cells {
		cells[i] = g.Cell(i + 1)
	}
	return cells
}

// FigureWidth returns the figure width that keeps subplots square for the
// given figure height.
func (g Grid) FigureWidth(height float64) float64 {
	return height / float64(g.Rows) * float64(g.Cols)
}
