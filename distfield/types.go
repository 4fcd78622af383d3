// Package distfield defines the Field type and sentinel errors for
// multi-source distance fields over a grid.Grid.
package distfield

import (
	"errors"

	"github.com/katalvlaran/apocalypse/grid"
)

// Sentinel errors for distance-field computation.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("distfield: grid is nil")
)

// Field is a dense height×width array of four-way shortest distances from
// the nearest source cell. Unreachable cells hold Sentinel(), which equals
// height*width and exceeds every attainable distance. A Field is never
// mutated after Compute returns it.
type Field struct {
	height, width int
	dist          []int
}

// Height returns the number of rows.
func (f *Field) Height() int { return f.height }

// Width returns the number of columns.
func (f *Field) Width() int { return f.width }

// Sentinel returns the "unreachable" value, height*width.
func (f *Field) Sentinel() int { return f.height * f.width }

// At returns the distance stored at (row,col). The caller must pass an
// in-bounds coordinate; use Matches and grid.Grid.Check to validate first.
func (f *Field) At(row, col int) int {
	return f.dist[row*f.width+col]
}

// Cell returns the distance stored at c.
func (f *Field) Cell(c grid.Cell) int {
	return f.At(c.Row, c.Col)
}

// Reachable reports whether (row,col) was reached from some source.
func (f *Field) Reachable(row, col int) bool {
	return f.At(row, col) < f.Sentinel()
}

// Matches reports whether f has the same dimensions as g.
func (f *Field) Matches(g *grid.Grid) bool {
	return g != nil && f.height == g.Height() && f.width == g.Width()
}

// Rows returns a copy of the field as a [row][col] slice.
func (f *Field) Rows() [][]int {
	rows := make([][]int, f.height)
	for r := range rows {
		rows[r] = make([]int, f.width)
		copy(rows[r], f.dist[r*f.width:(r+1)*f.width])
	}
	return rows
}
