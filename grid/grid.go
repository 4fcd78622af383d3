package grid

import "fmt"

// New constructs an all-EMPTY Grid of the given size.
// Returns ErrEmptyGrid if height or width is less than one.
// Complexity: O(H×W) time and memory.
func New(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, height, width)
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]State, height*width),
	}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Cell) bool {
	return g.InBounds(c.Row, c.Col)
}

// Check returns nil when (row,col) is in bounds, or ErrOutOfBounds wrapped
// with the coordinate and the board size.
func (g *Grid) Check(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) not in %d×%d", ErrOutOfBounds, row, col, g.height, g.width)
	}
	return nil
}

// State returns the state of (row,col).
func (g *Grid) State(row, col int) (State, error) {
	if err := g.Check(row, col); err != nil {
		return Empty, err
	}
	return g.cells[g.index(row, col)], nil
}

// IsEmpty reports whether (row,col) is an in-bounds EMPTY cell.
// Out-of-range coordinates are never empty.
func (g *Grid) IsEmpty(row, col int) bool {
	return g.InBounds(row, col) && g.cells[g.index(row, col)] == Empty
}

// SetFull marks (row,col) as an obstacle.
func (g *Grid) SetFull(row, col int) error {
	return g.set(row, col, Full)
}

// SetEmpty clears an obstacle at (row,col).
func (g *Grid) SetEmpty(row, col int) error {
	return g.set(row, col, Empty)
}

func (g *Grid) set(row, col int, s State) error {
	if err := g.Check(row, col); err != nil {
		return err
	}
	g.cells[g.index(row, col)] = s
	return nil
}

// Clear resets every cell to EMPTY.
// Complexity: O(H×W).
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]State, len(g.cells))
	copy(cells, g.cells)
	return &Grid{height: g.height, width: g.width, cells: cells}
}

// FourNeighbors returns the in-bounds orthogonal neighbors of (row,col)
// in the order up, down, left, right.
func (g *Grid) FourNeighbors(row, col int) []Cell {
	return g.neighbors(row, col, offsets4)
}

// EightNeighbors returns the in-bounds orthogonal and diagonal neighbors of
// (row,col): the FourNeighbors order followed by up-left, up-right,
// down-left, down-right.
func (g *Grid) EightNeighbors(row, col int) []Cell {
	return g.neighbors(row, col, offsets8)
}

// Neighbors dispatches to FourNeighbors or EightNeighbors by conn.
func (g *Grid) Neighbors(row, col int, conn Connectivity) []Cell {
	if conn == Conn8 {
		return g.EightNeighbors(row, col)
	}
	return g.FourNeighbors(row, col)
}

func (g *Grid) neighbors(row, col int, offsets [][2]int) []Cell {
	out := make([]Cell, 0, len(offsets))
	for _, d := range offsets {
		r, c := row+d[0], col+d[1]
		if g.InBounds(r, c) {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

// index maps (row,col) to a row-major index: row*width + col.
// Complexity: O(1).
func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) coordinate(idx int) Cell {
	return Cell{Row: idx / g.width, Col: idx % g.width}
}
