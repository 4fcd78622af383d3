// Package grid defines core types, connectivity modes, and sentinel errors
// for the obstacle board shared by the distance-field and movement packages.
package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a board requested with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: board must have at least one row and one column")
	// ErrOutOfBounds indicates a coordinate outside [0,height)×[0,width).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// State is the obstacle state of a single cell.
type State uint8

const (
	// Empty cells are passable.
	Empty State = iota
	// Full cells are obstacles.
	Full
)

// String returns "empty" or "full".
func (s State) String() string {
	if s == Full {
		return "full"
	}
	return "empty"
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, left, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonal neighbors to Conn4.
	Conn8
)

// Cell is a (Row, Col) coordinate pair, 0-indexed.
// It has no identity beyond its coordinates.
type Cell struct {
	Row, Col int
}

// offsets4 and offsets8 are the neighbor deltas in enumeration order.
// The first four entries of offsets8 match offsets4.
var (
	offsets4 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Grid is a fixed-size rectangular board of EMPTY/FULL cells.
// Cells are stored row-major; Grid is not safe for concurrent mutation.
type Grid struct {
	height, width int
	cells         []State
}
