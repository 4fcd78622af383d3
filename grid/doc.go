// Package grid models the static obstacle board of the pursuit simulation.
//
// What:
//
//   - Grid is a fixed-size height×width board; each cell is Empty or Full.
//   - Coordinates are (row, col), 0-indexed; Cell carries no identity beyond them.
//   - FourNeighbors / EightNeighbors enumerate in-bounds neighbors in a fixed order.
//   - OpenRegions groups Empty cells into connected regions (Conn4 or Conn8).
//
// Why:
//
//   - Distance fields expand over Empty cells only (four-way).
//   - Humans choose among eight-way moves, zombies among four-way moves.
//   - Region analysis reveals boards partitioned by obstacles.
//
// Complexity:
//
//   - IsEmpty, SetFull, SetEmpty, InBounds: O(1).
//   - Clear, Clone: O(H×W).
//   - OpenRegions: O(H×W×d), Memory: O(H×W)   (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid:   New called with height < 1 or width < 1.
//   - ErrOutOfBounds: a coordinate lies outside [0,height)×[0,width).
package grid
