// Package distfield computes breadth-first distance fields on an obstacle grid.
//
// What
//
//   - Compute seeds a FIFO queue with every source cell at distance 0, then
//     expands four-way into unvisited Empty cells, one layer at a time.
//   - The result is a Field: one non-negative int per grid cell holding the
//     shortest four-way, obstacle-respecting distance to the nearest source.
//   - Cells never reached keep Field.Sentinel() == height*width.
//
// Why
//
//   - Zombies descend the human field; humans climb the zombie field.
//   - A single BFS from all sources gives the pointwise minimum of all
//     single-source fields in the cost of one traversal.
//
// Determinism
//
//	Distance values do not depend on source order: every cell of layer k is
//	dequeued before any cell of layer k+1.
//
// Sources on obstacles
//
//	Sources are never checked against the obstacle state. A source on a Full
//	cell reads 0 and expands normally into its Empty neighbors, while Full
//	non-source cells keep the sentinel.
//
// Complexity (H×W grid)
//
//   - Time:   O(H×W)
//   - Memory: O(H×W)   (queue, visited flags, distances)
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - grid.ErrOutOfBounds  (wrapped) if any source is off the grid.
package distfield
