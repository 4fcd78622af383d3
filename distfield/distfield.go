// Package distfield computes multi-source breadth-first distance fields over
// a grid.Grid, using four-way moves and treating Full cells as impassable.
package distfield

import (
	"fmt"

	"github.com/katalvlaran/apocalypse/grid"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid    *grid.Grid
	queue   []grid.Cell
	visited []bool
	field   *Field
}

// Compute runs a multi-source BFS on g from every cell in sources and
// returns the resulting Field.
//
// All sources are marked visited and set to distance 0 before the first
// dequeue, so duplicate sources are harmless. Every source is bounds-checked
// first; an out-of-range source yields grid.ErrOutOfBounds and no field.
// An empty source list yields a field holding only the sentinel.
//
// Complexity: O(H×W) time and memory.
func Compute(g *grid.Grid, sources []grid.Cell) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for i, s := range sources {
		if err := g.Check(s.Row, s.Col); err != nil {
			return nil, fmt.Errorf("distfield: source %d: %w", i, err)
		}
	}

	n := g.Height() * g.Width()
	w := &walker{
		grid:    g,
		queue:   make([]grid.Cell, 0, n),
		visited: make([]bool, n),
		field: &Field{
			height: g.Height(),
			width:  g.Width(),
			dist:   make([]int, n),
		},
	}
	sentinel := w.field.Sentinel()
	for i := range w.field.dist {
		w.field.dist[i] = sentinel
	}

	// Sources are seeded without consulting the obstacle state, so an entity
	// standing on a Full cell still reads 0. Only expansion checks obstacles.
	for _, s := range sources {
		w.mark(s, 0)
		w.queue = append(w.queue, s)
	}
	w.loop()

	return w.field, nil
}

// mark records c as visited at distance d.
func (w *walker) mark(c grid.Cell, d int) {
	i := c.Row*w.field.width + c.Col
	w.visited[i] = true
	w.field.dist[i] = d
}

// loop processes the queue until empty.
func (w *walker) loop() {
	for qi := 0; qi < len(w.queue); qi++ {
		cur := w.queue[qi]
		next := w.field.Cell(cur) + 1
		for _, nbr := range w.grid.FourNeighbors(cur.Row, cur.Col) {
			if w.visited[nbr.Row*w.field.width+nbr.Col] || !w.grid.IsEmpty(nbr.Row, nbr.Col) {
				continue
			}
			w.mark(nbr, next)
			w.queue = append(w.queue, nbr)
		}
	}
}
