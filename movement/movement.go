// Package movement implements the two pursuit policies driven by distance
// fields: humans flee zombies with eight-way moves, zombies chase humans
// with four-way moves.
package movement

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/apocalypse/distfield"
	"github.com/katalvlaran/apocalypse/grid"
)

// Sentinel errors for movement policies.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("movement: grid is nil")
	// ErrNilField is returned if a nil distance field is passed.
	ErrNilField = errors.New("movement: distance field is nil")
	// ErrFieldShape indicates a field whose dimensions differ from the grid.
	ErrFieldShape = errors.New("movement: distance field does not match grid dimensions")
)

// Picker chooses an index in [0,n). *rand.Rand satisfies it.
type Picker interface {
	Intn(n int) int
}

// objective decides whether candidate value v improves on best.
type objective func(v, best int) bool

func farther(v, best int) bool { return v > best }
func closer(v, best int) bool  { return v < best }

// Flee moves every human away from the zombies described by zombieField.
// For each human, in order, the candidates are staying put plus every Empty
// eight-way neighbor; all candidates with the maximal field value form the
// tie set and p picks one uniformly. Output index i is the next position of
// input index i. Humans never see each other's moves, so several may land
// on the same cell.
func Flee(g *grid.Grid, humans []grid.Cell, zombieField *distfield.Field, p Picker) ([]grid.Cell, error) {
	return step(g, humans, zombieField, p, grid.Conn8, farther)
}

// Chase moves every zombie toward the humans described by humanField, using
// Empty four-way neighbors and minimizing the field value. Ties are broken
// uniformly by p, exactly as in Flee.
func Chase(g *grid.Grid, zombies []grid.Cell, humanField *distfield.Field, p Picker) ([]grid.Cell, error) {
	return step(g, zombies, humanField, p, grid.Conn4, closer)
}

// step applies one policy to every entity. It fails before drawing any
// random number if an input is invalid, so p is consumed only on success
// and exactly once per entity, in list order.
func step(g *grid.Grid, entities []grid.Cell, f *distfield.Field, p Picker, conn grid.Connectivity, better objective) ([]grid.Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if f == nil {
		return nil, ErrNilField
	}
	if !f.Matches(g) {
		return nil, fmt.Errorf("%w: field %d×%d, grid %d×%d",
			ErrFieldShape, f.Height(), f.Width(), g.Height(), g.Width())
	}
	for i, e := range entities {
		if err := g.Check(e.Row, e.Col); err != nil {
			return nil, fmt.Errorf("movement: entity %d: %w", i, err)
		}
	}

	next := make([]grid.Cell, len(entities))
	ties := make([]grid.Cell, 0, 9)
	for i, e := range entities {
		best := f.Cell(e)
		ties = append(ties[:0], e)
		for _, m := range g.Neighbors(e.Row, e.Col, conn) {
			if !g.IsEmpty(m.Row, m.Col) {
				continue
			}
			switch v := f.Cell(m); {
			case better(v, best):
				best = v
				ties = append(ties[:0], m)
			case v == best:
				ties = append(ties, m)
			}
		}
		next[i] = ties[p.Intn(len(ties))]
	}
	return next, nil
}
