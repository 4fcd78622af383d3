// Package render draws a simulation as ASCII frames.
package render

import (
	"bufio"
	"io"
	"iter"

	"github.com/katalvlaran/apocalypse/apocalypse"
	"github.com/katalvlaran/apocalypse/grid"
)

// Glyphs used by Frame. They match the scenario map format.
const (
	Empty    = '.'
	Obstacle = '#'
	Zombie   = 'Z'
	Human    = 'H'
	Both     = 'B'
)

// Frame writes one line per grid row. An entity glyph hides an obstacle
// underneath it; a zombie and a human on one cell print as Both.
func Frame(w io.Writer, sim *apocalypse.Simulation) error {
	g := sim.Grid()
	canvas := make([][]byte, g.Height())
	for r := range canvas {
		canvas[r] = make([]byte, g.Width())
		for c := range canvas[r] {
			canvas[r][c] = Empty
			if !g.IsEmpty(r, c) {
				canvas[r][c] = Obstacle
			}
		}
	}
	paint(canvas, sim.Humans(), Human, Zombie)
	paint(canvas, sim.Zombies(), Zombie, Human)

	bw := bufio.NewWriter(w)
	for _, row := range canvas {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func paint(canvas [][]byte, cells iter.Seq[grid.Cell], glyph, other byte) {
	for c := range cells {
		if canvas[c.Row][c.Col] == other || canvas[c.Row][c.Col] == Both {
			canvas[c.Row][c.Col] = Both
			continue
		}
		canvas[c.Row][c.Col] = glyph
	}
}
