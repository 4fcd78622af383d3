// Package telemetry collects per-step pursuit statistics and writes them as
// CSV rows or structured log values.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/apocalypse/distfield"
	"github.com/katalvlaran/apocalypse/grid"
)

// StepStats summarizes how far the humans are from the zombies after a step.
// Distances are zombie-field values at each human's cell; humans the
// zombies cannot reach are counted in Unreachable and left out of the
// distance statistics.
type StepStats struct {
	Tick        int `csv:"tick"`
	Zombies     int `csv:"zombies"`
	Humans      int `csv:"humans"`
	Caught      int `csv:"caught"`      // humans sharing a cell with a zombie
	Unreachable int `csv:"unreachable"` // humans walled off from every zombie

	MeanDistance   float64 `csv:"mean_distance"`
	StdDevDistance float64 `csv:"stddev_distance"`
	MinDistance    int     `csv:"min_distance"`
	MaxDistance    int     `csv:"max_distance"`
}

// Collect computes StepStats for humans against zombieField. When no human
// is reachable the distance columns are zero.
func Collect(tick int, humans []grid.Cell, zombieField *distfield.Field, zombies int) StepStats {
	s := StepStats{Tick: tick, Zombies: zombies, Humans: len(humans)}
	if zombieField == nil {
		s.Unreachable = len(humans)
		return s
	}

	dists := make([]float64, 0, len(humans))
	for _, h := range humans {
		d := zombieField.Cell(h)
		if d >= zombieField.Sentinel() {
			s.Unreachable++
			continue
		}
		if d == 0 {
			s.Caught++
		}
		if len(dists) == 0 {
			s.MinDistance, s.MaxDistance = d, d
		}
		s.MinDistance = min(s.MinDistance, d)
		s.MaxDistance = max(s.MaxDistance, d)
		dists = append(dists, float64(d))
	}

	switch len(dists) {
	case 0:
	case 1:
		s.MeanDistance = dists[0]
	default:
		s.MeanDistance, s.StdDevDistance = stat.MeanStdDev(dists, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s StepStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", s.Tick),
		slog.Int("zombies", s.Zombies),
		slog.Int("humans", s.Humans),
		slog.Int("caught", s.Caught),
		slog.Int("unreachable", s.Unreachable),
		slog.Float64("mean_distance", s.MeanDistance),
		slog.Float64("stddev_distance", s.StdDevDistance),
		slog.Int("min_distance", s.MinDistance),
		slog.Int("max_distance", s.MaxDistance),
	)
}
