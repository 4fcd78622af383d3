package distfield_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/apocalypse/distfield"
	"github.com/katalvlaran/apocalypse/grid"
)

// BenchmarkCompute measures a 200×200 board with 20% obstacles and 50 sources.
// Complexity: O(H×W)
func BenchmarkCompute(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(42))
	g, err := grid.New(n, n)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if rng.Intn(5) == 0 {
				_ = g.SetFull(r, c)
			}
		}
	}
	sources := make([]grid.Cell, 50)
	for i := range sources {
		sources[i] = grid.Cell{Row: rng.Intn(n), Col: rng.Intn(n)}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = distfield.Compute(g, sources)
	}
}
