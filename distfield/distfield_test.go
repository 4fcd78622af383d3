package distfield_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apocalypse/distfield"
	"github.com/katalvlaran/apocalypse/grid"
)

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// randomGrid returns an h×w grid with roughly density of its cells Full.
func randomGrid(t *testing.T, rng *rand.Rand, h, w int, density float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(h, w)
	require.NoError(t, err)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			if rng.Float64() < density {
				require.NoError(t, g.SetFull(r, c))
			}
		}
	}
	return g
}

func TestCompute_Errors(t *testing.T) {
	_, err := distfield.Compute(nil, nil)
	assert.ErrorIs(t, err, distfield.ErrNilGrid)

	g, _ := grid.New(2, 2)
	f, err := distfield.Compute(g, []grid.Cell{{0, 0}, {2, 0}})
	assert.Nil(t, f)
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = distfield.Compute(g, []grid.Cell{{0, -1}})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

// TestCompute_NoSources ensures an empty population degenerates to an all-sentinel field.
func TestCompute_NoSources(t *testing.T) {
	g, _ := grid.New(3, 4)
	f, err := distfield.Compute(g, nil)
	require.NoError(t, err)
	assert.Equal(t, 12, f.Sentinel())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			if f.At(r, c) != f.Sentinel() {
				t.Fatalf("At(%d,%d) = %d; want sentinel %d", r, c, f.At(r, c), f.Sentinel())
			}
			assert.False(t, f.Reachable(r, c))
		}
	}
}

// TestCompute_Manhattan checks that an obstacle-free single-source field is the Manhattan distance.
func TestCompute_Manhattan(t *testing.T) {
	g, _ := grid.New(5, 7)
	for _, src := range []grid.Cell{{0, 0}, {2, 3}, {4, 6}, {1, 5}} {
		f, err := distfield.Compute(g, []grid.Cell{src})
		require.NoError(t, err)
		for r := 0; r < 5; r++ {
			for c := 0; c < 7; c++ {
				want := abs(r-src.Row) + abs(c-src.Col)
				if got := f.At(r, c); got != want {
					t.Errorf("src %v: At(%d,%d) = %d; want %d", src, r, c, got, want)
				}
			}
		}
	}
}

// TestCompute_WallDetour forces a path around a wall.
//
// Board (# = obstacle, S = source):
//
//	S # .
//	. # .
//	. . .
//
// (0,2) is reached via (2,0)->(2,2): distance 6.
func TestCompute_WallDetour(t *testing.T) {
	g, _ := grid.New(3, 3)
	require.NoError(t, g.SetFull(0, 1))
	require.NoError(t, g.SetFull(1, 1))

	f, err := distfield.Compute(g, []grid.Cell{{0, 0}})
	require.NoError(t, err)

	want := [][]int{
		{0, 9, 6},
		{1, 9, 5},
		{2, 3, 4},
	}
	assert.Equal(t, want, f.Rows())
}

// TestCompute_EnclosedRegion leaves a walled-off cell at the sentinel.
func TestCompute_EnclosedRegion(t *testing.T) {
	g, _ := grid.New(3, 3)
	for _, c := range []grid.Cell{{0, 1}, {1, 0}, {1, 2}, {2, 1}} {
		require.NoError(t, g.SetFull(c.Row, c.Col))
	}
	f, err := distfield.Compute(g, []grid.Cell{{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0, f.At(0, 0))
	assert.False(t, f.Reachable(1, 1), "enclosed center must stay unreachable")
	assert.Equal(t, f.Sentinel(), f.At(2, 2))
}

// TestCompute_ObstaclesStaySentinel verifies Full non-source cells are never expanded into.
func TestCompute_ObstaclesStaySentinel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		g := randomGrid(t, rng, 8, 9, 0.3)
		src := grid.Cell{Row: rng.Intn(8), Col: rng.Intn(9)}
		f, err := distfield.Compute(g, []grid.Cell{src})
		require.NoError(t, err)
		for r := 0; r < 8; r++ {
			for c := 0; c < 9; c++ {
				if g.IsEmpty(r, c) || (grid.Cell{Row: r, Col: c}) == src {
					continue
				}
				if f.At(r, c) != f.Sentinel() {
					t.Fatalf("trial %d: obstacle (%d,%d) has distance %d", trial, r, c, f.At(r, c))
				}
			}
		}
	}
}

// TestCompute_MultiSourceIsPointwiseMin compares one multi-source BFS against
// the minimum of independent single-source fields.
func TestCompute_MultiSourceIsPointwiseMin(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 25; trial++ {
		g := randomGrid(t, rng, 10, 12, 0.25)
		var sources []grid.Cell
		for k := 0; k < 1+rng.Intn(4); k++ {
			sources = append(sources, grid.Cell{Row: rng.Intn(10), Col: rng.Intn(12)})
		}

		multi, err := distfield.Compute(g, sources)
		require.NoError(t, err)

		singles := make([]*distfield.Field, len(sources))
		for i, s := range sources {
			singles[i], err = distfield.Compute(g, []grid.Cell{s})
			require.NoError(t, err)
		}
		for r := 0; r < 10; r++ {
			for c := 0; c < 12; c++ {
				want := multi.Sentinel()
				for _, f := range singles {
					want = min(want, f.At(r, c))
				}
				if got := multi.At(r, c); got != want {
					t.Fatalf("trial %d: At(%d,%d) = %d; want pointwise min %d", trial, r, c, got, want)
				}
			}
		}
	}
}

// TestCompute_OrderInvariant shuffles the sources and expects identical values.
func TestCompute_OrderInvariant(t *testing.T) {
	g, _ := grid.New(6, 6)
	require.NoError(t, g.SetFull(2, 2))
	require.NoError(t, g.SetFull(3, 2))
	a := []grid.Cell{{0, 0}, {5, 5}, {0, 5}}
	b := []grid.Cell{{0, 5}, {0, 0}, {5, 5}}

	fa, err := distfield.Compute(g, a)
	require.NoError(t, err)
	fb, err := distfield.Compute(g, b)
	require.NoError(t, err)
	assert.Equal(t, fa.Rows(), fb.Rows())
}

// TestCompute_DuplicateSources checks that repeated sources behave like a single one.
func TestCompute_DuplicateSources(t *testing.T) {
	g, _ := grid.New(4, 4)
	once, err := distfield.Compute(g, []grid.Cell{{1, 2}})
	require.NoError(t, err)
	thrice, err := distfield.Compute(g, []grid.Cell{{1, 2}, {1, 2}, {1, 2}})
	require.NoError(t, err)
	assert.Equal(t, once.Rows(), thrice.Rows())
}

// TestCompute_SourceOnObstacle preserves distance 0 for a source standing on a Full cell.
func TestCompute_SourceOnObstacle(t *testing.T) {
	g, _ := grid.New(1, 3)
	require.NoError(t, g.SetFull(0, 0))

	f, err := distfield.Compute(g, []grid.Cell{{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, f.Rows()[0])
}

// TestCompute_ThreeByThree covers the corner-to-corner scenario.
func TestCompute_ThreeByThree(t *testing.T) {
	g, _ := grid.New(3, 3)
	zf, err := distfield.Compute(g, []grid.Cell{{0, 0}})
	require.NoError(t, err)
	hf, err := distfield.Compute(g, []grid.Cell{{2, 2}})
	require.NoError(t, err)

	assert.Equal(t, 4, zf.At(2, 2))
	assert.Equal(t, 4, hf.At(0, 0))
	assert.Equal(t, 3, zf.At(2, 1))
	assert.Equal(t, 3, zf.At(1, 2))
	assert.Equal(t, 2, zf.At(1, 1))
}

func TestField_RowsIsCopy(t *testing.T) {
	g, _ := grid.New(2, 2)
	f, err := distfield.Compute(g, []grid.Cell{{0, 0}})
	require.NoError(t, err)

	rows := f.Rows()
	rows[0][0] = 99
	assert.Equal(t, 0, f.At(0, 0), "Rows must not expose internal storage")
	assert.True(t, f.Matches(g))

	other, _ := grid.New(2, 3)
	assert.False(t, f.Matches(other))
	assert.False(t, f.Matches(nil))
}
