// Package apocalypse defines the Simulation type, its functional options,
// and sentinel errors.
package apocalypse

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/apocalypse/distfield"
	"github.com/katalvlaran/apocalypse/grid"
)

// Sentinel errors for simulation operations.
var (
	// ErrUnknownEntity is returned when a distance field is requested for an
	// entity kind other than Zombie or Human.
	ErrUnknownEntity = errors.New("apocalypse: unknown entity kind")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("apocalypse: invalid option supplied")
)

// Entity selects a population.
type Entity int

const (
	// Zombie selects the zombie population.
	Zombie Entity = iota
	// Human selects the human population.
	Human
)

// String returns "zombie", "human", or "entity(N)".
func (e Entity) String() string {
	switch e {
	case Zombie:
		return "zombie"
	case Human:
		return "human"
	}
	return fmt.Sprintf("entity(%d)", int(e))
}

// Option configures a Simulation at construction time.
// Invalid options are recorded and surfaced by New.
type Option func(*options)

type options struct {
	obstacles []grid.Cell
	zombies   []grid.Cell
	humans    []grid.Cell
	rng       *rand.Rand
	seed      int64
	err       error
}

// WithObstacles marks every listed cell Full. The slice is copied.
func WithObstacles(cells []grid.Cell) Option {
	return func(o *options) {
		o.obstacles = append(o.obstacles, cells...)
	}
}

// WithZombies seeds the zombie list in order. The slice is copied.
func WithZombies(cells []grid.Cell) Option {
	return func(o *options) {
		o.zombies = append(o.zombies, cells...)
	}
}

// WithHumans seeds the human list in order. The slice is copied.
func WithHumans(cells []grid.Cell) Option {
	return func(o *options) {
		o.humans = append(o.humans, cells...)
	}
}

// WithSeed selects a deterministic random stream for tie-breaking.
// Seed 0 maps to defaultSeed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
		o.rng = nil
	}
}

// WithRand injects a caller-owned random source; nil is rejected.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng == nil {
			o.err = fmt.Errorf("%w: nil *rand.Rand", ErrOptionViolation)
			return
		}
		o.rng = rng
	}
}

// StepResult reports the fields used by one Step. Both were computed from
// positions before either population moved.
type StepResult struct {
	Tick        int
	ZombieField *distfield.Field
	HumanField  *distfield.Field
}

// Simulation owns one obstacle grid and the two ordered entity lists.
// It is single-threaded: no method may be called concurrently with another.
type Simulation struct {
	grid    *grid.Grid
	zombies []grid.Cell
	humans  []grid.Cell
	rng     *rand.Rand
	tick    int
}
