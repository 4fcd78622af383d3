package apocalypse

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/apocalypse/distfield"
	"github.com/katalvlaran/apocalypse/grid"
	"github.com/katalvlaran/apocalypse/movement"
)

// New creates a height×width Simulation, applying any number of Options.
// Returns grid.ErrEmptyGrid for bad dimensions, ErrOptionViolation for bad
// options, or grid.ErrOutOfBounds if any seeded cell is off the grid.
func New(height, width int, opts ...Option) (*Simulation, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}
	s := &Simulation{grid: g, rng: o.rng}
	if s.rng == nil {
		s.rng = rngFromSeed(o.seed)
	}

	for _, c := range o.obstacles {
		if err := g.SetFull(c.Row, c.Col); err != nil {
			return nil, fmt.Errorf("apocalypse: obstacle: %w", err)
		}
	}
	for _, c := range o.zombies {
		if err := s.AddZombie(c.Row, c.Col); err != nil {
			return nil, err
		}
	}
	for _, c := range o.humans {
		if err := s.AddHuman(c.Row, c.Col); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Grid returns the obstacle grid. Callers that only render should treat it
// as read-only; use AddObstacle and RemoveObstacle to edit obstacles.
func (s *Simulation) Grid() *grid.Grid { return s.grid }

// Tick returns the number of completed Steps since construction or Clear.
func (s *Simulation) Tick() int { return s.tick }

// Clear empties the obstacle grid and both entity lists.
func (s *Simulation) Clear() {
	s.grid.Clear()
	s.zombies = nil
	s.humans = nil
	s.tick = 0
}

// AddObstacle marks (row,col) Full.
func (s *Simulation) AddObstacle(row, col int) error {
	return s.grid.SetFull(row, col)
}

// RemoveObstacle marks (row,col) Empty.
func (s *Simulation) RemoveObstacle(row, col int) error {
	return s.grid.SetEmpty(row, col)
}

// AddZombie appends a zombie at (row,col). Several entities may share a cell.
func (s *Simulation) AddZombie(row, col int) error {
	if err := s.grid.Check(row, col); err != nil {
		return fmt.Errorf("apocalypse: add zombie: %w", err)
	}
	s.zombies = append(s.zombies, grid.Cell{Row: row, Col: col})
	return nil
}

// AddHuman appends a human at (row,col). Several entities may share a cell.
func (s *Simulation) AddHuman(row, col int) error {
	if err := s.grid.Check(row, col); err != nil {
		return fmt.Errorf("apocalypse: add human: %w", err)
	}
	s.humans = append(s.humans, grid.Cell{Row: row, Col: col})
	return nil
}

// NumZombies returns the number of zombies.
func (s *Simulation) NumZombies() int { return len(s.zombies) }

// NumHumans returns the number of humans.
func (s *Simulation) NumHumans() int { return len(s.humans) }

// Zombies yields the zombies in insertion order. The sequence may be ranged
// over repeatedly; it reflects the list at the time each range starts.
func (s *Simulation) Zombies() iter.Seq[grid.Cell] {
	return s.view(func() []grid.Cell { return s.zombies })
}

// Humans yields the humans in insertion order, like Zombies.
func (s *Simulation) Humans() iter.Seq[grid.Cell] {
	return s.view(func() []grid.Cell { return s.humans })
}

func (s *Simulation) view(list func() []grid.Cell) iter.Seq[grid.Cell] {
	return func(yield func(grid.Cell) bool) {
		for _, c := range list() {
			if !yield(c) {
				return
			}
		}
	}
}

// population returns the list for kind.
func (s *Simulation) population(kind Entity) ([]grid.Cell, error) {
	switch kind {
	case Zombie:
		return s.zombies, nil
	case Human:
		return s.humans, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownEntity, kind)
}

// ComputeDistanceField returns a fresh four-way distance field sourced at
// every member of the chosen population.
func (s *Simulation) ComputeDistanceField(kind Entity) (*distfield.Field, error) {
	sources, err := s.population(kind)
	if err != nil {
		return nil, err
	}
	return distfield.Compute(s.grid, sources)
}

// MoveHumans moves every human away from zombies using zombieField.
// On error the human list is left unchanged.
func (s *Simulation) MoveHumans(zombieField *distfield.Field) error {
	next, err := movement.Flee(s.grid, s.humans, zombieField, s.rng)
	if err != nil {
		return err
	}
	s.humans = next
	return nil
}

// MoveZombies moves every zombie toward humans using humanField.
// On error the zombie list is left unchanged.
func (s *Simulation) MoveZombies(humanField *distfield.Field) error {
	next, err := movement.Chase(s.grid, s.zombies, humanField, s.rng)
	if err != nil {
		return err
	}
	s.zombies = next
	return nil
}

// Step advances the simulation by one tick: both distance fields are
// computed from the current positions, then humans flee and zombies chase.
func (s *Simulation) Step() (StepResult, error) {
	zf, err := s.ComputeDistanceField(Zombie)
	if err != nil {
		return StepResult{}, err
	}
	hf, err := s.ComputeDistanceField(Human)
	if err != nil {
		return StepResult{}, err
	}
	if err := s.MoveHumans(zf); err != nil {
		return StepResult{}, err
	}
	if err := s.MoveZombies(hf); err != nil {
		return StepResult{}, err
	}
	s.tick++
	return StepResult{Tick: s.tick, ZombieField: zf, HumanField: hf}, nil
}

// Snapshot returns copies of both entity lists.
func (s *Simulation) Snapshot() (zombies, humans []grid.Cell) {
	return slices.Clone(s.zombies), slices.Clone(s.humans)
}
