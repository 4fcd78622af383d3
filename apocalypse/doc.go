// Package apocalypse simulates zombies pursuing humans on an obstacle grid.
//
// What
//
//   - Simulation owns a grid.Grid and two ordered entity lists (zombies, humans).
//   - ComputeDistanceField builds a fresh distfield.Field from either population.
//   - MoveHumans flees a zombie field (eight-way, maximize, random tie-break).
//   - MoveZombies chases a human field (four-way, minimize, random tie-break).
//   - Step computes both fields from the current positions, then moves both groups.
//
// Entity identity
//
//	Entities have no ids. The i-th position after a move belongs to the i-th
//	entity before it, and Zombies/Humans always yield insertion order.
//	Several entities may share a cell; entities never block movement.
//
// Randomness
//
//	Every move call draws exactly one number per entity, in list order, from
//	the Simulation's *rand.Rand. WithSeed (seed 0 ⇒ 1) or WithRand make runs
//	reproducible.
//
// Usage
//
//	sim, err := apocalypse.New(30, 40,
//	    apocalypse.WithObstacles(walls),
//	    apocalypse.WithZombies([]grid.Cell{{0, 0}}),
//	    apocalypse.WithHumans([]grid.Cell{{29, 39}}),
//	    apocalypse.WithSeed(7),
//	)
//	if err != nil {
//	    // grid.ErrEmptyGrid, grid.ErrOutOfBounds or ErrOptionViolation
//	}
//	for i := 0; i < 100; i++ {
//	    if _, err := sim.Step(); err != nil {
//	        break
//	    }
//	}
//
// Errors
//
//   - grid.ErrEmptyGrid       for non-positive dimensions.
//   - grid.ErrOutOfBounds     for any coordinate off the board (wrapped).
//   - ErrOptionViolation      for an invalid Option.
//   - ErrUnknownEntity        for an Entity other than Zombie or Human.
//   - movement.ErrFieldShape  when a field from another board is passed to a move.
//
// Concurrency
//
//	A Simulation is single-threaded. Fields are immutable and may be read
//	from any goroutine once returned.
package apocalypse
