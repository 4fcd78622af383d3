package apocalypse

import "math/rand"

// defaultSeed is the fixed seed used when callers pass seed==0, so an
// unconfigured Simulation is still reproducible.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
//
// math/rand.Rand is not goroutine-safe; each Simulation owns its own.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
