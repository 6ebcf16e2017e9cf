// Package distrib - RNG plumbing for the samplers.
//
// Goals:
//   - Explicit injection: no hidden process-wide randomness; tests pass a
//     seeded *rand.Rand and get reproducible draws.
//   - Impure default: a nil source is replaced with a time-seeded one, so
//     default FillMatrix calls never repeat a prior matrix.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share one Sampler
//     across goroutines; create one per worker.
package distrib

import (
	"math/rand"
	"time"
)

// defaultSeed is the fixed seed used by NewSeeded(0): an arbitrary but
// stable value keeping reproducible defaults in tests.
const defaultSeed int64 = 1

// Sampler draws from the supported distributions using its own RNG stream.
type Sampler struct {
	rng *rand.Rand
}

// New returns a Sampler over the given source. A nil rng yields a
// time-seeded stream (the impure default demanded of FillMatrix).
func New(rng *rand.Rand) *Sampler {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Sampler{rng: rng}
}

// NewSeeded returns a deterministic Sampler.
// Policy: seed == 0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewSeeded(seed int64) *Sampler {
	if seed == 0 {
		seed = defaultSeed
	}
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// unitOpen returns a draw from (0, 1], safe as a log argument.
func (s *Sampler) unitOpen() float64 {
	return 1 - s.rng.Float64()
}
