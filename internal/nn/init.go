package nn

import (
	"math/rand"
)

// Uniform returns a value drawn from U(lo, hi).
//
// Parameters:
//   - rng: Random source; nil uses the global source
//   - lo, hi: Bounds of the distribution
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	//nolint:gosec // Using math/rand for weight initialization (not security-critical)
	f := rand.Float64
	if rng != nil {
		f = rng.Float64
	}
	return lo + f()*(hi-lo)
}
