package sim

import "math/rand"

// Rand is the source of randomness consumed by the core.
// *rand.Rand satisfies it; Read feeds reproducible contract ids.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Read(p []byte) (n int, err error)
}

// NewRand returns a seeded generator
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// noise returns a value uniformly distributed in [-amplitude, amplitude)
func noise(rng Rand, amplitude float64) float64 {
	return (rng.Float64()*2 - 1) * amplitude
}
