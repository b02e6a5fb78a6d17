// Package signal provides the random sample generator and the rolling
// telemetry stream that feeds the post-win sparkline.
package signal

import "math/rand"

// RandomSignal produces an unbounded sequence of uniformly distributed
// integers in [lower, upper). Each call to Next consumes one sample and
// advances the internal state; restarting means constructing a new one.
type RandomSignal struct {
	lower int
	upper int
	rng   *rand.Rand
}

// NewRandomSignal creates a generator of integers in [lower, upper) with
// the given seed. Deterministic for a fixed seed.
func NewRandomSignal(seed int64, lower, upper int) *RandomSignal {
	return &RandomSignal{
		lower: lower,
		upper: upper,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Next returns the next sample. Always succeeds.
func (s *RandomSignal) Next() int {
	return s.lower + s.rng.Intn(s.upper-s.lower)
}

// Take returns the next n samples as a slice.
func (s *RandomSignal) Take(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}
