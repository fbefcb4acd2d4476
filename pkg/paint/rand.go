// rand.go — deterministic pseudo-random source for procedural art.
package paint

// LCG is a small linear congruential generator (Numerical Recipes
// constants). Every routine that needs randomness takes an explicitly
// seeded LCG, never an ambient source, so repeated runs produce
// bit-identical assets and committed binaries never diff by accident.
type LCG struct {
	state uint32
}

// NewLCG returns a generator with the given seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the generator and returns a value in [0, 1].
func (l *LCG) Next() float64 {
	l.state = l.state*1664525 + 1013904223
	return float64(l.state) / float64(0xFFFFFFFF)
}

// IntRange returns an integer in [lo, hi).
func (l *LCG) IntRange(lo, hi int) int {
	return lo + int(l.Next()*float64(hi-lo))
}
