package rng

// LCG is a linear congruential generator. It is the fastest engine and
// the statistically weakest; every seed is valid, including zero.
type LCG struct {
	state uint32
}

// Seed resets the generator state to seed.
func (g *LCG) Seed(seed uint32) {
	g.state = seed
}

// Uint32 advances the recurrence and returns the new state.
func (g *LCG) Uint32() uint32 {
	g.state = g.state*1103515245 + 12345
	return g.state
}
