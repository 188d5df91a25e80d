package rng

import "math/bits"

const pcgMultiplier = 6364136223846793005

// PCG is a permuted congruential generator: a 64-bit LCG whose output is
// the state's xorshifted high bits rotated right by an amount taken from
// the top state bits. The stream increment is derived from the seed, so
// distinct seeds select distinct streams as well as distinct start states.
type PCG struct {
	state uint64
	inc   uint64
}

// Seed selects the stream for seed and advances past the initial state.
func (g *PCG) Seed(seed uint32) {
	g.state = 0
	g.inc = uint64(seed)<<1 | 1
	g.Uint32()
	g.state += uint64(seed)
	g.Uint32()
}

// Uint32 advances the LCG and applies the output permutation to the prior
// state.
func (g *PCG) Uint32() uint32 {
	old := g.state
	g.state = old*pcgMultiplier + g.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	return bits.RotateLeft32(xorshifted, -int(old>>59))
}
