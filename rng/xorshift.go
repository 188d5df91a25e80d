package rng

// Xorshift is a four-word 64-bit shift-xor generator. The 32-bit output is
// the low half of the newest word.
type Xorshift struct {
	state [4]uint64
}

// Seed derives the four state words from seed xored with fixed constants,
// so the words start decorrelated even for small seeds.
func (g *Xorshift) Seed(seed uint32) {
	s := uint64(seed)
	g.state[0] = s
	g.state[1] = s ^ 0x123456789ABCDEF0
	g.state[2] = s ^ 0xFEDCBA9876543210
	g.state[3] = s ^ 0x13579BDF2468ACE0
}

// Uint32 rotates the state words and returns the low 32 bits of the newly
// mixed word.
func (g *Xorshift) Uint32() uint32 {
	t := g.state[0]
	s := g.state[3]
	g.state[0] = g.state[1]
	g.state[1] = g.state[2]
	g.state[2] = s
	t ^= t << 11
	t ^= t >> 8
	g.state[3] = t ^ s ^ (s >> 19)
	return uint32(g.state[3])
}
