// Package rng provides the interchangeable pseudo-random bit generators
// that seed noise permutation tables.
//
// Every engine is deterministic: the sequence after Seed depends only on
// the seed value. Engines differ in statistical quality and speed, not in
// contract, and none of them can fail.
package rng

import "sort"

// Source is a seedable 32-bit pseudo-random bit generator.
type Source interface {
	// Seed resets the generator to the state derived from seed. State
	// left over from a previous seeding (or a previous engine) is
	// discarded entirely.
	Seed(seed uint32)

	// Uint32 returns the next 32 bits of the stream.
	Uint32() uint32
}

// Registry maps engine names to constructors for fresh, unseeded sources.
var Registry = map[string]func() Source{
	"lcg":      func() Source { return new(LCG) },
	"mt19937":  func() Source { return new(MT19937) },
	"xorshift": func() Source { return new(Xorshift) },
	"pcg":      func() Source { return new(PCG) },
}

// Get returns a fresh engine for the given name.
func Get(name string) (Source, bool) {
	ctor, ok := Registry[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Names returns the registered engine names, sorted.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
