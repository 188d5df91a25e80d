package rng_test

import (
	"testing"

	"github.com/nozzle/noise/rng"
)

func TestMT19937ReferenceSequence(t *testing.T) {
	// First outputs of the canonical MT19937 reference implementation
	// seeded with 5489.
	expected := []uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204}

	g := new(rng.MT19937)
	g.Seed(5489)
	for i, want := range expected {
		if got := g.Uint32(); got != want {
			t.Errorf("output %d: got %d, expected %d", i, got, want)
		}
	}
}

func TestEngineSequences(t *testing.T) {
	// Fixed draw sequences for seed 42, one per engine. These pin the
	// exact recurrences: any change to an engine changes every noise
	// field built with it.
	expected := map[string][]uint32{
		"lcg":      {3397979675, 3263785912, 3148160401, 3816158454, 3055579383},
		"mt19937":  {1608637542, 3421126067, 4083286876, 787846414, 3143890026},
		"xorshift": {3608287549, 4111656715, 433905265, 4190687100, 297605769},
		"pcg":      {1085446021, 176895750, 789123591, 1684778745, 4229066268},
	}

	for name, want := range expected {
		g, ok := rng.Get(name)
		if !ok {
			t.Errorf("engine %s not found in registry", name)
			continue
		}
		g.Seed(42)
		for i, w := range want {
			if got := g.Uint32(); got != w {
				t.Errorf("%s output %d: got %d, expected %d", name, i, got, w)
			}
		}
	}
}

func TestReseedRestartsStream(t *testing.T) {
	for _, name := range rng.Names() {
		g, _ := rng.Get(name)

		g.Seed(12345)
		first := make([]uint32, 16)
		for i := range first {
			first[i] = g.Uint32()
		}

		g.Seed(12345)
		for i, want := range first {
			if got := g.Uint32(); got != want {
				t.Errorf("%s: reseeded output %d: got %d, expected %d", name, i, got, want)
			}
		}
	}
}

func TestGetUnknownEngine(t *testing.T) {
	if _, ok := rng.Get("middle-square"); ok {
		t.Error("expected lookup of unknown engine to fail")
	}
}

func TestNames(t *testing.T) {
	names := rng.Names()
	if len(names) != len(rng.Registry) {
		t.Fatalf("Names returned %d entries, registry has %d", len(names), len(rng.Registry))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}

func TestFreshSourcesAreIndependent(t *testing.T) {
	a, _ := rng.Get("pcg")
	b, _ := rng.Get("pcg")
	a.Seed(7)
	b.Seed(7)

	a.Uint32()
	// b has not drawn; both streams must still agree from their own cursors.
	av := a.Uint32()
	b.Uint32()
	bv := b.Uint32()
	if av != bv {
		t.Errorf("independent sources diverged: %d vs %d", av, bv)
	}
}

func BenchmarkPCG(b *testing.B) {
	g, _ := rng.Get("pcg")
	g.Seed(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Uint32()
	}
}

func BenchmarkMT19937(b *testing.B) {
	g, _ := rng.Get("mt19937")
	g.Seed(42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Uint32()
	}
}
