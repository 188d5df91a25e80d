package noise

import (
	"fmt"
	"math"
)

// Multi-octave accumulation over the raw kernel. Each octave scales
// frequency by lacunarity and amplitude by persistence.
//
// The additive strategies (Fractal*, FBM*) divide by the accumulated
// amplitude, so their output stays within the kernel's own approximate
// [-1, 1] range for any octave count. HybridMultifractal2D is
// multiplicative and carries no such normalization; its output is
// unbounded and grows or shrinks geometrically with the octave count and
// offset.

// Fractal2D sums octaves layers of Noise2D, normalized by the accumulated
// amplitude. octaves must be at least 1.
func (g *Generator) Fractal2D(x, y float64, octaves int, persistence, lacunarity float64) (float64, error) {
	if err := checkOctaves(octaves); err != nil {
		return 0, err
	}
	return g.fbm2(x, y, octaves, persistence, lacunarity), nil
}

// Fractal3D sums octaves layers of Noise3D, normalized by the accumulated
// amplitude. octaves must be at least 1.
func (g *Generator) Fractal3D(x, y, z float64, octaves int, persistence, lacunarity float64) (float64, error) {
	if err := checkOctaves(octaves); err != nil {
		return 0, err
	}
	return g.fbm3(x, y, z, octaves, persistence, lacunarity), nil
}

// FBM2D is fractional Brownian motion over Noise2D. It shares the
// accumulation of Fractal2D; both entry points are kept for parity with
// the established API surface.
func (g *Generator) FBM2D(x, y float64, octaves int, persistence, lacunarity float64) (float64, error) {
	return g.Fractal2D(x, y, octaves, persistence, lacunarity)
}

// FBM3D is fractional Brownian motion over Noise3D.
func (g *Generator) FBM3D(x, y, z float64, octaves int, persistence, lacunarity float64) (float64, error) {
	return g.Fractal3D(x, y, z, octaves, persistence, lacunarity)
}

// HybridMultifractal2D multiplies (offset + |Noise2D|) * amplitude across
// octaves. Unlike the additive strategies the result is NOT normalized and
// is not bounded to [-1, 1]; callers must not assume a bounded range.
// octaves must be at least 1.
func (g *Generator) HybridMultifractal2D(x, y float64, octaves int, persistence, lacunarity, offset float64) (float64, error) {
	if err := checkOctaves(octaves); err != nil {
		return 0, err
	}

	value := 1.0
	amplitude := 1.0
	frequency := 1.0
	for o := 0; o < octaves; o++ {
		n := g.Noise2D(x*frequency, y*frequency)
		value *= (offset + math.Abs(n)) * amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return value, nil
}

func (g *Generator) fbm2(x, y float64, octaves int, persistence, lacunarity float64) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0

	for o := 0; o < octaves; o++ {
		value += g.Noise2D(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return value / maxValue
}

func (g *Generator) fbm3(x, y, z float64, octaves int, persistence, lacunarity float64) float64 {
	value := 0.0
	amplitude := 1.0
	frequency := 1.0
	maxValue := 0.0

	for o := 0; o < octaves; o++ {
		value += g.Noise3D(x*frequency, y*frequency, z*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= lacunarity
	}
	return value / maxValue
}

func checkOctaves(octaves int) error {
	if octaves < 1 {
		return fmt.Errorf("noise: octaves must be at least 1, got %d", octaves)
	}
	return nil
}
