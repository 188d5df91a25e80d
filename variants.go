package noise

import "math"

// Stateless transforms over the raw kernel. Ridged and billowy fold the
// kernel's approximately [-1, 1] output into [0, 1]. The 1D forms inherit
// the 1D kernel's oversized calibration (see Noise1D) and are only bounded
// by it.

// Ridged1D returns 1 - |Noise1D(x)|, with ridge-like creases at the
// kernel's zero crossings.
func (g *Generator) Ridged1D(x float64) float64 {
	return 1.0 - math.Abs(g.Noise1D(x))
}

// Ridged2D returns 1 - |Noise2D(x, y)|.
func (g *Generator) Ridged2D(x, y float64) float64 {
	return 1.0 - math.Abs(g.Noise2D(x, y))
}

// Ridged3D returns 1 - |Noise3D(x, y, z)|.
func (g *Generator) Ridged3D(x, y, z float64) float64 {
	return 1.0 - math.Abs(g.Noise3D(x, y, z))
}

// Billowy1D returns |Noise1D(x)|, producing rounded cloud-like lobes.
func (g *Generator) Billowy1D(x float64) float64 {
	return math.Abs(g.Noise1D(x))
}

// Billowy2D returns |Noise2D(x, y)|.
func (g *Generator) Billowy2D(x, y float64) float64 {
	return math.Abs(g.Noise2D(x, y))
}

// Billowy3D returns |Noise3D(x, y, z)|.
func (g *Generator) Billowy3D(x, y, z float64) float64 {
	return math.Abs(g.Noise3D(x, y, z))
}

// DomainWarp2D perturbs (x, y) by the kernel before resampling it. The y
// perturbation samples at an offset copy of the coordinate so the two axes
// decorrelate. Three kernel evaluations per call.
func (g *Generator) DomainWarp2D(x, y, warpStrength float64) float64 {
	warpX := x + g.Noise2D(x, y)*warpStrength
	warpY := y + g.Noise2D(x+100, y+100)*warpStrength
	return g.Noise2D(warpX, warpY)
}
