package noise

import "math"

// Skew and unskew factors between simplex-grid and Cartesian space.
var (
	skew2   = 0.5 * (math.Sqrt(3.0) - 1.0)
	unskew2 = (3.0 - math.Sqrt(3.0)) / 6.0
	skew4   = (math.Sqrt(5.0) - 1.0) / 4.0
	unskew4 = (5.0 - math.Sqrt(5.0)) / 20.0
)

const (
	skew3   = 1.0 / 3.0
	unskew3 = 1.0 / 6.0
)

// Per-dimension calibration scales. Empirically tuned to bring the summed
// corner contributions into roughly [-1, 1]; the true extrema depend on
// gradient geometry and can exceed the nominal bound by a small margin.
const (
	scale1D = 70.0
	scale2D = 70.0
	scale3D = 32.0
	scale4D = 27.0
)

// Noise1D returns simplex noise along the line at x.
//
// The 1D kernel shares the 2D calibration constant, which overshoots
// badly in one dimension: the actual swing is roughly [-22, 22], not the
// nominal [-1, 1] of the higher kernels. The formula is kept as published;
// rescale at the call site if a unit band is needed.
func (g *Generator) Noise1D(x float64) float64 {
	i0 := fastFloor(x)
	i1 := i0 + 1

	x0 := x - float64(i0)
	x1 := x0 - 1.0

	t0 := 1.0 - x0*x0
	t1 := 1.0 - x1*x1
	t0 *= t0
	t1 *= t1

	n0 := t0 * t0 * dot2(grad2[g.perm[i0&0xff]&7], x0, 0)
	n1 := t1 * t1 * dot2(grad2[g.perm[i1&0xff]&7], x1, 0)

	return scale1D * (n0 + n1)
}

// Noise2D returns simplex noise at (x, y), approximately in [-1, 1].
func (g *Generator) Noise2D(x, y float64) float64 {
	// Skew into simplex space and floor to the origin cell.
	s := (x + y) * skew2
	i := fastFloor(x + s)
	j := fastFloor(y + s)

	t := float64(i+j) * unskew2
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)

	// Which of the two triangles are we in?
	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1.0 + 2.0*unskew2
	y2 := y0 - 1.0 + 2.0*unskew2

	ii := i & 0xff
	jj := j & 0xff
	gi0 := g.perm[ii+g.perm[jj]] % 8
	gi1 := g.perm[ii+i1+g.perm[jj+j1]] % 8
	gi2 := g.perm[ii+1+g.perm[jj+1]] % 8

	var n0, n1, n2 float64

	t0 := 0.5 - x0*x0 - y0*y0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(grad2[gi0], x0, y0)
	}

	t1 := 0.5 - x1*x1 - y1*y1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(grad2[gi1], x1, y1)
	}

	t2 := 0.5 - x2*x2 - y2*y2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(grad2[gi2], x2, y2)
	}

	return scale2D * (n0 + n1 + n2)
}

// Noise3D returns simplex noise at (x, y, z), approximately in [-1, 1].
func (g *Generator) Noise3D(x, y, z float64) float64 {
	s := (x + y + z) * skew3
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)

	t := float64(i+j+k) * unskew3
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)

	// Rank the offset components to pick the corner traversal order
	// through the tetrahedron.
	var i1, j1, k1 int
	var i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 1, 0
		case x0 >= z0:
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 0, 1
		default:
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 0, 1, 1
		case x0 < z0:
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 0, 1, 1
		default:
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 1, 1, 0
		}
	}

	x1 := x0 - float64(i1) + unskew3
	y1 := y0 - float64(j1) + unskew3
	z1 := z0 - float64(k1) + unskew3
	x2 := x0 - float64(i2) + 2.0*unskew3
	y2 := y0 - float64(j2) + 2.0*unskew3
	z2 := z0 - float64(k2) + 2.0*unskew3
	x3 := x0 - 1.0 + 3.0*unskew3
	y3 := y0 - 1.0 + 3.0*unskew3
	z3 := z0 - 1.0 + 3.0*unskew3

	ii := i & 0xff
	jj := j & 0xff
	kk := k & 0xff
	gi0 := g.perm[ii+g.perm[jj+g.perm[kk]]] % 12
	gi1 := g.perm[ii+i1+g.perm[jj+j1+g.perm[kk+k1]]] % 12
	gi2 := g.perm[ii+i2+g.perm[jj+j2+g.perm[kk+k2]]] % 12
	gi3 := g.perm[ii+1+g.perm[jj+1+g.perm[kk+1]]] % 12

	var n0, n1, n2, n3 float64

	t0 := 0.6 - x0*x0 - y0*y0 - z0*z0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, z0)
	}

	t1 := 0.6 - x1*x1 - y1*y1 - z1*z1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, z1)
	}

	t2 := 0.6 - x2*x2 - y2*y2 - z2*z2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, z2)
	}

	t3 := 0.6 - x3*x3 - y3*y3 - z3*z3
	if t3 >= 0 {
		t3 *= t3
		n3 = t3 * t3 * dot3(grad3[gi3], x3, y3, z3)
	}

	return scale3D * (n0 + n1 + n2 + n3)
}

// Noise4D returns simplex noise at (x, y, z, w), approximately in [-1, 1].
func (g *Generator) Noise4D(x, y, z, w float64) float64 {
	s := (x + y + z + w) * skew4
	i := fastFloor(x + s)
	j := fastFloor(y + s)
	k := fastFloor(z + s)
	l := fastFloor(w + s)

	t := float64(i+j+k+l) * unskew4
	x0 := x - (float64(i) - t)
	y0 := y - (float64(j) - t)
	z0 := z - (float64(k) - t)
	w0 := w - (float64(l) - t)

	// Six pairwise comparisons index the 64-entry ordering table instead
	// of branching through all 24 component rankings.
	c := 0
	if x0 > y0 {
		c |= 32
	}
	if x0 > z0 {
		c |= 16
	}
	if y0 > z0 {
		c |= 8
	}
	if x0 > w0 {
		c |= 4
	}
	if y0 > w0 {
		c |= 2
	}
	if z0 > w0 {
		c |= 1
	}

	i1 := b2i(simplex4[c][0] >= 3)
	j1 := b2i(simplex4[c][1] >= 3)
	k1 := b2i(simplex4[c][2] >= 3)
	l1 := b2i(simplex4[c][3] >= 3)

	i2 := b2i(simplex4[c][0] >= 2)
	j2 := b2i(simplex4[c][1] >= 2)
	k2 := b2i(simplex4[c][2] >= 2)
	l2 := b2i(simplex4[c][3] >= 2)

	i3 := b2i(simplex4[c][0] >= 1)
	j3 := b2i(simplex4[c][1] >= 1)
	k3 := b2i(simplex4[c][2] >= 1)
	l3 := b2i(simplex4[c][3] >= 1)

	x1 := x0 - float64(i1) + unskew4
	y1 := y0 - float64(j1) + unskew4
	z1 := z0 - float64(k1) + unskew4
	w1 := w0 - float64(l1) + unskew4
	x2 := x0 - float64(i2) + 2.0*unskew4
	y2 := y0 - float64(j2) + 2.0*unskew4
	z2 := z0 - float64(k2) + 2.0*unskew4
	w2 := w0 - float64(l2) + 2.0*unskew4
	x3 := x0 - float64(i3) + 3.0*unskew4
	y3 := y0 - float64(j3) + 3.0*unskew4
	z3 := z0 - float64(k3) + 3.0*unskew4
	w3 := w0 - float64(l3) + 3.0*unskew4
	x4 := x0 - 1.0 + 4.0*unskew4
	y4 := y0 - 1.0 + 4.0*unskew4
	z4 := z0 - 1.0 + 4.0*unskew4
	w4 := w0 - 1.0 + 4.0*unskew4

	ii := i & 0xff
	jj := j & 0xff
	kk := k & 0xff
	ll := l & 0xff
	gi0 := g.perm[ii+g.perm[jj+g.perm[kk+g.perm[ll]]]] % 32
	gi1 := g.perm[ii+i1+g.perm[jj+j1+g.perm[kk+k1+g.perm[ll+l1]]]] % 32
	gi2 := g.perm[ii+i2+g.perm[jj+j2+g.perm[kk+k2+g.perm[ll+l2]]]] % 32
	gi3 := g.perm[ii+i3+g.perm[jj+j3+g.perm[kk+k3+g.perm[ll+l3]]]] % 32
	gi4 := g.perm[ii+1+g.perm[jj+1+g.perm[kk+1+g.perm[ll+1]]]] % 32

	var n0, n1, n2, n3, n4 float64

	t0 := 0.6 - x0*x0 - y0*y0 - z0*z0 - w0*w0
	if t0 >= 0 {
		t0 *= t0
		n0 = t0 * t0 * dot4(grad4[gi0], x0, y0, z0, w0)
	}

	t1 := 0.6 - x1*x1 - y1*y1 - z1*z1 - w1*w1
	if t1 >= 0 {
		t1 *= t1
		n1 = t1 * t1 * dot4(grad4[gi1], x1, y1, z1, w1)
	}

	t2 := 0.6 - x2*x2 - y2*y2 - z2*z2 - w2*w2
	if t2 >= 0 {
		t2 *= t2
		n2 = t2 * t2 * dot4(grad4[gi2], x2, y2, z2, w2)
	}

	t3 := 0.6 - x3*x3 - y3*y3 - z3*z3 - w3*w3
	if t3 >= 0 {
		t3 *= t3
		n3 = t3 * t3 * dot4(grad4[gi3], x3, y3, z3, w3)
	}

	t4 := 0.6 - x4*x4 - y4*y4 - z4*z4 - w4*w4
	if t4 >= 0 {
		t4 *= t4
		n4 = t4 * t4 * dot4(grad4[gi4], x4, y4, z4, w4)
	}

	return scale4D * (n0 + n1 + n2 + n3 + n4)
}

// Helper functions

func dot2(g [2]float64, x, y float64) float64 {
	return g[0]*x + g[1]*y
}

func dot3(g [3]float64, x, y, z float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z
}

func dot4(g [4]float64, x, y, z, w float64) float64 {
	return g[0]*x + g[1]*y + g[2]*z + g[3]*w
}

// fastFloor truncates toward negative infinity without calling math.Floor.
func fastFloor(x float64) int {
	if x > 0 {
		return int(x)
	}
	return int(x) - 1
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
