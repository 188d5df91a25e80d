package noise

// Gradient vector sets, one per dimensionality. A lattice corner picks its
// gradient via the permutation-table hash modulo the set size.

// grad2 covers the cardinal and diagonal directions.
var grad2 = [8][2]float64{
	{1, 1}, {-1, 1}, {1, -1}, {-1, -1},
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
}

// grad3 points at the twelve edge midpoints of a cube.
var grad3 = [12][3]float64{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// grad4 is the analogous 4D set of 32 vectors.
var grad4 = [32][4]float64{
	{0, 1, 1, 1}, {0, 1, 1, -1}, {0, 1, -1, 1}, {0, 1, -1, -1},
	{0, -1, 1, 1}, {0, -1, 1, -1}, {0, -1, -1, 1}, {0, -1, -1, -1},
	{1, 0, 1, 1}, {1, 0, 1, -1}, {1, 0, -1, 1}, {1, 0, -1, -1},
	{-1, 0, 1, 1}, {-1, 0, 1, -1}, {-1, 0, -1, 1}, {-1, 0, -1, -1},
	{1, 1, 0, 1}, {1, 1, 0, -1}, {1, -1, 0, 1}, {1, -1, 0, -1},
	{-1, 1, 0, 1}, {-1, 1, 0, -1}, {-1, -1, 0, 1}, {-1, -1, 0, -1},
	{1, 1, 1, 0}, {1, 1, -1, 0}, {1, -1, 1, 0}, {1, -1, -1, 0},
	{-1, 1, 1, 0}, {-1, 1, -1, 0}, {-1, -1, 1, 0}, {-1, -1, -1, 0},
}

// simplex4 maps a 6-bit pairwise-comparison code (one bit per x>y, x>z,
// y>z, x>w, y>w, z>w test) to the magnitude ordering of the four offset
// components, which fixes the order the 4D kernel visits its three
// intermediate corners. Impossible codes hold a harmless filler entry and
// are never indexed.
var simplex4 = [64][4]int{
	{0, 1, 2, 3}, {0, 1, 3, 2}, {0, 0, 1, 1}, {0, 2, 3, 1}, {0, 0, 1, 1}, {0, 0, 1, 1},
	{0, 0, 1, 1}, {1, 2, 3, 0}, {0, 2, 1, 3}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1},
	{1, 3, 0, 2}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1},
	{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1},
	{1, 2, 0, 3}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {1, 3, 2, 0}, {0, 0, 1, 1},
	{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1},
	{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {2, 3, 0, 1}, {0, 0, 1, 1},
	{0, 0, 1, 1}, {0, 0, 1, 1}, {2, 3, 1, 0}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1},
	{0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1},
	{0, 0, 1, 1}, {0, 0, 1, 1}, {2, 0, 3, 1}, {0, 0, 1, 1}, {0, 0, 1, 1}, {0, 0, 1, 1},
	{3, 0, 1, 2}, {3, 1, 0, 2}, {0, 0, 1, 1}, {0, 0, 1, 1},
}
