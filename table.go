package noise

import "github.com/nozzle/noise/rng"

const permSize = 256

// buildPerm builds the doubled permutation table: a Fisher-Yates shuffle
// of 0..255 drawn from src, copied verbatim into the upper half so the
// chained corner lookups never need a wrap-around branch.
//
// Same seed + same engine means the same table and therefore the same
// noise field.
func buildPerm(seed uint32, src rng.Source) [permSize * 2]int {
	var perm [permSize * 2]int

	src.Seed(seed)
	for i := 0; i < permSize; i++ {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(src.Uint32() % uint32(i+1))
		perm[i], perm[j] = perm[j], perm[i]
	}
	for i := 0; i < permSize; i++ {
		perm[permSize+i] = perm[i]
	}
	return perm
}
