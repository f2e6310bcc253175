package companionsdk

import "github.com/cespare/xxhash/v2"

// PickVariant deterministically selects one of n variants for the given seed.
// Every "random-looking" reply choice in the SDK routes through this single
// function so that identical input always yields the identical reply. The
// fun/storytelling branch is the one sanctioned exception and uses its own
// seeded source.
func PickVariant(seed string, n int) int {
	if n <= 1 {
		return 0
	}
	return int(xxhash.Sum64String(seed) % uint64(n))
}
