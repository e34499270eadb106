package lottery

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// SeedFunc returns the seed of the generator used by a single draw.
type SeedFunc func() (uint64, uint64, error)

// CryptoSeed seeds draws from crypto/rand.
func CryptoSeed() (uint64, uint64, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:8]), binary.LittleEndian.Uint64(b[8:]), nil
}

// FixedSeed always returns the same seed. Draws become reproducible.
func FixedSeed(hi, lo uint64) SeedFunc {
	return func() (uint64, uint64, error) { return hi, lo, nil }
}

// sample moves k uniformly chosen elements of pool to its front with a
// partial Fisher-Yates shuffle and returns them.
func sample[T any](pool []T, k int, rng *rand.Rand) []T {
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
