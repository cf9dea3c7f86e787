package approx

import "github.com/spaolacci/murmur3"

// Positions derives k bit positions in [0, m) for an item using double
// hashing: position i is (h1 + i*h2) mod m. A single murmur3 128-bit hash
// supplies both base hashes, so deriving k positions costs one hash
// computation regardless of k, while keeping the positions distributed
// closely enough to independent uniform draws for bloom filter use.
//
// The derivation is deterministic: a fixed item and (k, m) always yield the
// same sequence, across calls and across processes. No runtime seeding is
// involved. Membership checks against a previously populated filter depend
// on this.
func Positions(item string, k, m uint) []uint {
	h1, h2 := murmur3.Sum128([]byte(item))
	positions := make([]uint, k)
	for i := range positions {
		positions[i] = uint((h1 + uint64(i)*h2) % uint64(m))
	}
	return positions
}
