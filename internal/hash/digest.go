package hash

import "github.com/cespare/xxhash/v2"

// Digest computes the xxHash64 of an encoded payload.
func Digest(data []byte) uint64 {
	return xxhash.Sum64(data)
}
