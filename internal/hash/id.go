// Package hash provides the xxHash64 primitive used for fast, collision-resistant
// signatures over definition-record bytes.
package hash

import "github.com/cespare/xxhash/v2"

// Bytes computes the xxHash64 of the given byte slice.
func Bytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
