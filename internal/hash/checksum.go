package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of a page payload.
//
// It is used for integrity verification of compressed page payloads: the
// encoder records the checksum in the page table and the decoder verifies
// it before decoding.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
