package hash

import "github.com/cespare/xxhash/v2"

// Checksum returns the low 32 bits of the xxHash64 of data.
func Checksum(data []byte) uint32 {
	return uint32(xxhash.Sum64(data)) //nolint:gosec
}
