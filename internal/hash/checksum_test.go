package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestChecksum_MatchesXXHash64(t *testing.T) {
	data := []byte("page payload bytes")
	require.Equal(t, xxhash.Sum64(data), Checksum(data))
}

func TestChecksum_Deterministic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0xFF}
	require.Equal(t, Checksum(data), Checksum(data))
}

func TestChecksum_DetectsCorruption(t *testing.T) {
	data := []byte("page payload bytes")
	corrupted := append([]byte(nil), data...)
	corrupted[3] ^= 0x01

	require.NotEqual(t, Checksum(data), Checksum(corrupted))
}

func TestChecksum_Empty(t *testing.T) {
	// Empty payloads still checksum to a stable value.
	require.Equal(t, xxhash.Sum64(nil), Checksum(nil))
	require.Equal(t, Checksum(nil), Checksum([]byte{}))
}
