package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/numo/format"
	"github.com/stretchr/testify/require"
)

// testPayload builds a payload shaped like an encoded latent stream:
// long runs of small varint bytes with occasional wide words.
func testPayload(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		if i%64 == 0 {
			data[i] = byte(i >> 3)
		} else {
			data[i] = byte(i % 7)
		}
	}

	return data
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := testPayload(16 * 1024)

	tests := []struct {
		name  string
		codec Codec
	}{
		{"NoOp", NewNoOpCompressor()},
		{"Zstd", NewZstdCompressor()},
		{"S2", NewS2Compressor()},
		{"LZ4", NewLZ4Compressor()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := tt.codec.Decompress(compressed)
			require.NoError(t, err)
			require.True(t, bytes.Equal(payload, decompressed))
		})
	}
}

func TestCodecs_CompressibleDataShrinks(t *testing.T) {
	payload := bytes.Repeat([]byte{0x01, 0x00, 0x02, 0x00}, 4096)

	for _, tt := range []struct {
		name  string
		codec Codec
	}{
		{"Zstd", NewZstdCompressor()},
		{"S2", NewS2Compressor()},
		{"LZ4", NewLZ4Compressor()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			compressed, err := tt.codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestNoOp_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)
}

func TestZstd_DecompressCorruptedData(t *testing.T) {
	codec := NewZstdCompressor()
	_, err := codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}

func TestCreateCodec(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "page")
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := CreateCodec(format.CompressionType(0xFF), "page")
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	codec, err := GetCodec(format.CompressionLZ4)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}
