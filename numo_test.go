package numo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numo"
	"github.com/arloliu/numo/chunk"
	"github.com/arloliu/numo/format"
	"github.com/arloliu/numo/mode"
)

func TestCompressFloat64s_RoundTrip(t *testing.T) {
	values := []float64{-1.5, -0.25, 0, 0.25, 0.5, 1e300, -1e-300}

	data, err := numo.CompressFloat64s(values)
	require.NoError(t, err)

	decoded, err := numo.DecompressFloat64s(data)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestCompressFloat64s_WithOptions(t *testing.T) {
	values := make([]float64, 256)
	for i := range values {
		values[i] = float64(i) * 0.25
	}

	data, err := numo.CompressFloat64s(values,
		chunk.WithMode(mode.FloatMult64(0.25)),
		chunk.WithDeltaOrder(1),
		chunk.WithCompression(format.CompressionZstd),
	)
	require.NoError(t, err)

	decoded, err := numo.DecompressFloat64s(data)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestCompressInt64s_RoundTrip(t *testing.T) {
	values := []int64{-1000, -7, 0, 7, 13, 1 << 60, -(1 << 60)}

	data, err := numo.CompressInt64s(values, chunk.WithMode(mode.IntMult[uint64](7)))
	require.NoError(t, err)

	decoded, err := numo.DecompressInt64s(data)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestDecompress_WrongElementKind(t *testing.T) {
	data, err := numo.CompressInt64s([]int64{1, 2, 3})
	require.NoError(t, err)

	_, err = numo.DecompressFloat64s(data)
	require.Error(t, err)
}
