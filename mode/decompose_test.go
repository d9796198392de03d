package mode

import (
	"math"
	"testing"

	"github.com/arloliu/numo/latent"
	"github.com/stretchr/testify/require"
)

func TestDecomposeFloat64s_Classic(t *testing.T) {
	values := []float64{-3.5, 0, 1.25, 1e100}
	streams, err := DecomposeFloat64s(Classic[uint64](), values)
	require.NoError(t, err)
	require.Len(t, streams, 1)
	for i, v := range values {
		require.Equal(t, latent.Float64Ordered(v), streams[0][i])
	}

	back, err := ReconstructFloat64s(Classic[uint64](), streams)
	require.NoError(t, err)
	require.Equal(t, values, back)
}

func TestDecomposeFloat64s_FloatMult_ExactMultiples(t *testing.T) {
	base := 0.25 // exactly representable, multiples carry zero adjustment
	m := FloatMult64(base)
	values := []float64{-2.5, -0.25, 0, 0.75, 100.25}

	streams, err := DecomposeFloat64s(m, values)
	require.NoError(t, err)
	require.Len(t, streams, 2)
	for i, v := range values {
		require.Equal(t, latent.Int64Ordered(int64(math.Round(v/base))), streams[0][i])
		require.Equal(t, uint64(0), streams[1][i], "value %v should need no adjustment", v)
	}

	back, err := ReconstructFloat64s(m, streams)
	require.NoError(t, err)
	require.Equal(t, values, back)
}

func TestDecomposeFloat64s_FloatMult_PerturbedMultiples(t *testing.T) {
	// 0.1 is not exactly representable, so multiples accumulate float error
	// and the adjustment stream absorbs it.
	m := FloatMult64(0.1)
	values := make([]float64, 50)
	for i := range values {
		values[i] = float64(i-25) * 0.1
	}

	streams, err := DecomposeFloat64s(m, values)
	require.NoError(t, err)

	back, err := ReconstructFloat64s(m, streams)
	require.NoError(t, err)
	for i := range values {
		require.Equal(t, math.Float64bits(values[i]), math.Float64bits(back[i]), "index %d", i)
	}
}

func TestDecomposeFloat64s_FloatDecomp(t *testing.T) {
	const k = 8
	m := FloatDecomp64(k)
	values := []float64{-123.456, -1, 0, 0.5, 3.14159, 1e-300, 1e300}

	streams, err := DecomposeFloat64s(m, values)
	require.NoError(t, err)
	require.Len(t, streams, 2)
	for i, v := range values {
		bits := latent.Float64Ordered(v)
		require.Equal(t, bits>>k, streams[0][i])
		require.Equal(t, bits&((1<<k)-1), streams[1][i])
		require.Less(t, streams[1][i], uint64(1)<<k)
	}

	back, err := ReconstructFloat64s(m, streams)
	require.NoError(t, err)
	require.Equal(t, values, back)
}

func TestDecomposeFloat64s_RejectsIntMult(t *testing.T) {
	_, err := DecomposeFloat64s(IntMult[uint64](10), []float64{1, 2})
	require.Error(t, err)
}

func TestDecomposeInt64s_Classic(t *testing.T) {
	values := []int64{math.MinInt64, -7, 0, 42, math.MaxInt64}
	streams, err := DecomposeInt64s(Classic[uint64](), values)
	require.NoError(t, err)
	require.Len(t, streams, 1)

	back, err := ReconstructInt64s(Classic[uint64](), streams)
	require.NoError(t, err)
	require.Equal(t, values, back)
}

func TestDecomposeInt64s_IntMult(t *testing.T) {
	m := IntMult[uint64](10)
	values := []int64{-25, -10, -1, 0, 1, 9, 10, 11, 12345}

	streams, err := DecomposeInt64s(m, values)
	require.NoError(t, err)
	require.Len(t, streams, 2)

	// Remainders are Euclidean: always in [0, base) even for negative inputs.
	for i, v := range values {
		r := streams[1][i]
		require.Less(t, r, uint64(10), "remainder of %d", v)
		q := latent.Int64FromOrdered(streams[0][i])
		require.Equal(t, v, q*10+int64(r))
	}

	back, err := ReconstructInt64s(m, streams)
	require.NoError(t, err)
	require.Equal(t, values, back)
}

func TestDecomposeInt64s_RejectsFloatModes(t *testing.T) {
	_, err := DecomposeInt64s(FloatMult64(0.1), []int64{1})
	require.Error(t, err)
	_, err = DecomposeInt64s(FloatDecomp64(4), []int64{1})
	require.Error(t, err)
}

func TestReconstruct_StreamMismatch(t *testing.T) {
	_, err := ReconstructFloat64s(Classic[uint64](), [][]uint64{{1}, {2}})
	require.Error(t, err)

	_, err = ReconstructInt64s(IntMult[uint64](10), [][]uint64{{1, 2}, {3}})
	require.Error(t, err)
}
