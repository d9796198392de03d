package mode

import (
	"testing"

	"github.com/arloliu/numo/latent"
	"github.com/stretchr/testify/require"
)

func TestMode_ZeroValueIsClassic(t *testing.T) {
	var m Mode[uint64]
	require.Equal(t, KindClassic, m.Kind())
	require.Equal(t, Classic[uint64](), m)
}

func TestMode_NumLatentVars(t *testing.T) {
	tests := []struct {
		name string
		mode Mode[uint64]
		want int
	}{
		{"Classic", Classic[uint64](), 1},
		{"IntMult", IntMult[uint64](10), 2},
		{"FloatMult", FloatMult64(0.1), 2},
		{"FloatDecomp", FloatDecomp64(4), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.mode.NumLatentVars())
		})
	}
}

func TestMode_DeltaOrderForLatentVar(t *testing.T) {
	// Latent 0 always passes the requested order through.
	require.Equal(t, 3, Classic[uint64]().DeltaOrderForLatentVar(0, 3))
	require.Equal(t, 5, IntMult[uint64](10).DeltaOrderForLatentVar(0, 5))
	require.Equal(t, 2, FloatMult64(0.25).DeltaOrderForLatentVar(0, 2))
	require.Equal(t, 1, FloatDecomp64(8).DeltaOrderForLatentVar(0, 1))

	// Latent 1 of a two-latent mode is never delta encoded.
	require.Equal(t, 0, IntMult[uint64](10).DeltaOrderForLatentVar(1, 7))
	require.Equal(t, 0, FloatMult64(0.25).DeltaOrderForLatentVar(1, 7))
	require.Equal(t, 0, FloatDecomp64(8).DeltaOrderForLatentVar(1, 7))
}

func TestMode_DeltaOrderForLatentVar_PanicsOnInvalidIndex(t *testing.T) {
	require.Panics(t, func() {
		Classic[uint64]().DeltaOrderForLatentVar(1, 0)
	})
	require.Panics(t, func() {
		IntMult[uint64](10).DeltaOrderForLatentVar(2, 0)
	})
	require.Panics(t, func() {
		FloatDecomp64(4).DeltaOrderForLatentVar(-1, 0)
	})
}

func TestMode_ValueEquality(t *testing.T) {
	require.Equal(t, IntMult[uint64](10), IntMult[uint64](10))
	require.NotEqual(t, IntMult[uint64](10), IntMult[uint64](11))
	require.NotEqual(t, IntMult[uint64](10), Classic[uint64]())
	require.Equal(t, FloatMult64(0.1), FloatMult64(0.1))
	require.NotEqual(t, FloatMult64(0.1), FloatMult64(0.2))
}

func TestFloatMult64_StoresOrderedBits(t *testing.T) {
	base := 0.001
	m := FloatMult64(base)
	require.Equal(t, KindFloatMult, m.Kind())
	require.Equal(t, latent.Float64Ordered(base), m.Param())
	require.Equal(t, base, latent.Float64FromOrdered(m.Param()))
}

func TestFloatDecomp64_StoresBitCount(t *testing.T) {
	m := FloatDecomp64(7)
	require.Equal(t, KindFloatDecomp, m.Kind())
	require.Equal(t, uint64(7), m.Param())
}

func TestFromParts_RoundTrip(t *testing.T) {
	orig := FloatMult64(2.5)
	rebuilt := FromParts(orig.Kind(), orig.Param())
	require.Equal(t, orig, rebuilt)
}

func TestMode_String(t *testing.T) {
	require.Equal(t, "Classic", Classic[uint64]().String())
	require.Equal(t, "IntMult(10)", IntMult[uint64](10).String())
	require.Equal(t, "FloatMult(0.1)", FloatMult64(0.1).String())
	require.Equal(t, "FloatDecomp(4)", FloatDecomp64(4).String())
}

func TestValidateForFloat64(t *testing.T) {
	require.NoError(t, ValidateForFloat64(Classic[uint64]()))
	require.NoError(t, ValidateForFloat64(FloatMult64(0.1)))
	require.NoError(t, ValidateForFloat64(FloatDecomp64(1)))
	require.NoError(t, ValidateForFloat64(FloatDecomp64(latent.MantissaBits64-1)))

	require.Error(t, ValidateForFloat64(IntMult[uint64](10)))
	require.Error(t, ValidateForFloat64(FloatMult64(0)))
	require.Error(t, ValidateForFloat64(FloatMult64(0x1p-1074))) // subnormal
	require.Error(t, ValidateForFloat64(FloatDecomp64(0)))
	require.Error(t, ValidateForFloat64(FloatDecomp64(latent.MantissaBits64)))
}

func TestValidateForInt64(t *testing.T) {
	require.NoError(t, ValidateForInt64(Classic[uint64]()))
	require.NoError(t, ValidateForInt64(IntMult[uint64](2)))
	require.NoError(t, ValidateForInt64(IntMult[uint64](1000000)))

	require.Error(t, ValidateForInt64(IntMult[uint64](0)))
	require.Error(t, ValidateForInt64(IntMult[uint64](1)))
	require.Error(t, ValidateForInt64(FloatMult64(0.1)))
	require.Error(t, ValidateForInt64(FloatDecomp64(4)))
}
