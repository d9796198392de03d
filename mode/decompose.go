package mode

import (
	"math"

	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/latent"
)

// DecomposeFloat64s converts a slice of float64 elements into the mode's
// latent streams. The result has NumLatentVars() streams, each of the same
// length as values.
//
// The conversion is exact for every finite, non-NaN input: ReconstructFloat64s
// inverts it bit-for-bit.
//
// Per mode:
//   - Classic: one stream of ordered-bit images.
//   - FloatMult: stream 0 holds round(x/base) as an order-preserving
//     unsigned, stream 1 the ULP distance between x and the reconstructed
//     multiple, zigzag packed.
//   - FloatDecomp: stream 0 holds the high bits of the ordered image,
//     stream 1 the k low bits.
//
// The mode must have passed ValidateForFloat64; an IntMult or unknown mode
// returns an invalid-argument error.
func DecomposeFloat64s(m Mode[uint64], values []float64) ([][]uint64, error) {
	switch m.Kind() {
	case KindClassic:
		out := make([]uint64, len(values))
		for i, v := range values {
			out[i] = latent.Float64Ordered(v)
		}

		return [][]uint64{out}, nil

	case KindFloatMult:
		base := latent.Float64FromOrdered(m.Param())
		quots := make([]uint64, len(values))
		adjs := make([]uint64, len(values))
		for i, v := range values {
			q := int64(math.Round(v / base))
			approx := float64(q) * base
			// ULP distance on ordered bits; wrapping keeps it exact across signs.
			adj := int64(latent.Float64Ordered(v) - latent.Float64Ordered(approx))
			quots[i] = latent.Int64Ordered(q)
			adjs[i] = latent.ZigZag(adj)
		}

		return [][]uint64{quots, adjs}, nil

	case KindFloatDecomp:
		k := uint(m.Param())
		mask := (uint64(1) << k) - 1
		highs := make([]uint64, len(values))
		lows := make([]uint64, len(values))
		for i, v := range values {
			bits := latent.Float64Ordered(v)
			highs[i] = bits >> k
			lows[i] = bits & mask
		}

		return [][]uint64{highs, lows}, nil

	default:
		return nil, errs.InvalidArgumentf("cannot decompose float chunk with %s mode", m.Kind())
	}
}

// ReconstructFloat64s inverts DecomposeFloat64s.
//
// Every stream must have the same length; a stream-count or length mismatch
// against the mode is reported as an invalid-argument error.
func ReconstructFloat64s(m Mode[uint64], streams [][]uint64) ([]float64, error) {
	if err := checkStreams(m, streams); err != nil {
		return nil, err
	}

	switch m.Kind() {
	case KindClassic:
		out := make([]float64, len(streams[0]))
		for i, u := range streams[0] {
			out[i] = latent.Float64FromOrdered(u)
		}

		return out, nil

	case KindFloatMult:
		base := latent.Float64FromOrdered(m.Param())
		out := make([]float64, len(streams[0]))
		for i := range streams[0] {
			q := latent.Int64FromOrdered(streams[0][i])
			adj := latent.UnZigZag(streams[1][i])
			approx := float64(q) * base
			out[i] = latent.Float64FromOrdered(latent.Float64Ordered(approx) + uint64(adj))
		}

		return out, nil

	case KindFloatDecomp:
		k := uint(m.Param())
		out := make([]float64, len(streams[0]))
		for i := range streams[0] {
			bits := streams[0][i]<<k | streams[1][i]
			out[i] = latent.Float64FromOrdered(bits)
		}

		return out, nil

	default:
		return nil, errs.InvalidArgumentf("cannot reconstruct float chunk with %s mode", m.Kind())
	}
}

// DecomposeInt64s converts a slice of int64 elements into the mode's latent
// streams. Classic produces one stream of order-preserving unsigned images;
// IntMult produces the Euclidean quotient stream (order-preserving unsigned)
// and the remainder stream in [0, base). Float modes return an
// invalid-argument error.
func DecomposeInt64s(m Mode[uint64], values []int64) ([][]uint64, error) {
	switch m.Kind() {
	case KindClassic:
		out := make([]uint64, len(values))
		for i, v := range values {
			out[i] = latent.Int64Ordered(v)
		}

		return [][]uint64{out}, nil

	case KindIntMult:
		base := int64(m.Param()) //nolint:gosec // ValidateForInt64 bounds the base to int64 range
		quots := make([]uint64, len(values))
		rems := make([]uint64, len(values))
		for i, v := range values {
			q := v / base
			r := v % base
			if r < 0 {
				r += base
				q--
			}
			quots[i] = latent.Int64Ordered(q)
			rems[i] = uint64(r)
		}

		return [][]uint64{quots, rems}, nil

	default:
		return nil, errs.InvalidArgumentf("cannot decompose integer chunk with %s mode", m.Kind())
	}
}

// ReconstructInt64s inverts DecomposeInt64s.
func ReconstructInt64s(m Mode[uint64], streams [][]uint64) ([]int64, error) {
	if err := checkStreams(m, streams); err != nil {
		return nil, err
	}

	switch m.Kind() {
	case KindClassic:
		out := make([]int64, len(streams[0]))
		for i, u := range streams[0] {
			out[i] = latent.Int64FromOrdered(u)
		}

		return out, nil

	case KindIntMult:
		base := int64(m.Param()) //nolint:gosec // ValidateForInt64 bounds the base to int64 range
		out := make([]int64, len(streams[0]))
		for i := range streams[0] {
			q := latent.Int64FromOrdered(streams[0][i])
			r := int64(streams[1][i]) //nolint:gosec // remainders are in [0, base)
			out[i] = q*base + r
		}

		return out, nil

	default:
		return nil, errs.InvalidArgumentf("cannot reconstruct integer chunk with %s mode", m.Kind())
	}
}

// checkStreams verifies the stream count matches the mode and all streams
// have equal length.
func checkStreams(m Mode[uint64], streams [][]uint64) error {
	if len(streams) != m.NumLatentVars() {
		return errs.InvalidArgumentf("%s mode expects %d latent streams but %d were given",
			m.Kind(), m.NumLatentVars(), len(streams))
	}
	for i := 1; i < len(streams); i++ {
		if len(streams[i]) != len(streams[0]) {
			return errs.InvalidArgumentf("latent stream %d has %d values but stream 0 has %d",
				i, len(streams[i]), len(streams[0]))
		}
	}

	return nil
}
