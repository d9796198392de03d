package mode

import (
	"math"

	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/latent"
)

// minNormal64 is the smallest positive normal float64 (2^-1022).
const minNormal64 = 0x1p-1022

// ValidateForFloat64 checks the mode's parameter invariants for a chunk of
// float64 elements.
//
// Returns:
//   - error: an invalid-argument error when the mode does not apply to
//     float data or its parameter is out of range, nil otherwise
func ValidateForFloat64(m Mode[uint64]) error {
	switch m.Kind() {
	case KindClassic:
		return nil
	case KindIntMult:
		return errs.InvalidArgument("int mult mode does not apply to float chunks")
	case KindFloatMult:
		base := latent.Float64FromOrdered(m.Param())
		if math.IsNaN(base) || math.IsInf(base, 0) || math.Abs(base) < minNormal64 {
			return errs.InvalidArgumentf("float mult base must be a finite, nonzero, normal float, got %g", base)
		}

		return nil
	case KindFloatDecomp:
		k := m.Param()
		if k < 1 || k > latent.MantissaBits64-1 {
			return errs.InvalidArgumentf("float decomp bit count must be in [1, %d], got %d", latent.MantissaBits64-1, k)
		}

		return nil
	default:
		return errs.InvalidArgumentf("unknown mode kind: %d", m.Kind())
	}
}

// ValidateForInt64 checks the mode's parameter invariants for a chunk of
// int64 elements.
func ValidateForInt64(m Mode[uint64]) error {
	switch m.Kind() {
	case KindClassic:
		return nil
	case KindIntMult:
		base := m.Param()
		if base < 2 {
			return errs.InvalidArgumentf("int mult base must be at least 2, got %d", base)
		}
		if base > math.MaxInt64 {
			return errs.InvalidArgumentf("int mult base must fit in int64, got %d", base)
		}

		return nil
	case KindFloatMult, KindFloatDecomp:
		return errs.InvalidArgumentf("%s mode does not apply to integer chunks", m.Kind())
	default:
		return errs.InvalidArgumentf("unknown mode kind: %d", m.Kind())
	}
}
