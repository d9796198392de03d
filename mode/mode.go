// Package mode defines the decomposition modes a chunk may use.
//
// A mode describes how each input number is converted into one or two latent
// variables before stream encoding. Most real-world numeric streams are drawn
// from one of a few narrow distributions, and picking the matching
// decomposition is what makes the latent streams compress well:
//
//   - Classic: the data is drawn from a single smooth distribution. Each
//     number becomes one latent, its order-preserving bit image.
//   - IntMult: the data is generated by two processes, one whose outputs are
//     multiplied by a base, and one producing values in [0, base). Each number
//     x becomes the pair (x / base, x mod base).
//   - FloatMult: the data is a smooth distribution multiplied by a float base
//     and perturbed by floating point error. Each number x becomes
//     round(x/base) plus an adjustment counted in ULPs.
//   - FloatDecomp: each float's ordered-bit image b is split at bit k into
//     the pair (b >> k, b & ((1<<k)-1)).
//
// Mode values are small, immutable and comparable. The parameter of the
// float modes is carried as its ordered-bit image rather than a native
// float, which keeps Mode trivially comparable and hashable and sidesteps
// NaN equality pitfalls.
package mode

import (
	"fmt"

	"github.com/arloliu/numo/latent"
)

// Kind identifies a decomposition mode.
type Kind uint8

const (
	KindClassic     Kind = 0x0 // KindClassic is the identity decomposition.
	KindIntMult     Kind = 0x1 // KindIntMult is quotient/remainder decomposition by an integer base.
	KindFloatMult   Kind = 0x2 // KindFloatMult is multiplier/ULP-adjustment decomposition by a float base.
	KindFloatDecomp Kind = 0x3 // KindFloatDecomp is a high-bits/low-bits split of the ordered float image.
)

func (k Kind) String() string {
	switch k {
	case KindClassic:
		return "Classic"
	case KindIntMult:
		return "IntMult"
	case KindFloatMult:
		return "FloatMult"
	case KindFloatDecomp:
		return "FloatDecomp"
	default:
		return "Unknown"
	}
}

// Mode is an immutable tagged value pairing a Kind with its parameter.
//
// The parameter is always carried as a latent-sized unsigned integer:
//   - Classic: unused (zero).
//   - IntMult: the integer base, at least 2.
//   - FloatMult: the ordered-bit image of the float base.
//   - FloatDecomp: the split bit count k.
//
// The zero value is Classic. Mode supports value equality via ==.
type Mode[L latent.Unsigned] struct {
	kind  Kind
	param L
}

// Classic returns the identity mode.
func Classic[L latent.Unsigned]() Mode[L] {
	return Mode[L]{kind: KindClassic}
}

// IntMult returns the quotient/remainder mode for the given integer base.
// The base must be at least 2; this is validated when an encoder consumes
// the mode, not here.
func IntMult[L latent.Unsigned](base L) Mode[L] {
	return Mode[L]{kind: KindIntMult, param: base}
}

// FloatMult64 returns the multiplier/adjustment mode for a float64 base,
// storing the base as its ordered-bit image.
func FloatMult64(base float64) Mode[uint64] {
	return Mode[uint64]{kind: KindFloatMult, param: latent.Float64Ordered(base)}
}

// FloatMult32 returns the multiplier/adjustment mode for a float32 base.
func FloatMult32(base float32) Mode[uint32] {
	return Mode[uint32]{kind: KindFloatMult, param: latent.Float32Ordered(base)}
}

// FloatDecomp64 returns the bit-split mode for float64 data with the given
// split bit count k. Valid k satisfy 1 <= k <= latent.MantissaBits64-1;
// validation happens when an encoder consumes the mode.
func FloatDecomp64(k uint32) Mode[uint64] {
	return Mode[uint64]{kind: KindFloatDecomp, param: uint64(k)}
}

// FloatDecomp32 returns the bit-split mode for float32 data.
func FloatDecomp32(k uint32) Mode[uint32] {
	return Mode[uint32]{kind: KindFloatDecomp, param: k}
}

// FromParts reassembles a Mode from a kind tag and raw parameter, e.g. when
// parsing a chunk header. It does not validate the parameter.
func FromParts[L latent.Unsigned](kind Kind, param L) Mode[L] {
	return Mode[L]{kind: kind, param: param}
}

// Kind returns the mode's tag.
func (m Mode[L]) Kind() Kind {
	return m.kind
}

// Param returns the mode's raw parameter as the latent carrier type.
// For FloatMult the value is the ordered-bit image of the base; decode it
// with latent.Float64FromOrdered / latent.Float32FromOrdered.
func (m Mode[L]) Param() L {
	return m.param
}

// NumLatentVars returns how many latent streams this mode produces per
// chunk: 1 for Classic, 2 for every other mode.
func (m Mode[L]) NumLatentVars() int {
	switch m.kind {
	case KindClassic:
		return 1
	case KindIntMult, KindFloatMult, KindFloatDecomp:
		return 2
	default:
		panic(fmt.Sprintf("unknown mode kind %d", m.kind))
	}
}

// DeltaOrderForLatentVar returns the delta order to apply to the given
// latent stream. Latent 0 uses the requested order. Latent 1 of a
// two-latent mode always uses order 0: it carries a modular remainder, a
// ULP adjustment or a low-bit remainder, all near-uniform over short
// windows, and delta encoding a uniform stream makes it bimodal and
// larger.
//
// Any other (mode, index) combination is a caller bug and panics.
func (m Mode[L]) DeltaOrderForLatentVar(latentIdx int, deltaOrder int) int {
	switch {
	case latentIdx == 0:
		return deltaOrder
	case latentIdx == 1 && m.NumLatentVars() == 2:
		return 0
	default:
		panic(fmt.Sprintf("unknown latent %s/%d", m.kind, latentIdx))
	}
}

// String renders the mode for debugging. Float parameters are decoded from
// their ordered-bit image on demand.
func (m Mode[L]) String() string {
	switch m.kind {
	case KindClassic:
		return "Classic"
	case KindFloatMult:
		switch any(m.param).(type) {
		case uint64:
			return fmt.Sprintf("FloatMult(%g)", latent.Float64FromOrdered(uint64(m.param)))
		case uint32:
			return fmt.Sprintf("FloatMult(%g)", latent.Float32FromOrdered(uint32(m.param)))
		default:
			return fmt.Sprintf("FloatMult(%#x)", uint64(m.param))
		}
	default:
		return fmt.Sprintf("%s(%d)", m.kind, uint64(m.param))
	}
}
