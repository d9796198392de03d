// Package latent provides the unsigned-integer carrier types that numo's
// decomposition modes and stream encoders operate on.
//
// Every input number, whether integer or floating point, is transformed into
// one or two latent streams of fixed-width unsigned integers before byte-level
// encoding. This package defines the carrier type set and the order-preserving
// conversions into it:
//
//   - Float64Ordered / Float32Ordered map a float to an unsigned integer whose
//     natural order matches the numeric order of the original non-NaN floats.
//     The classic transform: flip the sign bit of non-negative floats, flip
//     every bit of negative ones. Lossless for all finite inputs.
//   - Int64Ordered maps a signed integer to an unsigned one by flipping the
//     sign bit, again preserving order.
//   - ZigZag / UnZigZag pack small signed deltas into small unsigned values.
//
// All conversions are exact and invertible; none of them allocate.
package latent

import "math"

const (
	signBit64 = uint64(1) << 63
	signBit32 = uint32(1) << 31

	// Width64 and Width32 are the carrier widths in bits.
	Width64 = 64
	Width32 = 32

	// MantissaBits64 and MantissaBits32 are the explicit mantissa widths of
	// IEEE 754 binary64 and binary32.
	MantissaBits64 = 52
	MantissaBits32 = 23
)

// Unsigned is the type set of latent carrier types.
type Unsigned interface {
	~uint16 | ~uint32 | ~uint64
}

// Float64Ordered returns the ordered-bit representation of f.
//
// The result is an unsigned integer whose natural order matches the numeric
// order of the original floats for every non-NaN input:
//
//	a < b  ⟺  Float64Ordered(a) < Float64Ordered(b)
//
// The conversion is lossless; Float64FromOrdered inverts it exactly.
func Float64Ordered(f float64) uint64 {
	bits := math.Float64bits(f)
	if bits&signBit64 != 0 {
		return ^bits
	}

	return bits | signBit64
}

// Float64FromOrdered inverts Float64Ordered.
func Float64FromOrdered(u uint64) float64 {
	if u&signBit64 != 0 {
		return math.Float64frombits(u &^ signBit64)
	}

	return math.Float64frombits(^u)
}

// Float32Ordered returns the ordered-bit representation of f.
// See Float64Ordered for the ordering guarantee.
func Float32Ordered(f float32) uint32 {
	bits := math.Float32bits(f)
	if bits&signBit32 != 0 {
		return ^bits
	}

	return bits | signBit32
}

// Float32FromOrdered inverts Float32Ordered.
func Float32FromOrdered(u uint32) float32 {
	if u&signBit32 != 0 {
		return math.Float32frombits(u &^ signBit32)
	}

	return math.Float32frombits(^u)
}

// Int64Ordered maps a signed integer to an unsigned one preserving order,
// by flipping the sign bit (offset-binary representation).
func Int64Ordered(v int64) uint64 {
	return uint64(v) ^ signBit64
}

// Int64FromOrdered inverts Int64Ordered.
func Int64FromOrdered(u uint64) int64 {
	return int64(u ^ signBit64)
}

// ZigZag maps a signed value to an unsigned one so that values of small
// magnitude map to small unsigned values: 0→0, -1→1, 1→2, -2→3, ...
func ZigZag(v int64) uint64 {
	return uint64((v << 1) ^ (v >> 63))
}

// UnZigZag inverts ZigZag.
func UnZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1)
}
