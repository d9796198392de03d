package encoding

import "github.com/arloliu/numo/latent"

// DeltaEncode applies order rounds of consecutive wrapping differences to a
// latent stream in place, then zigzag-packs every word so that small signed
// differences become small unsigned values suitable for varint encoding.
//
// Each round keeps the first word as-is and replaces every later word with
// its wrapping difference from the predecessor, so the first order words
// act as the reconstruction heads. Order 0 leaves the stream untouched.
//
// The transform is applied per page: every page's stream is delta encoded
// independently, which is what lets a decoder seek to page k without
// touching pages 0..k-1.
func DeltaEncode(values []uint64, order int) {
	if order == 0 || len(values) == 0 {
		return
	}

	for r := 0; r < order; r++ {
		for i := len(values) - 1; i > r; i-- {
			values[i] -= values[i-1]
		}
	}

	for i, v := range values {
		values[i] = latent.ZigZag(int64(v)) //nolint:gosec // wrapping reinterpretation is intentional
	}
}

// DeltaDecode inverts DeltaEncode in place.
func DeltaDecode(values []uint64, order int) {
	if order == 0 || len(values) == 0 {
		return
	}

	for i, v := range values {
		values[i] = uint64(latent.UnZigZag(v)) //nolint:gosec // wrapping reinterpretation is intentional
	}

	for r := order - 1; r >= 0; r-- {
		for i := r + 1; i < len(values); i++ {
			values[i] += values[i-1]
		}
	}
}
