// Package numo is a compact binary codec for sequences of float64 and int64
// values.
//
// Values are encoded into self-contained chunks. A chunk carries a fixed
// 32-byte header, a page table, and per-page payloads; inside each page the
// values are decomposed into one or two latent streams by a mode
// (see the mode package), optionally delta encoded, serialized as raw or
// varint words, and compressed. Decoders can read a whole chunk or seek to a
// single page.
//
// The chunk package is the full-control surface. This package offers
// one-call helpers for the common case of compressing a slice into a chunk
// and back:
//
//	data, err := numo.CompressFloat64s(values,
//		chunk.WithMode(mode.FloatMult64(0.25)),
//		chunk.WithDeltaOrder(1),
//		chunk.WithCompression(format.CompressionZstd),
//	)
//	...
//	values, err = numo.DecompressFloat64s(data)
package numo

import (
	"github.com/arloliu/numo/chunk"
)

// CompressFloat64s encodes values into a single chunk.
//
// With no options the chunk uses Classic mode, one page, varint latent
// encoding and no compression.
func CompressFloat64s(values []float64, opts ...chunk.EncoderOption) ([]byte, error) {
	encoder, err := chunk.NewFloatEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(values)
}

// DecompressFloat64s decodes every value of a chunk produced by
// CompressFloat64s or a chunk.FloatEncoder.
func DecompressFloat64s(data []byte) ([]float64, error) {
	decoder, err := chunk.NewFloatDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}

// CompressInt64s encodes values into a single chunk. Defaults match
// CompressFloat64s.
func CompressInt64s(values []int64, opts ...chunk.EncoderOption) ([]byte, error) {
	encoder, err := chunk.NewIntEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return encoder.Encode(values)
}

// DecompressInt64s decodes every value of a chunk produced by CompressInt64s
// or a chunk.IntEncoder.
func DecompressInt64s(data []byte) ([]int64, error) {
	decoder, err := chunk.NewIntDecoder(data)
	if err != nil {
		return nil, err
	}

	return decoder.Decode()
}
