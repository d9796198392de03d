// Package encoding provides the byte-level codecs for latent streams.
//
// A chunk encoder decomposes its elements into one or two latent streams of
// uint64 words (see the mode package), optionally delta encodes each stream,
// and then serializes each page's words with one of the codecs defined here:
//
//   - LatentRawEncoder / LatentRawDecoder: fixed 8-byte words, random access.
//   - LatentVarintEncoder / LatentVarintDecoder: LEB128 varints, compact for
//     delta-encoded or small-valued streams.
//
// DeltaEncode / DeltaDecode implement the order-n first-difference transform
// with zigzag packing, applied per page.
//
// This package is designed for advanced use cases; most users should use the
// chunk package, which selects and drives these codecs.
package encoding
