// Package compress provides compression codecs for numo page payloads.
//
// Numo applies a two-stage strategy to each latent stream: a byte-level
// encoding that exploits the stream's statistical shape (delta + varint, or
// raw words), then an optional general-purpose compression pass implemented
// here. Compression is applied per data page so pages remain independently
// decodable.
//
// Supported algorithms, keyed by format.CompressionType:
//   - None: bypass (fastest, largest)
//   - Zstd: best ratio, moderate speed
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression, moderate ratio
//
// All codecs are safe for concurrent use.
package compress
