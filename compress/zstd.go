package compress

// ZstdCompressor provides Zstandard compression for page payloads.
//
// Zstd trades some compression speed for the best ratio of the built-in
// codecs, which suits chunks written once and read many times, long-term
// retention, and bandwidth-limited transfers.
//
// Two implementations exist behind build tags: a cgo binding (valyala/gozstd)
// when cgo is available, and a pure-Go fallback (klauspost/compress/zstd)
// otherwise. Both produce standard zstd frames and interoperate freely.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
