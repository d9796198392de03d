package chunk

import (
	"github.com/arloliu/numo/encoding"
	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/format"
	"github.com/arloliu/numo/internal/hash"
	"github.com/arloliu/numo/internal/pool"
	"github.com/arloliu/numo/mode"
	"github.com/arloliu/numo/section"
)

// FloatEncoder encodes chunks of float64 elements.
//
// An encoder carries only configuration; Encode is a pure function of its
// arguments plus that configuration, so one encoder may encode any number of
// chunks. Encoders are not safe for concurrent use; share the configuration
// by creating one encoder per goroutine instead.
type FloatEncoder struct {
	cfg *encoderConfig
}

// NewFloatEncoder creates a float64 chunk encoder.
//
// Defaults: Classic mode, single-page chunk spec, delta order 0, varint
// latent encoding, no compression, little-endian.
//
// Returns:
//   - *FloatEncoder: A new encoder instance
//   - error: an invalid-argument error from a rejected option
func NewFloatEncoder(opts ...EncoderOption) (*FloatEncoder, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}
	cfg.header.Flag.SetIntElements(false)

	return &FloatEncoder{cfg: cfg}, nil
}

// Encode encodes one chunk of float64 elements and returns the chunk bytes.
//
// The mode's parameter invariants and the chunk spec's page partition are
// validated against the actual element count before any byte is produced.
//
// Returns:
//   - []byte: the encoded chunk (header, page table, page payloads)
//   - error: an invalid-argument error for a mode/spec violation, or a
//     compression error
func (e *FloatEncoder) Encode(values []float64) ([]byte, error) {
	if err := mode.ValidateForFloat64(e.cfg.mode); err != nil {
		return nil, err
	}

	pageSizes, err := e.cfg.spec.PageSizes(len(values))
	if err != nil {
		return nil, err
	}

	streams, err := mode.DecomposeFloat64s(e.cfg.mode, values)
	if err != nil {
		return nil, err
	}

	return encodeChunk(e.cfg, streams, pageSizes)
}

// IntEncoder encodes chunks of int64 elements.
//
// See FloatEncoder for the session model; the two differ only in element
// type and in which modes apply (Classic and IntMult for integers).
type IntEncoder struct {
	cfg *encoderConfig
}

// NewIntEncoder creates an int64 chunk encoder. Defaults match NewFloatEncoder.
func NewIntEncoder(opts ...EncoderOption) (*IntEncoder, error) {
	cfg, err := newEncoderConfig(opts...)
	if err != nil {
		return nil, err
	}
	cfg.header.Flag.SetIntElements(true)

	return &IntEncoder{cfg: cfg}, nil
}

// Encode encodes one chunk of int64 elements and returns the chunk bytes.
func (e *IntEncoder) Encode(values []int64) ([]byte, error) {
	if err := mode.ValidateForInt64(e.cfg.mode); err != nil {
		return nil, err
	}

	pageSizes, err := e.cfg.spec.PageSizes(len(values))
	if err != nil {
		return nil, err
	}

	streams, err := mode.DecomposeInt64s(e.cfg.mode, values)
	if err != nil {
		return nil, err
	}

	return encodeChunk(e.cfg, streams, pageSizes)
}

// newStreamEncoder creates the latent encoder matching the configured
// byte-level encoding.
func newStreamEncoder(cfg *encoderConfig) encoding.LatentEncoder {
	if cfg.header.Flag.Encoding() == format.TypeRaw {
		return encoding.NewLatentRawEncoder(cfg.header.Flag.GetEndianEngine())
	}

	return encoding.NewLatentVarintEncoder()
}

// encodeChunk runs the shared page-by-page encoding pipeline:
// delta encode each page's slice of each latent stream, serialize it with
// the configured stream encoder, compress, checksum, and record a page table
// entry. Finally the header, page table and payloads are assembled into one
// chunk.
//
// The streams are mutated in place by the delta transform; callers pass
// freshly decomposed streams.
func encodeChunk(cfg *encoderConfig, streams [][]uint64, pageSizes []int) ([]byte, error) {
	if len(pageSizes) > section.MaxPageCount {
		return nil, errs.InvalidArgumentf("chunk spec has %d pages but the maximum is %d",
			len(pageSizes), section.MaxPageCount)
	}

	header := cfg.header
	header.SetMode(cfg.mode)
	header.PageCount = uint16(len(pageSizes)) //nolint:gosec // bounded by MaxPageCount
	engine := header.Flag.GetEndianEngine()

	payloadBuf := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(payloadBuf)

	entries := make([]section.PageEntry, 0, len(pageSizes))

	offset := 0
	for _, size := range pageSizes {
		entry := section.PageEntry{
			Count: uint32(size), //nolint:gosec // page sizes are positive and validated
		}

		for s, stream := range streams {
			page := stream[offset : offset+size]
			order := cfg.mode.DeltaOrderForLatentVar(s, cfg.deltaOrder)
			encoding.DeltaEncode(page, order)

			enc := newStreamEncoder(cfg)
			enc.WriteSlice(page)

			compressed, err := cfg.codec.Compress(enc.Bytes())
			if err != nil {
				enc.Finish()
				return nil, err
			}

			checksum := hash.Checksum(compressed)
			if s == 0 {
				entry.Stream0Size = uint32(len(compressed)) //nolint:gosec
				entry.Stream0Checksum = checksum
			} else {
				entry.Stream1Size = uint32(len(compressed)) //nolint:gosec
				entry.Stream1Checksum = checksum
			}

			payloadBuf.MustWrite(compressed)
			enc.Finish()
		}

		offset += size
		entries = append(entries, entry)
	}

	header.ElementCount = uint64(offset)

	out := make([]byte, 0, section.HeaderSize+len(entries)*section.PageEntrySize+payloadBuf.Len())
	out = append(out, header.Bytes()...)
	for i := range entries {
		out = append(out, entries[i].Bytes(engine)...)
	}
	out = append(out, payloadBuf.Bytes()...)

	return out, nil
}
