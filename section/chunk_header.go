package section

import (
	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/mode"
)

// ChunkHeader represents the fixed-size header section at the start of an encoded chunk.
type ChunkHeader struct {
	// ModeKind is the decomposition mode tag (mode.Kind).
	ModeKind uint8 // byte offset 4
	// DeltaOrder is the delta-encoding order requested for latent stream 0,
	// in [0, MaxDeltaOrder]. Stream 1, when present, is never delta encoded.
	DeltaOrder uint8 // byte offset 5
	// PageCount is the number of data pages in the chunk, max 65535.
	PageCount uint16 // byte offset 6-7
	// ModeParam is the mode's raw parameter as a latent-sized unsigned.
	ModeParam uint64 // byte offset 8-15
	// ElementCount is the total number of elements across all pages.
	ElementCount uint64 // byte offset 16-23

	// Flag is a packed field for various flags and the magic number.
	Flag ChunkFlag // byte offset 0-3
}

// NewChunkHeader creates a new ChunkHeader with default flags.
// The mode, page count and element count are filled in by the encoder.
func NewChunkHeader() *ChunkHeader {
	return &ChunkHeader{
		Flag: NewChunkFlag(),
	}
}

// SetMode records the chunk's decomposition mode in the header.
func (h *ChunkHeader) SetMode(m mode.Mode[uint64]) {
	h.ModeKind = uint8(m.Kind())
	h.ModeParam = m.Param()
}

// Mode reassembles the decomposition mode recorded in the header.
func (h *ChunkHeader) Mode() mode.Mode[uint64] {
	return mode.FromParts(mode.Kind(h.ModeKind), h.ModeParam)
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing the header (must be at least 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is too short, or flag/field validation errors
func (h *ChunkHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	// Parse the flag first to determine endianness (the flag word itself is
	// always little-endian).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]

	engine := h.Flag.GetEndianEngine()

	h.ModeKind = data[4]
	h.DeltaOrder = data[5]
	h.PageCount = engine.Uint16(data[6:8])
	h.ModeParam = engine.Uint64(data[8:16])
	h.ElementCount = engine.Uint64(data[16:24])

	return h.Validate()
}

// Bytes serializes the ChunkHeader into a byte slice.
func (h *ChunkHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := h.Flag.GetEndianEngine()

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.EncodingType
	b[3] = h.Flag.CompressionType
	b[4] = h.ModeKind
	b[5] = h.DeltaOrder
	engine.PutUint16(b[6:8], h.PageCount)
	engine.PutUint64(b[8:16], h.ModeParam)
	engine.PutUint64(b[16:24], h.ElementCount)
	// bytes 24-31 reserved, zero

	return b
}

// Validate checks the header's flag word and field ranges.
func (h *ChunkHeader) Validate() error {
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if h.ModeKind > uint8(mode.KindFloatDecomp) {
		return errs.ErrInvalidHeaderFlags
	}

	if h.DeltaOrder > MaxDeltaOrder {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
