package section

import (
	"github.com/arloliu/numo/endian"
	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/format"
)

// ChunkFlag represents the packed field for various flags in the chunk header.
type ChunkFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the element kind flag, 0 means float64 elements, 1 means int64.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the chunk format:
	//   - 0xEC10 (0b1110_1100_0001_0000): chunk format v1
	Options uint16

	// EncodingType is an enum indicating the byte-level encoding of the latent streams.
	EncodingType uint8
	// CompressionType is an enum indicating the compression applied to page payloads.
	CompressionType uint8
}

var (
	validEncodings = map[uint8]struct{}{
		uint8(format.TypeRaw):    {},
		uint8(format.TypeVarint): {},
	}

	validCompressions = map[uint8]struct{}{
		uint8(format.CompressionNone): {},
		uint8(format.CompressionZstd): {},
		uint8(format.CompressionS2):   {},
		uint8(format.CompressionLZ4):  {},
	}
)

// NewChunkFlag creates a new ChunkFlag with default settings: little-endian
// float64 elements, varint latent encoding, no compression.
func NewChunkFlag() ChunkFlag {
	flag := ChunkFlag{
		Options:         MagicChunkV1Opt,
		EncodingType:    uint8(format.TypeVarint),
		CompressionType: uint8(format.CompressionNone),
	}
	flag.WithLittleEndian()

	return flag
}

// IsIntElements returns whether the chunk holds int64 elements.
func (f ChunkFlag) IsIntElements() bool {
	return (f.Options & ElementKindMask) != 0
}

// IsFloatElements returns whether the chunk holds float64 elements.
func (f ChunkFlag) IsFloatElements() bool {
	return (f.Options & ElementKindMask) == 0
}

// SetIntElements marks the chunk as holding int64 (true) or float64 (false) elements.
func (f *ChunkFlag) SetIntElements(enabled bool) {
	if enabled {
		f.Options |= ElementKindMask
	} else {
		f.Options &^= ElementKindMask
	}
}

// IsLittleEndian returns whether the payload data is little-endian.
func (f ChunkFlag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload data is big-endian.
func (f ChunkFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *ChunkFlag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian byte order.
func (f *ChunkFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f ChunkFlag) GetEndianEngine() endian.EndianEngine {
	if f.IsBigEndian() {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

// GetMagicNumber returns the magic number from the Options field.
func (f ChunkFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f ChunkFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicChunkV1Opt
}

// Encoding returns the latent stream encoding type.
func (f ChunkFlag) Encoding() format.EncodingType {
	return format.EncodingType(f.EncodingType)
}

// SetEncoding sets the latent stream encoding type.
func (f *ChunkFlag) SetEncoding(enc format.EncodingType) {
	f.EncodingType = uint8(enc)
}

// Compression returns the page payload compression type.
func (f ChunkFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the page payload compression type.
func (f *ChunkFlag) SetCompression(compression format.CompressionType) {
	f.CompressionType = uint8(compression)
}

// Validate checks if the flag contains valid values.
func (f ChunkFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validEncodings[f.EncodingType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}
