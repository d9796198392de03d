package section

import "math"

const (
	// Bit masks for the packed Options field
	ElementKindMask  = 0x0001 // Mask for element kind bit (bit 0): 0=float64, 1=int64
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1): 0=little-endian, 1=big-endian
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3), must be 0
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// Magic number (bits 4-15)
	MagicChunkV1Opt = 0xEC10 // MagicChunkV1Opt is the version 1 magic number for the chunk format.
)

// offsets and section sizes in the encoded chunk
const (
	HeaderSize      = 32             // fixed header size in bytes
	PageEntrySize   = 32             // fixed page table entry size in bytes
	PageTableOffset = HeaderSize     // byte offset where the page table starts
	MaxPageCount    = math.MaxUint16 // maximum number of pages per chunk
	MaxDeltaOrder   = 7              // maximum delta-encoding order for latent stream 0
)
