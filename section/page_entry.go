package section

import (
	"github.com/arloliu/numo/endian"
	"github.com/arloliu/numo/errs"
)

// PageEntry records information about a single data page in the page table.
// It is a fixed size of 32 bytes, which is what lets a reader seek to page k
// by summing the payload sizes of the first k entries without decoding them.
type PageEntry struct {
	// Count is the number of elements in this page. Page sizes are pinned by
	// the chunk spec before encoding begins, so this value is known up front.
	//
	// Offset: 0, Size: 4 bytes
	Count uint32

	// Stream0Size is the byte length of latent stream 0's payload for this
	// page, after encoding and compression.
	//
	// Offset: 4, Size: 4 bytes
	Stream0Size uint32

	// Stream1Size is the byte length of latent stream 1's payload for this
	// page. Zero when the chunk's mode produces a single latent stream.
	//
	// Offset: 8, Size: 4 bytes
	Stream1Size uint32

	// Stream0Checksum is the xxHash64 of stream 0's payload bytes as stored
	// (i.e. after compression).
	//
	// Offset: 16, Size: 8 bytes
	Stream0Checksum uint64

	// Stream1Checksum is the xxHash64 of stream 1's payload bytes as stored.
	// Zero when the chunk's mode produces a single latent stream.
	//
	// Offset: 24, Size: 8 bytes
	Stream1Checksum uint64
}

// Bytes returns the page entry as a byte slice using the specified endian engine.
func (e *PageEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [PageEntrySize]byte // stack allocation, it's faster than heap allocation
	engine.PutUint32(b[0:4], e.Count)
	engine.PutUint32(b[4:8], e.Stream0Size)
	engine.PutUint32(b[8:12], e.Stream1Size)
	// bytes 12-15 reserved, zero
	engine.PutUint64(b[16:24], e.Stream0Checksum)
	engine.PutUint64(b[24:32], e.Stream1Checksum)

	return b[:]
}

// Parse parses a page entry from a byte slice using the specified endian engine.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than PageEntrySize
func (e *PageEntry) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < PageEntrySize {
		return errs.ErrInvalidHeaderSize
	}

	e.Count = engine.Uint32(data[0:4])
	e.Stream0Size = engine.Uint32(data[4:8])
	e.Stream1Size = engine.Uint32(data[8:12])
	e.Stream0Checksum = engine.Uint64(data[16:24])
	e.Stream1Checksum = engine.Uint64(data[24:32])

	return nil
}

// PayloadSize returns the total payload byte length of this page.
func (e *PageEntry) PayloadSize() int {
	return int(e.Stream0Size) + int(e.Stream1Size)
}
