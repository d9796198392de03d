// Package section defines the low-level binary structures and constants for the numo chunk format.
//
// This package provides the foundational types that define the physical
// layout of an encoded chunk. It handles binary serialization and
// deserialization of the chunk header, its packed flag word, and the page
// table entries, ensuring a consistent byte-level representation across
// platforms.
//
// # Chunk Structure
//
// An encoded chunk consists of fixed-size sections followed by variable-size
// page payloads:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ Header (32 bytes, fixed)                                │
//	│  - Flag (4 bytes): magic/options/encoding/compression   │
//	│  - ModeKind (1 byte), DeltaOrder (1 byte)               │
//	│  - PageCount (2 bytes)                                  │
//	│  - ModeParam (8 bytes)                                  │
//	│  - ElementCount (8 bytes)                               │
//	├─────────────────────────────────────────────────────────┤
//	│ Page table (32 bytes × PageCount, fixed entries)        │
//	│  - per page: element count, per-stream payload sizes,   │
//	│    per-stream xxHash64 checksums                        │
//	├─────────────────────────────────────────────────────────┤
//	│ Page payloads (variable)                                │
//	│  - page 0 stream 0, page 0 stream 1, page 1 stream 0... │
//	└─────────────────────────────────────────────────────────┘
//
// The page table entries are fixed size so a reader can locate page k's
// payload with arithmetic over the first k entries, without decoding the
// pages themselves. This is why page sizes must be pinned before encoding
// begins (see the chunk package).
//
// Most users never touch this package directly; the chunk package writes
// and parses these structures.
package section
