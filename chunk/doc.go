// Package chunk provides the top-level encode/decode surface for numo chunks.
//
// A chunk is a self-contained unit of compressed numeric data: a fixed-size
// header, a page table with one fixed-size entry per data page, and the page
// payloads. The ChunkSpec controls how elements are partitioned into pages;
// PagingSpec defaults to a single page holding every element.
//
// Encoding pipeline, per page and per latent stream:
//
//	elements -> mode decomposition -> delta encode -> raw/varint encode
//	         -> compress -> checksum -> payload
//
// Because every page is delta encoded independently and the page table
// entries are fixed size, a decoder can seek to page k and decode it without
// touching any other page's payload.
//
// FloatEncoder/FloatDecoder handle float64 elements (Classic, FloatMult and
// FloatDecomp modes); IntEncoder/IntDecoder handle int64 elements (Classic
// and IntMult modes). The element kind is recorded in the chunk header and
// checked when a decoder is created.
package chunk
