package chunk

import (
	"fmt"

	"github.com/arloliu/numo/compress"
	"github.com/arloliu/numo/encoding"
	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/format"
	"github.com/arloliu/numo/internal/hash"
	"github.com/arloliu/numo/internal/pool"
	"github.com/arloliu/numo/mode"
	"github.com/arloliu/numo/section"
)

// chunkReader holds the parsed structural state shared by FloatDecoder and
// IntDecoder: the validated header, the page table, and per-page payload
// offsets computed from the fixed-size entries. Pages decode independently,
// so DecodePage(k) touches only page k's payload bytes.
type chunkReader struct {
	codec      compress.Codec
	payload    []byte
	entries    []section.PageEntry
	offsets    []int
	header     section.ChunkHeader
	numLatents int
}

// parseChunk validates the chunk's structure without decoding any payload.
func parseChunk(data []byte) (*chunkReader, error) {
	r := &chunkReader{}
	if err := r.header.Parse(data); err != nil {
		return nil, err
	}

	engine := r.header.Flag.GetEndianEngine()
	r.numLatents = r.header.Mode().NumLatentVars()

	tableSize := int(r.header.PageCount) * section.PageEntrySize
	if len(data) < section.HeaderSize+tableSize {
		return nil, errs.ErrTruncatedChunk
	}

	r.entries = make([]section.PageEntry, r.header.PageCount)
	r.offsets = make([]int, r.header.PageCount)

	payloadSize := 0
	elementCount := uint64(0)
	for i := range r.entries {
		pos := section.HeaderSize + i*section.PageEntrySize
		if err := r.entries[i].Parse(data[pos:pos+section.PageEntrySize], engine); err != nil {
			return nil, err
		}
		if r.numLatents == 1 && r.entries[i].Stream1Size != 0 {
			return nil, errs.ErrMalformedPayload
		}
		r.offsets[i] = payloadSize
		payloadSize += r.entries[i].PayloadSize()
		elementCount += uint64(r.entries[i].Count)
	}

	if elementCount != r.header.ElementCount {
		return nil, errs.ErrMalformedPayload
	}

	payload := data[section.HeaderSize+tableSize:]
	if len(payload) < payloadSize {
		return nil, errs.ErrTruncatedChunk
	}
	// Trailing bytes beyond the declared payload are ignored, which lets a
	// chunk be sliced out of a larger buffer without an exact-length cut.
	r.payload = payload[:payloadSize]

	codec, err := compress.GetCodec(r.header.Flag.Compression())
	if err != nil {
		return nil, err
	}
	r.codec = codec

	return r, nil
}

// newStreamDecoder creates the latent decoder matching the chunk's encoding flag.
func (r *chunkReader) newStreamDecoder() encoding.LatentDecoder {
	if r.header.Flag.Encoding() == format.TypeRaw {
		return encoding.NewLatentRawDecoder(r.header.Flag.GetEndianEngine())
	}

	return encoding.NewLatentVarintDecoder()
}

// decodePage decodes page k's latent streams: verify each stream's checksum,
// decompress, decode the latent words into pooled scratch slices, and undo
// the delta transform. The caller must invoke the returned release function
// once the streams have been consumed.
func (r *chunkReader) decodePage(k int) ([][]uint64, func(), error) {
	if k < 0 || k >= len(r.entries) {
		return nil, nil, errs.ErrPageIndexOutOfRange
	}

	entry := &r.entries[k]
	m := r.header.Mode()
	dec := r.newStreamDecoder()

	sizes := [2]int{int(entry.Stream0Size), int(entry.Stream1Size)}
	checksums := [2]uint64{entry.Stream0Checksum, entry.Stream1Checksum}

	streams := make([][]uint64, r.numLatents)
	cleanups := make([]func(), 0, r.numLatents)
	release := func() {
		for _, cleanup := range cleanups {
			cleanup()
		}
	}

	pos := r.offsets[k]
	for s := 0; s < r.numLatents; s++ {
		stored := r.payload[pos : pos+sizes[s]]
		pos += sizes[s]

		if hash.Checksum(stored) != checksums[s] {
			release()
			return nil, nil, errs.ErrChecksumMismatch
		}

		raw, err := r.codec.Decompress(stored)
		if err != nil {
			release()
			return nil, nil, fmt.Errorf("%w: page %d stream %d: %w", errs.ErrMalformedPayload, k, s, err)
		}

		words, cleanup := pool.GetUint64Slice(int(entry.Count))
		cleanups = append(cleanups, cleanup)

		i := 0
		for v := range dec.All(raw, len(words)) {
			words[i] = v
			i++
		}
		if i != len(words) {
			release()
			return nil, nil, fmt.Errorf("page %d stream %d: %w", k, s, errs.ErrMalformedPayload)
		}

		encoding.DeltaDecode(words, m.DeltaOrderForLatentVar(s, int(r.header.DeltaOrder)))
		streams[s] = words
	}

	return streams, release, nil
}

// decodeAll decodes every page and concatenates the latent streams in page order.
func (r *chunkReader) decodeAll() ([][]uint64, error) {
	streams := make([][]uint64, r.numLatents)
	for s := range streams {
		streams[s] = make([]uint64, 0, r.header.ElementCount)
	}

	for k := range r.entries {
		page, release, err := r.decodePage(k)
		if err != nil {
			return nil, err
		}
		for s := range streams {
			streams[s] = append(streams[s], page[s]...)
		}
		release()
	}

	return streams, nil
}

// pageSizes returns the element count of every page as a fresh slice.
func (r *chunkReader) pageSizes() []int {
	sizes := make([]int, len(r.entries))
	for i := range r.entries {
		sizes[i] = int(r.entries[i].Count)
	}

	return sizes
}

// FloatDecoder decodes chunks of float64 elements produced by FloatEncoder.
//
// A decoder is bound to one chunk; it parses and validates the structure
// eagerly, so metadata accessors never fail, and payload errors surface from
// Decode or DecodePage. Decoders are safe for concurrent page decoding.
type FloatDecoder struct {
	reader *chunkReader
}

// NewFloatDecoder parses the chunk's header and page table and validates the
// structure of data. The decoder keeps a reference to data; the caller must
// not mutate it while the decoder is in use.
//
// Returns:
//   - *FloatDecoder: A decoder positioned over the chunk
//   - error: ErrInvalidHeaderSize, ErrInvalidMagicNumber, ErrInvalidHeaderFlags,
//     ErrTruncatedChunk or ErrMalformedPayload on a structural problem, or an
//     invalid-argument error if the chunk holds int64 elements
func NewFloatDecoder(data []byte) (*FloatDecoder, error) {
	reader, err := parseChunk(data)
	if err != nil {
		return nil, err
	}

	if !reader.header.Flag.IsFloatElements() {
		return nil, errs.InvalidArgument("chunk holds int64 elements, use IntDecoder")
	}

	return &FloatDecoder{reader: reader}, nil
}

// NumElements returns the total number of elements in the chunk.
func (d *FloatDecoder) NumElements() int {
	return int(d.reader.header.ElementCount) //nolint:gosec // bounded by encoder-side slice length
}

// NumPages returns the number of data pages in the chunk.
func (d *FloatDecoder) NumPages() int {
	return len(d.reader.entries)
}

// PageSizes returns the element count of every page.
func (d *FloatDecoder) PageSizes() []int {
	return d.reader.pageSizes()
}

// Mode returns the decomposition mode recorded in the chunk header.
func (d *FloatDecoder) Mode() mode.Mode[uint64] {
	return d.reader.header.Mode()
}

// Decode decodes the whole chunk and returns all elements in order.
func (d *FloatDecoder) Decode() ([]float64, error) {
	streams, err := d.reader.decodeAll()
	if err != nil {
		return nil, err
	}

	return mode.ReconstructFloat64s(d.Mode(), streams)
}

// DecodePage decodes only page k and returns its elements. Pages are delta
// encoded independently, so this reads page k's payload bytes and nothing else.
func (d *FloatDecoder) DecodePage(k int) ([]float64, error) {
	streams, release, err := d.reader.decodePage(k)
	if err != nil {
		return nil, err
	}
	defer release()

	return mode.ReconstructFloat64s(d.Mode(), streams)
}

// IntDecoder decodes chunks of int64 elements produced by IntEncoder.
type IntDecoder struct {
	reader *chunkReader
}

// NewIntDecoder parses the chunk's header and page table and validates the
// structure of data. See NewFloatDecoder for the error surface; the element
// kind check runs the other way.
func NewIntDecoder(data []byte) (*IntDecoder, error) {
	reader, err := parseChunk(data)
	if err != nil {
		return nil, err
	}

	if !reader.header.Flag.IsIntElements() {
		return nil, errs.InvalidArgument("chunk holds float64 elements, use FloatDecoder")
	}

	return &IntDecoder{reader: reader}, nil
}

// NumElements returns the total number of elements in the chunk.
func (d *IntDecoder) NumElements() int {
	return int(d.reader.header.ElementCount) //nolint:gosec // bounded by encoder-side slice length
}

// NumPages returns the number of data pages in the chunk.
func (d *IntDecoder) NumPages() int {
	return len(d.reader.entries)
}

// PageSizes returns the element count of every page.
func (d *IntDecoder) PageSizes() []int {
	return d.reader.pageSizes()
}

// Mode returns the decomposition mode recorded in the chunk header.
func (d *IntDecoder) Mode() mode.Mode[uint64] {
	return d.reader.header.Mode()
}

// Decode decodes the whole chunk and returns all elements in order.
func (d *IntDecoder) Decode() ([]int64, error) {
	streams, err := d.reader.decodeAll()
	if err != nil {
		return nil, err
	}

	return mode.ReconstructInt64s(d.Mode(), streams)
}

// DecodePage decodes only page k and returns its elements.
func (d *IntDecoder) DecodePage(k int) ([]int64, error) {
	streams, release, err := d.reader.decodePage(k)
	if err != nil {
		return nil, err
	}
	defer release()

	return mode.ReconstructInt64s(d.Mode(), streams)
}
