package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/internal/pool"
)

// LatentVarintEncoder encodes latent words as unsigned LEB128 varints.
//
// Varint encoding pays off when most words are small, which is the typical
// shape of a delta-encoded latent stream or an IntMult remainder stream with
// a small base: common words cost 1-2 bytes instead of 8. Wide words (e.g.
// raw ordered float bits) degrade to 10 bytes each, so pair this encoding
// with delta encoding or prefer raw encoding for such streams.
//
// Varint payloads are byte-order independent; no endian engine is involved.
type LatentVarintEncoder struct {
	temp  [binary.MaxVarintLen64]byte
	buf   *pool.ByteBuffer
	count int
}

var _ LatentEncoder = (*LatentVarintEncoder)(nil)

// NewLatentVarintEncoder creates a varint latent encoder.
func NewLatentVarintEncoder() *LatentVarintEncoder {
	return &LatentVarintEncoder{
		buf: pool.GetStreamBuffer(),
	}
}

// Write encodes a single latent word as a varint (1-10 bytes).
//
// Panics if Finish() has been called (nil buffer).
func (e *LatentVarintEncoder) Write(v uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.Grow(binary.MaxVarintLen64)
	n := binary.PutUvarint(e.temp[:], v)
	e.buf.MustWrite(e.temp[:n])
}

// WriteSlice encodes a slice of latent words.
//
// The buffer is pre-grown with a 2-bytes-per-word estimate, the common case
// for delta-encoded streams; outliers grow the buffer incrementally.
func (e *LatentVarintEncoder) WriteSlice(values []uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values) * 2)
	for _, v := range values {
		n := binary.PutUvarint(e.temp[:], v)
		e.buf.MustWrite(e.temp[:n])
	}
}

// Bytes returns the encoded byte slice.
func (e *LatentVarintEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of latent words written.
func (e *LatentVarintEncoder) Len() int {
	return e.count
}

// Size returns the encoded payload size in bytes.
func (e *LatentVarintEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the word count but keeps the accumulated payload.
func (e *LatentVarintEncoder) Reset() {
	e.count = 0
}

// Finish returns the internal buffer to the pool. The encoder is unusable afterwards.
func (e *LatentVarintEncoder) Finish() {
	pool.PutStreamBuffer(e.buf)
	e.buf = nil
}

// LatentVarintDecoder decodes varint latent payloads.
type LatentVarintDecoder struct{}

var _ LatentDecoder = (*LatentVarintDecoder)(nil)

// NewLatentVarintDecoder creates a varint latent decoder.
func NewLatentVarintDecoder() *LatentVarintDecoder {
	return &LatentVarintDecoder{}
}

// All returns an iterator yielding up to count latent words from data.
func (d *LatentVarintDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		offset := 0
		for i := 0; i < count; i++ {
			v, n := binary.Uvarint(data[offset:])
			if n <= 0 {
				return
			}
			offset += n
			if !yield(v) {
				return
			}
		}
	}
}

// Decode decodes exactly count latent words from data.
func (d *LatentVarintDecoder) Decode(data []byte, count int) ([]uint64, error) {
	out := make([]uint64, count)
	offset := 0
	for i := range out {
		v, n := binary.Uvarint(data[offset:])
		if n <= 0 {
			return nil, errs.ErrMalformedPayload
		}
		offset += n
		out[i] = v
	}

	return out, nil
}
