package encoding

import (
	"iter"

	"github.com/arloliu/numo/endian"
	"github.com/arloliu/numo/errs"
	"github.com/arloliu/numo/internal/pool"
)

// LatentRawEncoder encodes latent words as fixed-width 8-byte values using
// the configured byte order.
//
// Raw encoding is the right choice when the latent distribution is wide
// (e.g. ordered float bits without delta encoding): every word costs exactly
// 8 bytes and decoding supports random access by index.
type LatentRawEncoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
	count  int
}

var _ LatentEncoder = (*LatentRawEncoder)(nil)

// NewLatentRawEncoder creates a raw latent encoder using the specified endian engine.
func NewLatentRawEncoder(engine endian.EndianEngine) *LatentRawEncoder {
	return &LatentRawEncoder{
		engine: engine,
		buf:    pool.GetStreamBuffer(),
	}
}

// Write encodes a single latent word as 8 bytes.
//
// Panics if Finish() has been called (nil buffer).
func (e *LatentRawEncoder) Write(v uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count++
	e.buf.B = e.engine.AppendUint64(e.buf.B, v)
}

// WriteSlice encodes a slice of latent words with a single buffer growth.
func (e *LatentRawEncoder) WriteSlice(values []uint64) {
	if e.buf == nil {
		panic("encoder already finished - cannot write after Finish()")
	}

	e.count += len(values)
	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.buf.B = e.engine.AppendUint64(e.buf.B, v)
	}
}

// Bytes returns the encoded byte slice.
func (e *LatentRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of latent words written.
func (e *LatentRawEncoder) Len() int {
	return e.count
}

// Size returns the encoded payload size in bytes.
func (e *LatentRawEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the word count but keeps the accumulated payload.
func (e *LatentRawEncoder) Reset() {
	e.count = 0
}

// Finish returns the internal buffer to the pool. The encoder is unusable afterwards.
func (e *LatentRawEncoder) Finish() {
	pool.PutStreamBuffer(e.buf)
	e.buf = nil
}

// LatentRawDecoder decodes fixed-width 8-byte latent payloads.
type LatentRawDecoder struct {
	engine endian.EndianEngine
}

var _ LatentDecoder = (*LatentRawDecoder)(nil)

// NewLatentRawDecoder creates a raw latent decoder using the specified endian engine.
func NewLatentRawDecoder(engine endian.EndianEngine) *LatentRawDecoder {
	return &LatentRawDecoder{engine: engine}
}

// All returns an iterator yielding up to count latent words from data.
func (d *LatentRawDecoder) All(data []byte, count int) iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		n := min(count, len(data)/8)
		for i := 0; i < n; i++ {
			if !yield(d.engine.Uint64(data[i*8 : i*8+8])) {
				return
			}
		}
	}
}

// Decode decodes exactly count latent words from data.
func (d *LatentRawDecoder) Decode(data []byte, count int) ([]uint64, error) {
	if len(data) < count*8 {
		return nil, errs.ErrMalformedPayload
	}

	out := make([]uint64, count)
	for i := range out {
		out[i] = d.engine.Uint64(data[i*8 : i*8+8])
	}

	return out, nil
}

// At returns the latent word at the given index, exploiting the fixed width
// for random access without decoding the preceding words.
func (d *LatentRawDecoder) At(data []byte, index int, count int) (uint64, bool) {
	if index < 0 || index >= count || len(data) < (index+1)*8 {
		return 0, false
	}

	return d.engine.Uint64(data[index*8 : index*8+8]), true
}
