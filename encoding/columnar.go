package encoding

import "iter"

// LatentEncoder encodes a stream of latent words into a byte payload.
//
// Encoders accumulate into an internal pooled buffer. The usual session is:
//
//	enc := NewLatentVarintEncoder()
//	defer enc.Finish() // return the buffer to the pool
//
//	enc.WriteSlice(latents)
//	payload := enc.Bytes() // copy or consume before Finish
type LatentEncoder interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice or Finish.
	// The caller should not modify the returned slice.
	Bytes() []byte

	// Len returns the number of latent words written so far.
	Len() int

	// Size returns the size in bytes of the encoded payload.
	Size() int

	// Reset clears the encoder state but keeps the accumulated payload,
	// allowing a new logical stream (e.g. the next page) to be appended to
	// the same buffer.
	Reset()

	// Finish returns buffer resources to the pool. The encoder is no longer
	// usable afterwards; create a new encoder to encode more data.
	Finish()

	// Write encodes a single latent word.
	//
	// For bulk writes, use WriteSlice for better performance.
	Write(v uint64)

	// WriteSlice encodes a slice of latent words.
	WriteSlice(values []uint64)
}

// LatentDecoder decodes a byte payload produced by the matching LatentEncoder.
type LatentDecoder interface {
	// All returns an iterator yielding up to count latent words decoded from
	// data. If data is malformed or short, the iterator may yield fewer than
	// count values; Decode reports that case as an error instead.
	All(data []byte, count int) iter.Seq[uint64]

	// Decode decodes exactly count latent words from data into a fresh slice.
	// It returns an error if data does not contain count values.
	Decode(data []byte, count int) ([]uint64, error)
}
