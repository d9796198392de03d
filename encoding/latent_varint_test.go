package encoding

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLatentVarintEncoder_SmallValues(t *testing.T) {
	encoder := NewLatentVarintEncoder()
	defer encoder.Finish()

	encoder.Write(0)
	encoder.Write(1)
	encoder.Write(127)

	require.Equal(t, 3, encoder.Len())
	require.Equal(t, 3, encoder.Size()) // one byte each
	require.Equal(t, []byte{0, 1, 127}, encoder.Bytes())
}

func TestLatentVarintEncoder_WideValue(t *testing.T) {
	encoder := NewLatentVarintEncoder()
	defer encoder.Finish()

	encoder.Write(math.MaxUint64)
	require.Equal(t, binary.MaxVarintLen64, encoder.Size())
}

func TestLatentVarintEncoder_RoundTrip(t *testing.T) {
	encoder := NewLatentVarintEncoder()
	defer encoder.Finish()

	values := []uint64{0, 1, 300, 1 << 20, math.MaxUint64, 7}
	encoder.WriteSlice(values)
	require.Equal(t, len(values), encoder.Len())

	decoder := NewLatentVarintDecoder()
	decoded, err := decoder.Decode(encoder.Bytes(), len(values))
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestLatentVarintEncoder_WriteAfterFinishPanics(t *testing.T) {
	encoder := NewLatentVarintEncoder()
	encoder.Finish()

	require.Panics(t, func() { encoder.Write(1) })
}

func TestLatentVarintDecoder_All(t *testing.T) {
	encoder := NewLatentVarintEncoder()
	defer encoder.Finish()

	values := []uint64{5, 500, 50000}
	encoder.WriteSlice(values)

	decoder := NewLatentVarintDecoder()
	var got []uint64
	for v := range decoder.All(encoder.Bytes(), 3) {
		got = append(got, v)
	}
	require.Equal(t, values, got)
}

func TestLatentVarintDecoder_TruncatedData(t *testing.T) {
	encoder := NewLatentVarintEncoder()
	defer encoder.Finish()

	encoder.WriteSlice([]uint64{1 << 40, 1 << 40})
	data := encoder.Bytes()

	decoder := NewLatentVarintDecoder()
	_, err := decoder.Decode(data[:len(data)-2], 2)
	require.Error(t, err)
}
