package encoding

import (
	"math"
	"testing"

	"github.com/arloliu/numo/endian"
	"github.com/stretchr/testify/require"
)

func TestLatentRawEncoder_Write(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	encoder := NewLatentRawEncoder(engine)
	defer encoder.Finish()

	encoder.Write(0x0102030405060708)

	require.Equal(t, 1, encoder.Len())
	require.Equal(t, 8, encoder.Size())
	require.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, encoder.Bytes())
}

func TestLatentRawEncoder_WriteSlice(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	encoder := NewLatentRawEncoder(engine)
	defer encoder.Finish()

	values := []uint64{0, 1, math.MaxUint64, 42}
	encoder.WriteSlice(values)

	require.Equal(t, 4, encoder.Len())
	require.Equal(t, 32, encoder.Size())

	decoder := NewLatentRawDecoder(engine)
	decoded, err := decoder.Decode(encoder.Bytes(), 4)
	require.NoError(t, err)
	require.Equal(t, values, decoded)
}

func TestLatentRawEncoder_BigEndian(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	encoder := NewLatentRawEncoder(engine)
	defer encoder.Finish()

	encoder.Write(0x0102030405060708)
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}, encoder.Bytes())

	decoder := NewLatentRawDecoder(engine)
	decoded, err := decoder.Decode(encoder.Bytes(), 1)
	require.NoError(t, err)
	require.Equal(t, []uint64{0x0102030405060708}, decoded)
}

func TestLatentRawEncoder_WriteAfterFinishPanics(t *testing.T) {
	encoder := NewLatentRawEncoder(endian.GetLittleEndianEngine())
	encoder.Finish()

	require.Panics(t, func() { encoder.Write(1) })
	require.Panics(t, func() { encoder.WriteSlice([]uint64{1}) })
}

func TestLatentRawDecoder_All(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	encoder := NewLatentRawEncoder(engine)
	defer encoder.Finish()

	values := []uint64{10, 20, 30}
	encoder.WriteSlice(values)

	decoder := NewLatentRawDecoder(engine)
	var got []uint64
	for v := range decoder.All(encoder.Bytes(), 3) {
		got = append(got, v)
	}
	require.Equal(t, values, got)
}

func TestLatentRawDecoder_At(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	encoder := NewLatentRawEncoder(engine)
	defer encoder.Finish()

	values := []uint64{10, 20, 30}
	encoder.WriteSlice(values)
	data := encoder.Bytes()

	decoder := NewLatentRawDecoder(engine)
	v, ok := decoder.At(data, 1, 3)
	require.True(t, ok)
	require.Equal(t, uint64(20), v)

	_, ok = decoder.At(data, 3, 3)
	require.False(t, ok)
	_, ok = decoder.At(data, -1, 3)
	require.False(t, ok)
}

func TestLatentRawDecoder_ShortData(t *testing.T) {
	decoder := NewLatentRawDecoder(endian.GetLittleEndianEngine())
	_, err := decoder.Decode([]byte{1, 2, 3}, 1)
	require.Error(t, err)
}
