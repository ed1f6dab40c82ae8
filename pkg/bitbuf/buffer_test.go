package bitbuf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/bitspan"
)

func TestBufferAppend(t *testing.T) {
	b := New(bitspan.Lsb0{})
	assert.Equal(t, uint(0), b.Len())

	for _, bit := range []bool{true, false, true, true} {
		b.Append(bit)
	}
	require.Equal(t, uint(4), b.Len())
	assert.Equal(t, []byte{0b0000_1101}, b.Bytes())

	v := b.View()
	assert.True(t, v.Get(0))
	assert.False(t, v.Get(1))
	assert.True(t, v.Get(3))
}

func TestBufferAppendBits(t *testing.T) {
	b := New(bitspan.Lsb0{})
	require.NoError(t, b.AppendBits(0b101, 3))
	require.NoError(t, b.AppendBits(0xFF, 5))
	require.Equal(t, uint(8), b.Len())
	// 101 then 11111 in ascending logical order.
	assert.Equal(t, []byte{0b1111_1101}, b.Bytes())

	require.NoError(t, b.AppendBits(0x2018, 16))
	require.Equal(t, uint(24), b.Len())
	assert.Equal(t, []byte{0b1111_1101, 0x18, 0x20}, b.Bytes())

	require.NoError(t, b.AppendBits(0, 0))
	require.Equal(t, uint(24), b.Len())
	require.ErrorIs(t, b.AppendBits(0, 65), ErrFieldWidth)
}

func TestBufferMsb0(t *testing.T) {
	b := New(bitspan.Msb0{})
	b.Append(true)
	b.Append(false)
	b.Append(true)
	// First appended bit lands in the most significant position.
	assert.Equal(t, []byte{0b1010_0000}, b.Bytes())

	c := New(bitspan.Msb0{})
	require.NoError(t, c.AppendBits(0b1010, 4))
	// The chunk occupies the region mask in ascending physical order.
	assert.Equal(t, []byte{0b1010_0000}, c.Bytes())
}

func TestBufferTruncatesHighBits(t *testing.T) {
	b := New(bitspan.Lsb0{})
	require.NoError(t, b.AppendBits(^uint64(0), 3))
	assert.Equal(t, []byte{0b0000_0111}, b.Bytes())
	assert.Equal(t, uint(3), b.Len())
}

func TestBufferViewRoundTrip(t *testing.T) {
	b := New(bitspan.Lsb0{})
	require.NoError(t, b.AppendBits(0x5A5A, 16))
	v, err := b.View().LoadLE(16)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x5A5A), v)
	assert.Equal(t, uint(8), b.View().OnesCount())
}
