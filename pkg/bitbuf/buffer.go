package bitbuf

import "github.com/rawbytedev/bitspan"

// Buffer is a growable owned bit collection over byte storage. Appends go
// to the logical end; storage grows amortized like a byte buffer. The zero
// value is unusable, construct with New.
type Buffer struct {
	data []byte
	bits uint
	ord  bitspan.Order
}

// New returns an empty buffer using ord for its bit arrangement.
func New(ord bitspan.Order) *Buffer {
	return &Buffer{ord: ord}
}

// Len returns the number of bits appended so far.
func (b *Buffer) Len() uint { return b.bits }

// Bytes exposes the underlying storage. The final byte's unappended bits
// are zero. The slice aliases the buffer; it is invalidated by the next
// append.
func (b *Buffer) Bytes() []byte { return b.data }

// grow ensures capacity for n more bits.
func (b *Buffer) grow(n uint) {
	need := int((b.bits + n + 7) / 8)
	for len(b.data) < need {
		b.data = append(b.data, 0)
	}
}

// Append adds a single bit at the logical end.
func (b *Buffer) Append(v bool) {
	b.grow(1)
	i := b.bits
	mask := byte(b.ord.Mask(i%8, i%8+1, 8))
	if v {
		b.data[i/8] |= mask
	} else {
		b.data[i/8] &^= mask
	}
	b.bits++
}

// AppendBits adds the low n bits of v at the logical end, least significant
// bit first. High bits of v are discarded.
func (b *Buffer) AppendBits(v uint64, n uint) error {
	if n > 64 {
		return ErrFieldWidth
	}
	if n == 0 {
		return nil
	}
	b.grow(n)
	sp, err := bitspan.SpanOf(b.data, b.bits, n)
	if err != nil {
		return err
	}
	bitspan.StoreLE(bitspan.Split[uint8](sp), b.ord, v, n)
	b.bits += n
	return nil
}

// View returns a read-write Slice over the buffer's current contents. The
// view is invalidated by the next append.
func (b *Buffer) View() Slice[uint8] {
	s, _ := Of(b.data, b.ord, 0, b.bits)
	return s
}
