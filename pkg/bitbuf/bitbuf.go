// Package bitbuf provides bounds-checked bit containers over ordinary Go
// slices, built on the raw span core. Slice is a borrowed fixed-size view;
// Buffer is a growable owned collection. Both pick a bit ordering at
// construction and keep it for their lifetime.
//
// Sub-views obey the core's aliasing discipline: two views over different
// storage elements may be mutated concurrently, two views sharing an
// element may not without external synchronization, even when their bit
// ranges are disjoint.
package bitbuf

import (
	"errors"
	"math/bits"
	"unsafe"

	"github.com/rawbytedev/bitspan"
)

var (
	ErrRange      = errors.New("bitbuf: bit range exceeds view")
	ErrNoStorage  = errors.New("bitbuf: empty storage")
	ErrFieldWidth = errors.New("bitbuf: field width exceeds view or 64 bits")
)

// Slice is a fixed-size bit view over borrowed element storage. The zero
// value is an empty view with no storage.
//
// Unlike the raw Span it wraps, a Slice keeps its backing slice alive and
// revalidates nothing per access: all bounds were checked when the view was
// made. It carries one word more than the packed descriptor; the storage
// reference is what lets it stay memory-safe under the garbage collector.
type Slice[E bitspan.Element] struct {
	storage []E
	ord     bitspan.Order
	off     uint
	n       uint
}

// Of builds a view over bits [off, off+n) of storage, counted in logical
// order under ord.
func Of[E bitspan.Element](storage []E, ord bitspan.Order, off, n uint) (Slice[E], error) {
	if n == 0 && off == 0 {
		return Slice[E]{storage: storage, ord: ord}, nil
	}
	if _, err := bitspan.SpanOf(storage, off, n); err != nil {
		return Slice[E]{}, err
	}
	return Slice[E]{storage: storage, ord: ord, off: off, n: n}, nil
}

// Whole views all bits of storage.
func Whole[E bitspan.Element](storage []E, ord bitspan.Order) Slice[E] {
	s, _ := Of(storage, ord, 0, uint(len(storage))*elemWidth[E]())
	return s
}

func elemWidth[E bitspan.Element]() uint {
	return uint(unsafe.Sizeof(*new(E))) * 8
}

// Len returns the number of bits in the view.
func (s Slice[E]) Len() uint { return s.n }

// Order returns the view's bit ordering.
func (s Slice[E]) Order() bitspan.Order { return s.ord }

// Span re-encodes the view's packed descriptor. Returns bitspan.Null for a
// view with no storage.
func (s Slice[E]) Span() bitspan.Span {
	sp, err := bitspan.SpanOf(s.storage, s.off, s.n)
	if err != nil {
		return bitspan.Null
	}
	return sp
}

func (s Slice[E]) domain() bitspan.Domain[E] {
	return bitspan.Split[E](s.Span())
}

func (s Slice[E]) locate(i uint) (elem uint, mask uint64) {
	if i >= s.n {
		panic("bitbuf: bit index out of range")
	}
	w := elemWidth[E]()
	abs := s.off + i
	return abs / w, s.ord.Mask(abs%w, abs%w+1, w)
}

// Get reports the bit at logical index i. Panics if i is out of range.
func (s Slice[E]) Get(i uint) bool {
	elem, mask := s.locate(i)
	return uint64(s.storage[elem])&mask != 0
}

// Set writes the bit at logical index i. Panics if i is out of range.
func (s Slice[E]) Set(i uint, v bool) {
	elem, mask := s.locate(i)
	if v {
		s.storage[elem] |= E(mask)
	} else {
		s.storage[elem] &^= E(mask)
	}
}

// Toggle flips the bit at logical index i. Panics if i is out of range.
func (s Slice[E]) Toggle(i uint) {
	elem, mask := s.locate(i)
	s.storage[elem] ^= E(mask)
}

// Range narrows the view to bits [off, off+n) of s.
func (s Slice[E]) Range(off, n uint) (Slice[E], error) {
	if off > s.n || n > s.n-off {
		return Slice[E]{}, ErrRange
	}
	return Slice[E]{storage: s.storage, ord: s.ord, off: s.off + off, n: n}, nil
}

// Fill sets every bit of the view to v. The interior run takes whole
// element stores; only the edges pay a masked read-modify-write.
func (s Slice[E]) Fill(v bool) {
	d := s.domain()
	if d.Kind == bitspan.DomainEmpty {
		return
	}
	w := elemWidth[E]()
	fillPartial := func(p bitspan.Partial) {
		if p.Bits == 0 {
			return
		}
		mask := s.ord.Mask(p.Start, p.Start+p.Bits, w)
		e := (*E)(p.Addr)
		if v {
			*e |= E(mask)
		} else {
			*e &^= E(mask)
		}
	}
	fillPartial(d.Head)
	var whole E
	if v {
		whole = ^E(0)
	}
	addr := d.Body.Addr
	for i := uintptr(0); i < d.Body.Elems; i++ {
		*(*E)(addr) = whole
		addr = unsafe.Add(addr, unsafe.Sizeof(whole))
	}
	fillPartial(d.Tail)
}

// OnesCount returns the number of set bits in the view.
func (s Slice[E]) OnesCount() uint {
	d := s.domain()
	if d.Kind == bitspan.DomainEmpty {
		return 0
	}
	w := elemWidth[E]()
	var total uint
	countPartial := func(p bitspan.Partial) {
		if p.Bits == 0 {
			return
		}
		mask := s.ord.Mask(p.Start, p.Start+p.Bits, w)
		total += uint(bits.OnesCount64(uint64(*(*E)(p.Addr)) & mask))
	}
	countPartial(d.Head)
	addr := d.Body.Addr
	for i := uintptr(0); i < d.Body.Elems; i++ {
		total += uint(bits.OnesCount64(uint64(*(*E)(addr))))
		addr = unsafe.Add(addr, unsafe.Sizeof(*new(E)))
	}
	countPartial(d.Tail)
	return total
}

func (s Slice[E]) checkField(n uint) error {
	if n > 64 || n > s.n {
		return ErrFieldWidth
	}
	return nil
}

// LoadLE reads the first n bits of the view as a little-endian unsigned
// field.
func (s Slice[E]) LoadLE(n uint) (uint64, error) {
	if err := s.checkField(n); err != nil {
		return 0, err
	}
	return bitspan.LoadLE(s.domain(), s.ord, n), nil
}

// LoadBE reads the first n bits of the view as a big-endian unsigned field.
func (s Slice[E]) LoadBE(n uint) (uint64, error) {
	if err := s.checkField(n); err != nil {
		return 0, err
	}
	return bitspan.LoadBE(s.domain(), s.ord, n), nil
}

// StoreLE writes the low n bits of v into the first n bits of the view,
// little-endian. High bits of v are discarded, mirroring integer
// truncation.
func (s Slice[E]) StoreLE(v uint64, n uint) error {
	if err := s.checkField(n); err != nil {
		return err
	}
	bitspan.StoreLE(s.domain(), s.ord, v, n)
	return nil
}

// StoreBE writes the low n bits of v into the first n bits of the view,
// big-endian.
func (s Slice[E]) StoreBE(v uint64, n uint) error {
	if err := s.checkField(n); err != nil {
		return err
	}
	bitspan.StoreBE(s.domain(), s.ord, v, n)
	return nil
}
