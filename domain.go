package bitspan

import (
	"unsafe"

	"github.com/rawbytedev/bitspan/internal/bitmath"
)

// Element constrains the storage granule a span is decomposed against: the
// fixed-width unsigned integer that is the real unit of memory access.
type Element interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

type DomainKind uint8

const (
	// DomainEmpty covers no bits at all.
	DomainEmpty DomainKind = iota
	// DomainMinor fits entirely inside one storage element.
	DomainMinor
	// DomainMajor spans element boundaries: optional partial edges around a
	// run of whole elements.
	DomainMajor
)

// Partial is a partially-live storage element: Bits live bits starting at
// logical index Start inside the element at Addr.
type Partial struct {
	Addr  unsafe.Pointer
	Start uint
	Bits  uint
}

// Run is a sequence of Elems fully-live storage elements starting at Addr.
type Run struct {
	Addr  unsafe.Pointer
	Elems uintptr
}

// Domain is the decomposition of a span against a storage element width:
// at most two partial edges plus one whole-element interior run. Interior
// elements take native element-sized loads and stores; only the edges need
// masked read-modify-write. A Domain borrows from its source span and is a
// transient computation result, not something to persist.
//
// Minor domains live in Head; Body and Tail are zero. Major domains use all
// three, with Head.Bits or Tail.Bits zero when the span starts or ends on an
// element boundary.
type Domain[E Element] struct {
	Kind DomainKind
	Head Partial
	Body Run
	Tail Partial
}

// Bits returns the total number of live bits the domain covers. The region
// counts always sum back to the source span's length, with no gaps or
// overlaps.
func (d Domain[E]) Bits() uintptr {
	width := uintptr(unsafe.Sizeof(*new(E))) * 8
	return uintptr(d.Head.Bits) + d.Body.Elems*width + uintptr(d.Tail.Bits)
}

// Split decomposes a span against the element width E.
//
// The element holding the first bit is recovered by rounding the byte
// address down to the element's alignment; the start index inside that
// element combines the byte offset (numbered by host byte order, so logical
// indices ascend with significance) with the descriptor's start bit. A span
// covering exactly whole elements comes back as a pure run with empty
// edges, even when it is a single element long.
func Split[E Element](s Span) Domain[E] {
	addr, head, n := s.Decode()
	if n == 0 {
		return Domain[E]{Kind: DomainEmpty}
	}

	size := unsafe.Sizeof(*new(E))
	width := uint(size) * 8
	base, off := bitmath.AlignDown(addr, size)
	byteOff := uint(off)
	if hostBigEndian {
		byteOff = uint(size) - 1 - byteOff
	}
	start := byteOff*8 + uint(head)

	toEnd := uintptr(width - start)
	if n <= toEnd {
		if start == 0 && n == uintptr(width) {
			return Domain[E]{
				Kind: DomainMajor,
				Body: Run{Addr: base, Elems: 1},
			}
		}
		return Domain[E]{
			Kind: DomainMinor,
			Head: Partial{Addr: base, Start: start, Bits: uint(n)},
		}
	}

	d := Domain[E]{Kind: DomainMajor}
	rest := n
	body := base
	if start != 0 {
		d.Head = Partial{Addr: base, Start: start, Bits: uint(toEnd)}
		rest -= toEnd
		body = unsafe.Add(base, size)
	}
	d.Body = Run{Addr: body, Elems: rest / uintptr(width)}
	if tail := rest % uintptr(width); tail != 0 {
		d.Tail = Partial{
			Addr: unsafe.Add(body, d.Body.Elems*size),
			Bits: uint(tail),
		}
	}
	return d
}
