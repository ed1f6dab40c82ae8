package bitspan

import (
	"errors"
	"unsafe"
)

var (
	ErrHeadRange  = errors.New("bitspan: start bit must be below 8")
	ErrTooLong    = errors.New("bitspan: bit count exceeds descriptor capacity")
	ErrNilAddr    = errors.New("bitspan: nil address")
	ErrOutOfRange = errors.New("bitspan: bit range exceeds storage")
)

// Span is a packed descriptor for a run of bits: exactly two machine words,
// the same footprint as an ordinary (pointer, length) slice header.
//
// The first word is the address of the byte containing the first live bit
// (the byte inside the storage element, not the element's base). The second
// word keeps the start bit within that byte in its low 3 bits and the bit
// count in the rest. The all-zero value is the Null sentinel meaning
// "absent"; Encode never produces it for valid input, so a zero-length span
// into still-owned storage stays distinguishable from no storage at all.
//
// A Span is immutable once formed. Reslicing produces a new Span. It holds
// no resources of its own, but it also does not keep the backing allocation
// alive: the owning container must.
type Span struct {
	ptr unsafe.Pointer
	tag uintptr
}

// Null is the reserved all-zero descriptor meaning "no span".
var Null Span

// Encode packs a byte address, a start bit and a bit count into a Span.
//
// It rejects head >= 8, counts that do not fit the tagged length word, and
// the nil address (reserved for Null). These are the only fallible steps in
// the core; everything downstream treats a decoded Span as trusted.
func Encode(addr unsafe.Pointer, head uint8, bits uintptr) (Span, error) {
	if addr == nil {
		return Null, ErrNilAddr
	}
	if head >= 8 {
		return Null, ErrHeadRange
	}
	if bits > MaxBits {
		return Null, ErrTooLong
	}
	return Span{ptr: addr, tag: bits<<headBits | uintptr(head)}, nil
}

// Decode unpacks the descriptor into its (address, start bit, bit count)
// triple. Pure projection; calling it on Null yields (nil, 0, 0).
func (s Span) Decode() (addr unsafe.Pointer, head uint8, bits uintptr) {
	return s.ptr, uint8(s.tag & headMask), s.tag >> headBits
}

// IsNull reports whether s is the reserved absent sentinel.
func (s Span) IsNull() bool { return s == Null }

// Len returns the number of live bits the span describes.
func (s Span) Len() uintptr { return s.tag >> headBits }

// IsEmpty reports a zero-length span. Null is empty; the converse does not
// hold, an empty span at a real address is legal and keeps that address.
func (s Span) IsEmpty() bool { return s.Len() == 0 }

// Addr returns the address of the byte holding the first live bit.
func (s Span) Addr() unsafe.Pointer { return s.ptr }

// Head returns the index of the first live bit within its byte.
func (s Span) Head() uint8 { return uint8(s.tag & headMask) }

// Slice re-encodes a sub-run of s covering bits [off, off+n). The caller is
// responsible for off+n <= s.Len(); the result is clamped only by the
// descriptor capacity check in Encode.
//
// Only valid for spans over 8-bit elements, where byte order inside the
// element is moot. Wider storage should reslice through SpanOf.
func (s Span) Slice(off, n uintptr) (Span, error) {
	if s.IsNull() {
		return Null, ErrNilAddr
	}
	abs := uintptr(s.Head()) + off
	return Encode(unsafe.Add(s.ptr, abs/8), uint8(abs%8), n)
}

// SpanOf builds a Span over bits [off, off+n) of an element slice. This is
// the bridge a backing-storage provider uses to hand a typed allocation to
// the bit layer; it performs the only bounds check in the core.
func SpanOf[E Element](storage []E, off, n uint) (Span, error) {
	size := unsafe.Sizeof(*new(E))
	width := uint(size) * 8
	total := uint(len(storage)) * width
	if len(storage) == 0 {
		return Null, ErrNilAddr
	}
	if off > total || n > total-off {
		return Null, ErrOutOfRange
	}
	elem := off / width
	bit := off % width
	if elem == uint(len(storage)) {
		// zero-length span at the very end; anchor it in the last element
		// so it still witnesses the storage it views.
		elem, bit = elem-1, 0
	}
	byteOff := uintptr(bit / 8)
	if hostBigEndian {
		byteOff = size - 1 - byteOff
	}
	base := unsafe.Pointer(&storage[elem])
	return Encode(unsafe.Add(base, byteOff), uint8(bit%8), uintptr(n))
}
