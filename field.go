package bitspan

import (
	"unsafe"

	"github.com/rawbytedev/bitspan/internal/bitmath"
)

// Field accessors move multi-bit unsigned values across a domain. A field
// occupies the first n live bits of the domain in address order; each region
// contributes a maximal chunk of the value.
//
// The LE variants treat the element sequence as ascending in numeric
// significance with ascending address; the BE variants as descending. The
// intra-element arrangement is the Order's business alone: a chunk's bits
// occupy the region's physical mask in ascending physical order, so the two
// axes compose without interfering.
//
// Values are unsigned bit patterns end to end. Store keeps only the low n
// bits of v; the silent truncation mirrors ordinary integer conversion and
// is deliberate, not an error. Sign interpretation belongs to the caller on
// either side of the boundary.
//
// Requesting more bits than the domain holds (or more than 64) is a
// precondition violation and panics before touching storage; a zero-width
// field is a no-op with a well-defined zero result.

// LoadLE reads an n-bit little-endian field from the front of the domain.
func LoadLE[E Element](d Domain[E], o Order, n uint) uint64 {
	return load(d, o, n, false)
}

// LoadBE reads an n-bit big-endian field from the front of the domain.
func LoadBE[E Element](d Domain[E], o Order, n uint) uint64 {
	return load(d, o, n, true)
}

// StoreLE writes the low n bits of v as a little-endian field at the front
// of the domain.
func StoreLE[E Element](d Domain[E], o Order, v uint64, n uint) {
	store(d, o, v, n, false)
}

// StoreBE writes the low n bits of v as a big-endian field at the front of
// the domain.
func StoreBE[E Element](d Domain[E], o Order, v uint64, n uint) {
	store(d, o, v, n, true)
}

func checkWidth(total uintptr, n uint) {
	if n > 64 {
		panic("bitspan: field wider than 64 bits")
	}
	if uintptr(n) > total {
		panic("bitspan: field wider than domain")
	}
}

// fieldChunks walks the first n live bits of d in address order, invoking fn
// with each region's element address, logical start, bit count, and the
// chunk's shift within the field value. LE assigns shifts ascending from 0;
// BE descending from n.
func fieldChunks[E Element](d Domain[E], n uint, be bool, fn func(addr unsafe.Pointer, start, count, shift uint)) {
	size := unsafe.Sizeof(*new(E))
	width := uint(size) * 8
	left := n
	shift := uint(0)
	if be {
		shift = n
	}
	emit := func(addr unsafe.Pointer, start, avail uint) {
		count := min(avail, left)
		if be {
			shift -= count
			fn(addr, start, count, shift)
		} else {
			fn(addr, start, count, shift)
			shift += count
		}
		left -= count
	}

	if d.Kind == DomainMinor {
		emit(d.Head.Addr, d.Head.Start, d.Head.Bits)
		return
	}
	if d.Head.Bits > 0 && left > 0 {
		emit(d.Head.Addr, d.Head.Start, d.Head.Bits)
	}
	addr := d.Body.Addr
	for i := uintptr(0); i < d.Body.Elems && left > 0; i++ {
		emit(addr, 0, width)
		addr = unsafe.Add(addr, size)
	}
	if d.Tail.Bits > 0 && left > 0 {
		emit(d.Tail.Addr, 0, d.Tail.Bits)
	}
}

func load[E Element](d Domain[E], o Order, n uint, be bool) uint64 {
	checkWidth(d.Bits(), n)
	if n == 0 || d.Kind == DomainEmpty {
		return 0
	}
	width := uint(unsafe.Sizeof(*new(E))) * 8
	var v uint64
	fieldChunks(d, n, be, func(addr unsafe.Pointer, start, count, shift uint) {
		cur := uint64(*(*E)(addr))
		if start == 0 && count == width {
			v |= cur << shift
			return
		}
		mask := o.Mask(start, start+count, width)
		v |= bitmath.Extract(cur, mask) << shift
	})
	return v
}

func store[E Element](d Domain[E], o Order, v uint64, n uint, be bool) {
	checkWidth(d.Bits(), n)
	if n == 0 || d.Kind == DomainEmpty {
		return
	}
	width := uint(unsafe.Sizeof(*new(E))) * 8
	v &= bitmath.Ones(n)
	fieldChunks(d, n, be, func(addr unsafe.Pointer, start, count, shift uint) {
		chunk := (v >> shift) & bitmath.Ones(count)
		p := (*E)(addr)
		if start == 0 && count == width {
			*p = E(chunk)
			return
		}
		mask := o.Mask(start, start+count, width)
		*p = E((uint64(*p) &^ mask) | bitmath.Deposit(chunk, mask))
	})
}
