// Package bitmath holds the shared bit arithmetic used by the span core and
// the container wrappers: contiguous masks, scatter/gather over arbitrary
// masks, and alignment rounding.
package bitmath

import (
	"math/bits"
	"unsafe"
)

// Ones returns a mask of the n least significant bits. n must be <= 64.
func Ones(n uint) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}
	return 1<<n - 1
}

// RangeMask returns a mask covering physical bits [from, upto).
func RangeMask(from, upto uint) uint64 {
	return Ones(upto-from) << from
}

// Deposit scatters the low bits of v into the set bits of mask, lowest value
// bit to lowest set bit. Contiguous masks (the two built-in orderings always
// produce them) take the shift fast path.
func Deposit(v, mask uint64) uint64 {
	if mask == 0 {
		return 0
	}
	tz := uint(bits.TrailingZeros64(mask))
	if body := mask >> tz; body&(body+1) == 0 {
		return (v << tz) & mask
	}
	var out uint64
	for m := mask; m != 0; m &= m - 1 {
		if v&1 != 0 {
			out |= m & -m
		}
		v >>= 1
	}
	return out
}

// Extract gathers the bits of v selected by mask into the low bits of the
// result, lowest set bit to lowest value bit. Inverse of Deposit over mask.
func Extract(v, mask uint64) uint64 {
	if mask == 0 {
		return 0
	}
	tz := uint(bits.TrailingZeros64(mask))
	if body := mask >> tz; body&(body+1) == 0 {
		return (v & mask) >> tz
	}
	var out uint64
	var i uint
	for m := mask; m != 0; m &= m - 1 {
		low := m & -m
		if v&low != 0 {
			out |= 1 << i
		}
		i++
	}
	return out
}

// AlignDown rounds p down to a multiple of size (a power of two) and returns
// the aligned pointer plus the byte offset that was removed.
func AlignDown(p unsafe.Pointer, size uintptr) (unsafe.Pointer, uintptr) {
	off := uintptr(p) & (size - 1)
	return unsafe.Add(p, -int(off)), off
}
