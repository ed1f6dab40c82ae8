package bitspan

import "sync/atomic"

// Atomic masked read-modify-write for storage elements shared between
// goroutines. The plain field accessors read, mask and write back whole
// elements, so concurrent writers inside one element race even when their
// bit ranges are disjoint. Containers that opt into shared mutation route
// same-element updates through these helpers instead; no architecture
// offers true sub-byte atomicity, so element-granular compare-and-swap is
// the floor.
//
// The core algorithms never call these themselves.

// AtomicStoreMasked32 replaces the mask-selected bits of *addr with the
// corresponding bits of v, leaving the rest untouched.
func AtomicStoreMasked32(addr *uint32, mask, v uint32) {
	for {
		old := atomic.LoadUint32(addr)
		next := (old &^ mask) | (v & mask)
		if old == next || atomic.CompareAndSwapUint32(addr, old, next) {
			return
		}
	}
}

// AtomicStoreMasked64 replaces the mask-selected bits of *addr with the
// corresponding bits of v, leaving the rest untouched.
func AtomicStoreMasked64(addr *uint64, mask, v uint64) {
	for {
		old := atomic.LoadUint64(addr)
		next := (old &^ mask) | (v & mask)
		if old == next || atomic.CompareAndSwapUint64(addr, old, next) {
			return
		}
	}
}

// AtomicLoad32 reads the mask-selected bits of *addr.
func AtomicLoad32(addr *uint32, mask uint32) uint32 {
	return atomic.LoadUint32(addr) & mask
}

// AtomicLoad64 reads the mask-selected bits of *addr.
func AtomicLoad64(addr *uint64, mask uint64) uint64 {
	return atomic.LoadUint64(addr) & mask
}
