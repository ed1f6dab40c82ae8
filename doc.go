// Package bitspan provides bit-addressable views over byte-addressed memory.
//
// The hardware can only address whole bytes; bitspan lets a run of
// individual bits, starting mid-byte and spanning many storage elements, be
// described, decomposed and bulk-accessed as a first-class region. It is
// aimed at compact boolean collections, wire-format bitfields and packed
// binary protocols that need bit-granular addressing with byte/word-granular
// performance.
//
// The package is built from four cooperating pieces:
//
//   - Span: a packed two-word descriptor (byte address + tagged length)
//     naming a run of bits. Encode/Decode convert between the packed form
//     and the (address, start bit, bit count) triple.
//   - Order: the mapping between a logical bit index and its physical
//     position inside a storage element. Lsb0 and Msb0 are provided; the
//     interface is open for further orderings.
//   - Domain: the decomposition of a span into at most two partial-element
//     edges and one whole-element interior run, produced by Split. Bulk
//     operations apply native element-sized instructions to the interior and
//     masked read-modify-write only to the edges.
//   - Field accessors: LoadLE/StoreLE and LoadBE/StoreBE move multi-bit
//     unsigned values across a domain.
//
// # Aliasing
//
// Every mutation of a bit region is a read-modify-write at storage-element
// granularity. Two spans resolving to different storage elements may be
// mutated independently and concurrently. Two spans touching the same
// element may not, even if their bit ranges are disjoint: the interleaved
// read-modify-write cycles race. Callers that need concurrent sub-element
// mutation must either synchronize externally or route same-element updates
// through the AtomicStoreMasked helpers; the plain accessors never assume
// atomic elements.
//
// # Safety
//
// The core operates on raw addresses and performs no bounds checking of its
// own: the caller guarantees that ceil((startBit+bits)/8) bytes from the
// span's address are valid for the access, and that element-aligned reads
// around that range stay inside the allocation. Package bitbuf wraps the
// core in a bounds-checked API over ordinary Go slices; use it unless the
// raw layer is specifically needed.
package bitspan
