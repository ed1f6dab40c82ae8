package bitspan

import (
	"math/bits"
	"unsafe"
)

// The two-word span packing only works when addresses are byte-granular,
// bytes are 8 bits wide, and the length word has 3 bits to spare for the
// start-bit tag. Go guarantees the first two on every port; the rest is
// verified once at init so an unsupported target fails loudly instead of
// corrupting descriptors.

const (
	headBits = 3
	headMask = uintptr(1)<<headBits - 1

	// MaxBits is the largest bit count a Span can carry: a machine word
	// minus the 3 bits reserved for the start-bit tag.
	MaxBits = ^uintptr(0) >> headBits
)

// hostBigEndian reports the byte order used to number bytes inside storage
// elements wider than 8 bits. Probed once; Split and SpanOf consult it so a
// logical bit index always ascends with numeric significance.
var hostBigEndian = func() bool {
	probe := uint16(0x0102)
	return *(*byte)(unsafe.Pointer(&probe)) == 0x01
}()

func init() {
	if bits.UintSize != 32 && bits.UintSize != 64 {
		panic("bitspan: unsupported machine word size")
	}
	if unsafe.Sizeof(uintptr(0))*8 <= headBits {
		panic("bitspan: length word cannot spare start-bit tag")
	}
}
