package bitspan

import "github.com/rawbytedev/bitspan/internal/bitmath"

// Order maps logical bit indices to physical bit positions inside a storage
// element. Logical indices count through the element in traversal order;
// physical positions are the significance of the bit in the element's
// integer value (position p selects 1<<p).
//
// Implementations must be total bijections over 0..width for every
// supported width (8, 16, 32 and 64): LogicalIndex(PhysicalPosition(i, w), w)
// == i for all i < w. Mask must equal the OR of the selectors of every
// physical position mapped from logical [from, upto); the built-in orders
// satisfy this with a single contiguous range.
//
// An ordering is chosen once per view and is invariant for its lifetime.
// Mixing orderings across cooperating calls on the same storage is a caller
// error the core does not detect.
type Order interface {
	PhysicalPosition(i, width uint) uint
	LogicalIndex(pos, width uint) uint
	Mask(from, upto, width uint) uint64
}

// Lsb0 is the ascending ordering: logical index 0 is the least significant
// physical bit. Counting up through indices walks up through significance.
type Lsb0 struct{}

func (Lsb0) PhysicalPosition(i, width uint) uint { return i }

func (Lsb0) LogicalIndex(pos, width uint) uint { return pos }

func (Lsb0) Mask(from, upto, width uint) uint64 {
	return bitmath.RangeMask(from, upto)
}

// Msb0 is the descending ordering: logical index 0 is the most significant
// physical bit. Counting up through indices walks down through significance.
type Msb0 struct{}

func (Msb0) PhysicalPosition(i, width uint) uint { return width - 1 - i }

func (Msb0) LogicalIndex(pos, width uint) uint { return width - 1 - pos }

func (Msb0) Mask(from, upto, width uint) uint64 {
	return bitmath.RangeMask(width-upto, width-from)
}
