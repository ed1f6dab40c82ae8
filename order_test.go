package bitspan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderCases = []struct {
	name string
	ord  Order
}{
	{"Lsb0", Lsb0{}},
	{"Msb0", Msb0{}},
}

var widths = []uint{8, 16, 32, 64}

func TestOrderBijection(t *testing.T) {
	for _, tc := range orderCases {
		for _, w := range widths {
			t.Run(fmt.Sprintf("%s/%d", tc.name, w), func(t *testing.T) {
				seen := make(map[uint]bool, w)
				for i := uint(0); i < w; i++ {
					pos := tc.ord.PhysicalPosition(i, w)
					require.Less(t, pos, w)
					require.False(t, seen[pos], "position %d mapped twice", pos)
					seen[pos] = true
					require.Equal(t, i, tc.ord.LogicalIndex(pos, w))
				}
			})
		}
	}
}

func TestOrderMaskMatchesPositions(t *testing.T) {
	for _, tc := range orderCases {
		for _, w := range widths {
			for from := uint(0); from <= w; from += 3 {
				for upto := from; upto <= w; upto += 5 {
					var want uint64
					for i := from; i < upto; i++ {
						want |= 1 << tc.ord.PhysicalPosition(i, w)
					}
					got := tc.ord.Mask(from, upto, w)
					require.Equalf(t, want, got,
						"%s Mask(%d,%d,%d)", tc.name, from, upto, w)
				}
			}
		}
	}
}

func TestOrderEndpoints(t *testing.T) {
	assert.Equal(t, uint(0), Lsb0{}.PhysicalPosition(0, 8))
	assert.Equal(t, uint(7), Msb0{}.PhysicalPosition(0, 8))
	assert.Equal(t, uint(63), Lsb0{}.PhysicalPosition(63, 64))
	assert.Equal(t, uint(0), Msb0{}.PhysicalPosition(63, 64))

	assert.Equal(t, uint64(0xF0), Msb0{}.Mask(0, 4, 8))
	assert.Equal(t, uint64(0x0F), Lsb0{}.Mask(0, 4, 8))
	assert.Equal(t, ^uint64(0), Lsb0{}.Mask(0, 64, 64))
	assert.Equal(t, ^uint64(0), Msb0{}.Mask(0, 64, 64))
	assert.Equal(t, uint64(0), Lsb0{}.Mask(3, 3, 8))
	assert.Equal(t, uint64(0), Msb0{}.Mask(3, 3, 8))
}
