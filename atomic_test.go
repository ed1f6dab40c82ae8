package bitspan

import (
	"math/bits"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomicStoreMasked(t *testing.T) {
	var e uint64 = 0xFFFF_FFFF_FFFF_FFFF
	AtomicStoreMasked64(&e, 0x0000_0000_FFFF_FFFF, 0x1234_5678_9ABC_DEF0)
	assert.Equal(t, uint64(0xFFFF_FFFF_9ABC_DEF0), e)

	var e32 uint32 = 0xF0F0_F0F0
	AtomicStoreMasked32(&e32, 0x0F0F_0F0F, 0xAAAA_AAAA)
	assert.Equal(t, uint32(0xFAFA_FAFA), e32)

	assert.Equal(t, uint64(0xDEF0), AtomicLoad64(&e, 0xFFFF))
	assert.Equal(t, uint32(0x0A0A_0A0A), AtomicLoad32(&e32, 0x0F0F_0F0F))
}

// Disjoint masked writers on one element must not lose updates: the exact
// situation the plain accessors cannot handle.
func TestAtomicStoreMaskedConcurrent(t *testing.T) {
	const writers = 8
	const rounds = 1000

	var e uint64
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		mask := uint64(0xFF) << (8 * w)
		wg.Add(1)
		go func() {
			defer wg.Done()
			shift := uint(bits.TrailingZeros64(mask))
			for r := 0; r < rounds; r++ {
				AtomicStoreMasked64(&e, mask, ^uint64(0))
				AtomicStoreMasked64(&e, mask, uint64(r)<<shift)
			}
		}()
	}
	wg.Wait()

	for w := 0; w < writers; w++ {
		got := (e >> (8 * w)) & 0xFF
		require.Equal(t, uint64((rounds-1)&0xFF), got, "lane %d", w)
	}
}
