package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlab_GetReturnsZeroedLength(t *testing.T) {
	s := NewSlab[uint32]([]int{8, 16})

	out := s.Get(5)

	require.Len(t, out, 5)
	assert.Equal(t, 8, cap(out), "should come from the smallest fitting tier")
	for i, w := range out {
		assert.Zero(t, w, "word %d", i)
	}
}

func TestSlab_RecycledSliceIsCleared(t *testing.T) {
	s := NewSlab[uint32]([]int{8})

	dirty := s.Get(8)
	for i := range dirty {
		dirty[i] = 0xDEADBEEF
	}
	s.Put(dirty)

	out := s.Get(8)
	for i, w := range out {
		assert.Zero(t, w, "word %d", i)
	}
}

func TestSlab_OversizeFallsBack(t *testing.T) {
	s := NewSlab[uint32]([]int{8})

	out := s.Get(100)

	require.Len(t, out, 100)
	_, misses := s.Stats()
	assert.Equal(t, int64(1), misses)

	// Discarded silently: its capacity matches no tier.
	s.Put(out)
}

func TestSlab_ZeroAndNegative(t *testing.T) {
	s := NewSlab[uint32]([]int{8})

	assert.Nil(t, s.Get(0))
	assert.Nil(t, s.Get(-3))
}

func TestSlab_TierSelection(t *testing.T) {
	s := NewSlab[uint32]([]int{8, 16, 32})

	tests := []struct {
		request int
		tier    int
	}{
		{1, 8},
		{8, 8},
		{9, 16},
		{16, 16},
		{17, 32},
		{32, 32},
	}

	for _, tc := range tests {
		out := s.Get(tc.request)
		assert.Equal(t, tc.tier, cap(out), "request %d", tc.request)
		s.Put(out)
	}
}
