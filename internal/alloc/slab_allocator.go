// Package alloc provides a tiered slab allocator for short-lived scratch
// slices. The codec's fixed (non-allocating) paths borrow big-integer
// word scratch here so that steady-state encode/decode calls stay off
// the heap.
package alloc

import (
	"sync"
	"sync/atomic"
)

// Slab is a generic tiered slice allocator backed by sync.Pool. Each
// tier holds slices of one capacity class; requests are served from the
// smallest tier that fits. Requests beyond the largest tier fall back
// to plain allocation and are not recycled.
type Slab[T any] struct {
	tiers []*tier[T]
	stats SlabStats
}

type tier[T any] struct {
	capacity int
	pool     sync.Pool
}

// SlabStats counts pool behavior for tests and tuning.
type SlabStats struct {
	Hits   atomic.Int64 // requests served from a pool
	Misses atomic.Int64 // requests that allocated
}

// Word-scratch capacity tiers. A tier of n words covers 4n bytes of
// decoded value, so 256 words handles inputs up to 1 KiB before
// falling back.
var wordTiers = []int{8, 16, 32, 64, 128, 256}

// Words is the shared pool for big-integer word scratch.
var Words = NewSlab[uint32](wordTiers)

// NewSlab creates a slab allocator with the given ascending capacity
// tiers.
func NewSlab[T any](capacities []int) *Slab[T] {
	s := &Slab[T]{tiers: make([]*tier[T], len(capacities))}
	for i, c := range capacities {
		c := c // capture for closure
		s.tiers[i] = &tier[T]{
			capacity: c,
			pool: sync.Pool{
				New: func() any { return make([]T, 0, c) },
			},
		}
	}
	return s
}

// Get returns a zeroed slice of length n. The slice comes from the
// smallest tier with capacity >= n, or a fresh allocation if n exceeds
// every tier.
func (s *Slab[T]) Get(n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	for _, t := range s.tiers {
		if t.capacity >= n {
			out := t.pool.Get().([]T)[:n]
			for i := range out {
				out[i] = zero
			}
			s.stats.Hits.Add(1)
			return out
		}
	}
	s.stats.Misses.Add(1)
	return make([]T, n)
}

// Put recycles a slice obtained from Get. Slices whose capacity does
// not match a tier are discarded for the garbage collector.
func (s *Slab[T]) Put(slice []T) {
	c := cap(slice)
	for _, t := range s.tiers {
		if t.capacity == c {
			t.pool.Put(slice[:0])
			return
		}
	}
}

// Stats returns a snapshot of pool counters.
func (s *Slab[T]) Stats() (hits, misses int64) {
	return s.stats.Hits.Load(), s.stats.Misses.Load()
}
