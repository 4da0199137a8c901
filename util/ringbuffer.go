// util/ringbuffer.go
// Copyright(c) 2025 radarsim contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

// RingBuffer represents an array of no more than a given maximum number of
// items.  Once it has filled, old items are discarded to make way for new
// ones.
type RingBuffer[V any] struct {
	entries []V
	max     int
	index   int
}

func NewRingBuffer[V any](capacity int) *RingBuffer[V] {
	return &RingBuffer[V]{max: max(capacity, 0)}
}

// Add adds all of the provided values to the ring buffer.
func (r *RingBuffer[V]) Add(values ...V) {
	if r.max == 0 {
		return
	}
	for _, v := range values {
		if len(r.entries) < r.max {
			r.entries = append(r.entries, v)
		} else {
			// Once full, r.index%r.max is the oldest entry and successive
			// newer entries follow it.
			r.entries[r.index%r.max] = v
		}
		r.index++
	}
}

// Size returns the total number of items stored in the ring buffer.
func (r *RingBuffer[V]) Size() int {
	return min(len(r.entries), r.max)
}

func (r *RingBuffer[V]) Cap() int {
	return r.max
}

// Get returns the specified element of the ring buffer where the index i
// is between 0 and Size()-1 and 0 is the oldest element in the buffer.
func (r *RingBuffer[V]) Get(i int) V {
	return r.entries[(r.index+i)%len(r.entries)]
}

// Newest returns the i-th most recently added element; Newest(0) is the
// last value passed to Add.
func (r *RingBuffer[V]) Newest(i int) V {
	return r.Get(r.Size() - 1 - i)
}

// Clear discards all of the items in the buffer; its capacity is
// unchanged.
func (r *RingBuffer[V]) Clear() {
	r.entries = r.entries[:0]
	r.index = 0
}
