// Package history provides fixed-capacity recency buffers for the metric
// series that feed sparkline and trend rendering. A Ring holds the most
// recent N samples of one series; pushing past capacity evicts the oldest
// sample, so a series that is appended to once per render cycle settles
// into a sliding window over the last N cycles.
package history

import "iter"

// Ring is a fixed-capacity sequence ordered by recency. The zero value is
// not usable; construct with NewRing.
type Ring[T any] struct {
	buf   []T
	next  int // index the next push writes to
	count int
}

// NewRing creates an empty ring holding at most capacity elements.
// Capacity is fixed for the life of the ring.
func NewRing[T any](capacity int) *Ring[T] {
	if capacity <= 0 {
		panic("history: ring capacity must be positive")
	}
	return &Ring[T]{buf: make([]T, capacity)}
}

// Push appends v as the most recent element. If the ring is full the single
// oldest element is evicted and returned with ok=true.
func (r *Ring[T]) Push(v T) (evicted T, ok bool) {
	if r.count == len(r.buf) {
		evicted, ok = r.buf[r.next], true
	} else {
		r.count++
	}
	r.buf[r.next] = v
	r.next = (r.next + 1) % len(r.buf)
	return evicted, ok
}

// MostRecent returns the last pushed element, or ok=false on an empty ring.
func (r *Ring[T]) MostRecent() (v T, ok bool) {
	if r.count == 0 {
		return v, false
	}
	return r.buf[r.index(0)], true
}

// Len returns the number of elements currently held.
func (r *Ring[T]) Len() int { return r.count }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Values iterates the held elements most-recent-first. The sequence is
// finite and may be ranged over any number of times.
func (r *Ring[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.count; i++ {
			if !yield(r.buf[r.index(i)]) {
				return
			}
		}
	}
}

// All returns a fresh slice of the held elements, most-recent-first.
func (r *Ring[T]) All() []T {
	out := make([]T, 0, r.count)
	for v := range r.Values() {
		out = append(out, v)
	}
	return out
}

// index maps a recency offset (0 = most recent) to a buffer index.
func (r *Ring[T]) index(ago int) int {
	return (r.next - 1 - ago + 2*len(r.buf)) % len(r.buf)
}
