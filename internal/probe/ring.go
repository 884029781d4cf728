package probe

import (
	"context"
	"fmt"
)

// ringBuffer is a single-goroutine SPSC ring: the probe is both producer and
// consumer. Size is rounded up to a power of 2 so indices can be masked.
type ringBuffer[T any] struct {
	buf  []T
	mask uint64
	head uint64
	tail uint64
}

func newRingBuffer[T any](size int) *ringBuffer[T] {
	n := uint64(1)
	for n < uint64(size) {
		n <<= 1
	}
	return &ringBuffer[T]{buf: make([]T, n), mask: n - 1}
}

// push returns false if the ring is full.
func (r *ringBuffer[T]) push(v T) bool {
	if r.head-r.tail >= uint64(len(r.buf)) {
		return false
	}
	r.buf[r.head&r.mask] = v
	r.head++
	return true
}

// pop returns false if the ring is empty.
func (r *ringBuffer[T]) pop() (T, bool) {
	if r.tail >= r.head {
		var zero T
		return zero, false
	}
	v := r.buf[r.tail&r.mask]
	r.tail++
	return v, true
}

type ringState struct {
	ring *ringBuffer[int]
	seq  int
}

func setupRing(_ context.Context, p Params) (Bound, error) {
	if p.RingSize <= 0 {
		return Bound{}, fmt.Errorf("ring size %d must be positive", p.RingSize)
	}
	return bind(&ringState{ring: newRingBuffer[int](p.RingSize)}, func(s *ringState) bool {
		s.seq++
		if !s.ring.push(s.seq) {
			return false
		}
		v, ok := s.ring.pop()
		return ok && v == s.seq
	}, nil), nil
}
