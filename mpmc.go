// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

// MPMC is a multi-producer multi-consumer bounded queue that drops its
// oldest element on overflow.
//
// Uses per-slot sequence numbers which provide:
//   - ABA safety via sequence-based validation
//   - Works with both distinct and non-distinct values
//   - Eviction by producers without a separate occupancy counter
//
// Memory: capacity+1 slots
type MPMC[T any] struct {
	r ring[T]
}

// NewMPMC creates a new MPMC queue holding at most capacity elements.
// Panics if capacity < 1.
func NewMPMC[T any](capacity int) *MPMC[T] {
	q := &MPMC[T]{}
	q.r.init(capacity)
	return q
}

// Push appends elem (multiple producers safe).
// If the queue already holds Cap() elements, the oldest one is removed and
// returned with overflow set to true.
func (q *MPMC[T]) Push(elem T) (evicted T, overflow bool) {
	return q.r.pushMulti(elem)
}

// Pop removes and returns the oldest element (multiple consumers safe).
// Returns (zero-value, false) if the queue is empty.
func (q *MPMC[T]) Pop() (T, bool) {
	return q.r.pop()
}

// Empty reports whether the queue holds no elements.
func (q *MPMC[T]) Empty() bool {
	return q.r.empty()
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return q.r.cap()
}
