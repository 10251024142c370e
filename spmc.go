// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

// SPMC is a single-producer multi-consumer bounded queue that drops its
// oldest element on overflow.
//
// The single producer writes sequentially. Consumers use CAS to claim
// head positions.
//
// Memory: capacity+1 slots
type SPMC[T any] struct {
	r ring[T]
}

// NewSPMC creates a new SPMC queue holding at most capacity elements.
// Panics if capacity < 1.
func NewSPMC[T any](capacity int) *SPMC[T] {
	q := &SPMC[T]{}
	q.r.init(capacity)
	return q
}

// Push appends elem (single producer only).
// If the queue already holds Cap() elements, the oldest one is removed and
// returned with overflow set to true.
func (q *SPMC[T]) Push(elem T) (evicted T, overflow bool) {
	return q.r.pushSingle(elem)
}

// Pop removes and returns the oldest element (multiple consumers safe).
// Returns (zero-value, false) if the queue is empty.
func (q *SPMC[T]) Pop() (T, bool) {
	return q.r.pop()
}

// Empty reports whether the queue holds no elements.
func (q *SPMC[T]) Empty() bool {
	return q.r.empty()
}

// Cap returns the queue capacity.
func (q *SPMC[T]) Cap() int {
	return q.r.cap()
}
