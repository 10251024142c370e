// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

// MPSC is a multi-producer single-consumer bounded queue that drops its
// oldest element on overflow.
//
// Producers use CAS to claim tail positions. The single consumer caches
// the tail it last observed.
//
// Memory: capacity+1 slots
type MPSC[T any] struct {
	r          ring[T]
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
}

// NewMPSC creates a new MPSC queue holding at most capacity elements.
// Panics if capacity < 1.
func NewMPSC[T any](capacity int) *MPSC[T] {
	q := &MPSC[T]{}
	q.r.init(capacity)
	return q
}

// Push appends elem (multiple producers safe).
// If the queue already holds Cap() elements, the oldest one is removed and
// returned with overflow set to true.
func (q *MPSC[T]) Push(elem T) (evicted T, overflow bool) {
	return q.r.pushMulti(elem)
}

// Pop removes and returns the oldest element (single consumer only).
// Returns (zero-value, false) if the queue is empty.
func (q *MPSC[T]) Pop() (T, bool) {
	return q.r.popCached(&q.cachedTail)
}

// Empty reports whether the queue holds no elements.
func (q *MPSC[T]) Empty() bool {
	return q.r.empty()
}

// Cap returns the queue capacity.
func (q *MPSC[T]) Cap() int {
	return q.r.cap()
}
