// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

// SPSC is a single-producer single-consumer bounded queue that drops its
// oldest element on overflow.
//
// The producer publishes the tail with a release store. The consumer caches
// the producer's tail, reducing cross-core cache line traffic. Both sides
// advance head with CAS because an overflowing producer evicts the oldest
// element itself.
//
// Memory: capacity+1 slots
type SPSC[T any] struct {
	r          ring[T]
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
}

// NewSPSC creates a new SPSC queue holding at most capacity elements.
// Panics if capacity < 1.
func NewSPSC[T any](capacity int) *SPSC[T] {
	q := &SPSC[T]{}
	q.r.init(capacity)
	return q
}

// Push appends elem (producer only).
// If the queue already holds Cap() elements, the oldest one is removed and
// returned with overflow set to true.
func (q *SPSC[T]) Push(elem T) (evicted T, overflow bool) {
	return q.r.pushSingle(elem)
}

// Pop removes and returns the oldest element (consumer only).
// Returns (zero-value, false) if the queue is empty.
func (q *SPSC[T]) Pop() (T, bool) {
	return q.r.popCached(&q.cachedTail)
}

// Empty reports whether the queue holds no elements.
func (q *SPSC[T]) Empty() bool {
	return q.r.empty()
}

// Cap returns the queue capacity.
func (q *SPSC[T]) Cap() int {
	return q.r.cap()
}
