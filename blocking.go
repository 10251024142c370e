// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

import (
	"sync"

	"code.hybscloud.com/atomix"
)

// blockingCore is the state shared by the blocking back-ends: a ring that
// never overflows, a single consumer's cached tail, and the mutex/condition
// pair producers wait on while the ring is full.
//
// Producers wait on notFull with the predicate evaluated against the ring's
// actual occupancy, so spurious wake-ups and producers racing for the same
// freed slot simply wait again. Pop never waits on the condition; it only
// holds the mutex long enough to signal, which closes the window between a
// producer's occupancy check and its Wait.
type blockingCore[T any] struct {
	r          ring[T]
	_          pad
	cachedTail uint64 // Consumer's cached view of tail
	_          pad
	mu         sync.Mutex
	notFull    sync.Cond
	closed     atomix.Bool
}

func (b *blockingCore[T]) init(capacity int) {
	b.r.init(capacity)
	b.notFull.L = &b.mu
}

// waitNotFull suspends until the ring has room or the queue is closed.
func (b *blockingCore[T]) waitNotFull() {
	b.mu.Lock()
	for b.r.full() && !b.closed.LoadAcquire() {
		b.notFull.Wait()
	}
	b.mu.Unlock()
}

func (b *blockingCore[T]) pop() (T, bool) {
	elem, ok := b.r.popCached(&b.cachedTail)
	if ok {
		b.mu.Lock()
		b.notFull.Signal()
		b.mu.Unlock()
	}
	return elem, ok
}

func (b *blockingCore[T]) close() {
	b.mu.Lock()
	b.closed.StoreRelease(true)
	b.notFull.Broadcast()
	b.mu.Unlock()
}

// BlockingSPSC is a single-producer single-consumer bounded queue whose
// producer blocks while the queue is full. Nothing is ever dropped.
//
// Destroying a BlockingSPSC while its producer is blocked in Push leaks the
// producer goroutine. Call Close first to release it.
//
// Memory: capacity+1 slots
type BlockingSPSC[T any] struct {
	blockingCore[T]
}

// NewBlockingSPSC creates a new blocking SPSC queue holding at most
// capacity elements. Panics if capacity < 1.
func NewBlockingSPSC[T any](capacity int) *BlockingSPSC[T] {
	q := &BlockingSPSC[T]{}
	q.init(capacity)
	return q
}

// Push appends elem (producer only), blocking while the queue is full.
// Returns (zero-value, false) once elem is stored. After Close, elem is
// not stored and is handed back as (elem, true).
func (q *BlockingSPSC[T]) Push(elem T) (T, bool) {
	for {
		if q.closed.LoadAcquire() {
			return elem, true
		}
		if q.r.tryPushSingle(elem) {
			var zero T
			return zero, false
		}
		q.waitNotFull()
	}
}

// TryPush appends elem without blocking (producer only).
// Returns ErrWouldBlock if the queue is full, ErrClosed after Close.
func (q *BlockingSPSC[T]) TryPush(elem T) error {
	if q.closed.LoadAcquire() {
		return ErrClosed
	}
	if !q.r.tryPushSingle(elem) {
		return ErrWouldBlock
	}
	return nil
}

// Pop removes and returns the oldest element (consumer only). Never blocks.
// Returns (zero-value, false) if the queue is empty.
func (q *BlockingSPSC[T]) Pop() (T, bool) {
	return q.pop()
}

// Empty reports whether the queue holds no elements.
func (q *BlockingSPSC[T]) Empty() bool {
	return q.r.empty()
}

// Cap returns the queue capacity.
func (q *BlockingSPSC[T]) Cap() int {
	return q.r.cap()
}

// Close releases producers blocked in Push and rejects further pushes.
// Elements already queued can still be popped.
func (q *BlockingSPSC[T]) Close() {
	q.close()
}

// BlockingMPSC is a multi-producer single-consumer bounded queue whose
// producers block while the queue is full. Nothing is ever dropped.
//
// Destroying a BlockingMPSC while producers are blocked in Push leaks those
// goroutines. Call Close first to release them.
//
// Memory: capacity+1 slots
type BlockingMPSC[T any] struct {
	blockingCore[T]
}

// NewBlockingMPSC creates a new blocking MPSC queue holding at most
// capacity elements. Panics if capacity < 1.
func NewBlockingMPSC[T any](capacity int) *BlockingMPSC[T] {
	q := &BlockingMPSC[T]{}
	q.init(capacity)
	return q
}

// Push appends elem (multiple producers safe), blocking while the queue is
// full. Returns (zero-value, false) once elem is stored. After Close, elem
// is not stored and is handed back as (elem, true).
func (q *BlockingMPSC[T]) Push(elem T) (T, bool) {
	for {
		if q.closed.LoadAcquire() {
			return elem, true
		}
		if q.r.tryPushMulti(elem) {
			var zero T
			return zero, false
		}
		q.waitNotFull()
	}
}

// TryPush appends elem without blocking (multiple producers safe).
// Returns ErrWouldBlock if the queue is full, ErrClosed after Close.
func (q *BlockingMPSC[T]) TryPush(elem T) error {
	if q.closed.LoadAcquire() {
		return ErrClosed
	}
	if !q.r.tryPushMulti(elem) {
		return ErrWouldBlock
	}
	return nil
}

// Pop removes and returns the oldest element (single consumer only).
// Never blocks. Returns (zero-value, false) if the queue is empty.
func (q *BlockingMPSC[T]) Pop() (T, bool) {
	return q.pop()
}

// Empty reports whether the queue holds no elements.
func (q *BlockingMPSC[T]) Empty() bool {
	return q.r.empty()
}

// Cap returns the queue capacity.
func (q *BlockingMPSC[T]) Cap() int {
	return q.r.cap()
}

// Close releases producers blocked in Push and rejects further pushes.
// Elements already queued can still be popped.
func (q *BlockingMPSC[T]) Close() {
	q.close()
}
