// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// ring is the fixed-capacity storage shared by every back-end.
//
// It holds capacity+1 physical slots for capacity logical elements. Head and
// tail are monotonically increasing positions; a position maps onto slot
// pos % size. Each slot carries a sequence number:
//
//	seq == pos          slot is free for the producer of pos
//	seq == pos + 1      element of pos is published
//	seq == pos + size   element of pos was taken, slot free for pos + size
//
// Invariants: head <= tail and tail-head <= capacity+1. The extra position
// is only ever occupied while an overflowing push is between publishing its
// element and evicting the oldest one, so the spare slot lets it write
// without touching the element being evicted. There is no occupancy counter.
type ring[T any] struct {
	_        pad
	head     atomix.Uint64 // Next position to take
	_        pad
	tail     atomix.Uint64 // Next position to fill
	_        pad
	slots    []ringSlot[T]
	size     uint64 // capacity + 1
	capacity uint64
}

type ringSlot[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort // Pad to cache line
}

func (r *ring[T]) init(capacity int) {
	if capacity < 1 {
		panic("vq: capacity must be >= 1")
	}

	n := uint64(capacity)
	r.slots = make([]ringSlot[T], n+1)
	r.size = n + 1
	r.capacity = n

	for i := uint64(0); i < r.size; i++ {
		r.slots[i].seq.StoreRelaxed(i)
	}
}

// publish writes elem into the slot of a claimed tail position.
// The consumer that took pos-size may still be copying out of the slot;
// publish waits for it to release the slot.
func (r *ring[T]) publish(pos uint64, elem T) {
	slot := &r.slots[pos%r.size]
	sw := spin.Wait{}
	for slot.seq.LoadAcquire() != pos {
		sw.Once()
	}
	slot.data = elem
	slot.seq.StoreRelease(pos + 1)
}

// take removes the element at pos if pos is still the head and the element
// has been published.
func (r *ring[T]) take(pos uint64) (T, bool) {
	slot := &r.slots[pos%r.size]
	if slot.seq.LoadAcquire() != pos+1 || !r.head.CompareAndSwapAcqRel(pos, pos+1) {
		var zero T
		return zero, false
	}

	elem := slot.data
	var zero T
	slot.data = zero
	slot.seq.StoreRelease(pos + r.size)
	return elem, true
}

// pushSingle appends elem, evicting the oldest element on overflow.
// Single producer only.
func (r *ring[T]) pushSingle(elem T) (T, bool) {
	tail := r.tail.LoadRelaxed()
	r.publish(tail, elem)
	r.tail.StoreRelease(tail + 1)
	return r.evictOverflow()
}

// pushMulti appends elem, evicting the oldest element on overflow.
// Multiple producers safe.
func (r *ring[T]) pushMulti(elem T) (T, bool) {
	sw := spin.Wait{}
	for {
		// Head first: a tail loaded afterwards is never behind it.
		head := r.head.LoadAcquire()
		tail := r.tail.LoadAcquire()

		if tail-head <= r.capacity && r.tail.CompareAndSwapAcqRel(tail, tail+1) {
			r.publish(tail, elem)
			return r.evictOverflow()
		}
		sw.Once()
	}
}

// evictOverflow takes the head element while the ring holds more than
// capacity elements. At most one element is over capacity at any time.
func (r *ring[T]) evictOverflow() (T, bool) {
	sw := spin.Wait{}
	for {
		head := r.head.LoadAcquire()
		tail := r.tail.LoadAcquire()
		if tail-head <= r.capacity {
			var zero T
			return zero, false
		}
		if elem, ok := r.take(head); ok {
			return elem, true
		}
		sw.Once()
	}
}

// tryPushSingle appends elem unless the ring is full. Single producer only.
func (r *ring[T]) tryPushSingle(elem T) bool {
	tail := r.tail.LoadRelaxed()
	if tail-r.head.LoadAcquire() >= r.capacity {
		return false
	}

	r.publish(tail, elem)
	r.tail.StoreRelease(tail + 1)
	return true
}

// tryPushMulti appends elem unless the ring is full. Multiple producers safe.
func (r *ring[T]) tryPushMulti(elem T) bool {
	sw := spin.Wait{}
	for {
		head := r.head.LoadAcquire()
		tail := r.tail.LoadAcquire()

		if tail-head >= r.capacity {
			if r.head.LoadAcquire() == head {
				return false
			}
			continue
		}
		if r.tail.CompareAndSwapAcqRel(tail, tail+1) {
			r.publish(tail, elem)
			return true
		}
		sw.Once()
	}
}

// pop removes the head element. Multiple consumers safe.
// Reports empty when the head element is claimed but not yet published.
func (r *ring[T]) pop() (T, bool) {
	sw := spin.Wait{}
	for {
		head := r.head.LoadAcquire()
		seq := r.slots[head%r.size].seq.LoadAcquire()

		if int64(seq)-int64(head+1) < 0 {
			var zero T
			return zero, false
		}
		if elem, ok := r.take(head); ok {
			return elem, true
		}
		sw.Once()
	}
}

// popCached is pop for a single consumer that keeps its own view of tail.
func (r *ring[T]) popCached(cachedTail *uint64) (T, bool) {
	head := r.head.LoadAcquire()
	if head >= *cachedTail {
		*cachedTail = r.tail.LoadAcquire()
		if head >= *cachedTail {
			var zero T
			return zero, false
		}
	}
	return r.pop()
}

func (r *ring[T]) empty() bool {
	head := r.head.LoadAcquire()
	return r.tail.LoadAcquire() == head
}

func (r *ring[T]) full() bool {
	head := r.head.LoadAcquire()
	return r.tail.LoadAcquire()-head >= r.capacity
}

func (r *ring[T]) cap() int {
	return int(r.capacity)
}
