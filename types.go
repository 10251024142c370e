// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

// Backend is the surface every queue back-end and the [Queue] facade share.
//
// The interface intentionally excludes length because accurate counts in
// lock-free algorithms require expensive cross-core synchronization.
// Track counts in application logic when needed.
type Backend[T any] interface {
	Producer[T]
	Consumer[T]

	// Empty reports whether the queue holds no elements.
	Empty() bool

	// Cap returns the logical capacity fixed at construction.
	Cap() int
}

// Producer is the interface for pushing elements.
type Producer[T any] interface {
	// Push adds an element to the queue.
	//
	// Overflow back-ends never block: when the queue is full the oldest
	// element is removed and returned with overflow set to true. The caller
	// decides whether that data loss is acceptable.
	//
	// Blocking back-ends suspend while the queue is full and always return
	// (zero-value, false) once the element is stored.
	//
	// Thread safety depends on queue type:
	//   - SPSC, SPMC, BlockingSPSC: single producer only
	//   - MPSC, MPMC, BlockingMPSC: multiple producers safe
	Push(elem T) (evicted T, overflow bool)
}

// Consumer is the interface for popping elements.
//
// The element is returned by value. The slot is cleared to allow
// garbage collection of referenced objects.
type Consumer[T any] interface {
	// Pop removes and returns the oldest element. It never blocks.
	// Returns (zero-value, false) if the queue is empty.
	//
	// Thread safety depends on queue type:
	//   - SPSC, MPSC, BlockingSPSC, BlockingMPSC: single consumer only
	//   - SPMC, MPMC: multiple consumers safe
	Pop() (T, bool)
}

// Closer is implemented by the blocking back-ends.
//
// Close wakes every producer blocked in Push and makes further pushes hand
// their element back instead of storing it. Close must be called before a
// blocking queue is abandoned while producers may still be blocked.
type Closer interface {
	Close()
}
