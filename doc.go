// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vq provides a bounded FIFO queue whose back-end is selected once
// at construction.
//
// Six back-ends differ in topology and overflow policy:
//
//	Variant              Producers  Consumers  Full queue
//	VariantSPSC          1          1          Push drops and returns oldest
//	VariantMPSC          n          1          Push drops and returns oldest
//	VariantMPMC          n          n          Push drops and returns oldest
//	VariantSPMC          1          n          Push drops and returns oldest
//	VariantBlockingSPSC  1          1          Push blocks
//	VariantBlockingMPSC  n          1          Push blocks
//
// Pop, Empty and Cap never block on any variant.
//
// # Quick Start
//
// Pick the variant directly:
//
//	q := vq.New[Event](vq.VariantMPSC, 1024)
//
// Or let the builder resolve it from constraints:
//
//	q := vq.Build[Event](vq.NewBuilder(1024).SingleProducer().SingleConsumer())  // → SPSC
//	q := vq.Build[Event](vq.NewBuilder(1024).SingleConsumer())                   // → MPSC
//	q := vq.Build[Event](vq.NewBuilder(1024).SingleProducer())                   // → SPMC
//	q := vq.Build[Event](vq.NewBuilder(1024))                                    // → MPMC
//	q := vq.Build[Event](vq.NewBuilder(1024).SingleConsumer().Blocking())        // → BlockingMPSC
//
// Each back-end can also be used on its own through NewSPSC, NewMPSC,
// NewMPMC, NewSPMC, NewBlockingSPSC and NewBlockingMPSC.
//
// # Overflow
//
// Lock-free variants never block the producer. When the queue already holds
// Cap() elements, Push removes the oldest one and hands it back:
//
//	if dropped, overflow := q.Push(ev); overflow {
//	    log.Printf("dropped %v", dropped)
//	}
//
// Elements are popped in insertion order. An evicted element is never
// popped, and every element leaves the queue exactly once, either through
// Pop or as the evicted result of a Push.
//
// # Blocking
//
// Blocking variants suspend Push on a mutex/condition pair until a Pop frees
// a slot. Nothing is dropped and the evicted result is always empty. There
// is no timeout; use TryPush on the back-end for a non-blocking attempt:
//
//	b := vq.Underlying[*vq.BlockingMPSC[Event]](q)
//	if err := b.TryPush(ev); vq.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
// A blocking queue must not be abandoned while producers may be blocked in
// Push. Call Close first: it wakes every blocked producer, and from then on
// Push hands its element back as (elem, true) instead of storing it.
//
// # Capacity
//
// Capacity is exact. The ring storage uses Cap()+1 slots; the spare slot
// lets an overflowing producer write before the oldest element is removed,
// so no occupancy counter is needed.
//
// Length is intentionally not provided because accurate counts in lock-free
// algorithms require expensive cross-core synchronization.
//
// # Thread Safety
//
// All operations are safe within the access pattern of the selected
// variant. Violating it (e.g., multiple producers on SPSC) causes undefined
// behavior including data corruption and races.
//
// # Race Detection
//
// Go's race detector cannot observe happens-before relationships established
// through atomix acquire-release orderings on separate variables. Concurrent
// tests are excluded when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives with
// explicit memory ordering, [code.hybscloud.com/spin] for CPU pause
// instructions, and [code.hybscloud.com/iox] for semantic errors.
package vq
