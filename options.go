// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

// Options configures queue creation and variant selection.
type Options struct {
	// Producer/Consumer constraints (determines topology)
	singleProducer bool
	singleConsumer bool

	// Overflow policy: block producers instead of dropping the oldest element
	blocking bool

	// Logical capacity (exact, no rounding)
	capacity int
}

// Builder creates queues with fluent configuration.
//
// Builder resolves producer/consumer constraints and the overflow policy to
// a [Variant], so call sites state what they need instead of naming a
// back-end.
//
// Example:
//
//	// Lock-free SPSC queue that drops the oldest element when full
//	q := vq.Build[Event](vq.NewBuilder(1024).SingleProducer().SingleConsumer())
//
//	// Many producers feeding one consumer, producers block when full
//	q := vq.Build[Request](vq.NewBuilder(256).SingleConsumer().Blocking())
type Builder struct {
	opts Options
}

// NewBuilder creates a queue builder with the given capacity.
//
// Capacity is the exact number of elements the queue holds.
// Panics if capacity < 1.
func NewBuilder(capacity int) *Builder {
	if capacity < 1 {
		panic("vq: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleProducer declares that only one goroutine will push.
func (b *Builder) SingleProducer() *Builder {
	b.opts.singleProducer = true
	return b
}

// SingleConsumer declares that only one goroutine will pop.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// Blocking makes Push suspend on a full queue instead of dropping the
// oldest element. Requires SingleConsumer().
func (b *Builder) Blocking() *Builder {
	b.opts.blocking = true
	return b
}

// Variant resolves the configured constraints.
//
// Selection:
//
//	Blocking + SingleProducer + SingleConsumer → BlockingSPSC
//	Blocking + SingleConsumer                  → BlockingMPSC
//	SingleProducer + SingleConsumer            → SPSC
//	SingleProducer only                        → SPMC
//	SingleConsumer only                        → MPSC
//	Neither                                    → MPMC
//
// Panics if Blocking() is set without SingleConsumer(): there is no
// multi-consumer blocking back-end.
func (b *Builder) Variant() Variant {
	switch {
	case b.opts.blocking && !b.opts.singleConsumer:
		panic("vq: Blocking requires SingleConsumer()")
	case b.opts.blocking && b.opts.singleProducer:
		return VariantBlockingSPSC
	case b.opts.blocking:
		return VariantBlockingMPSC
	case b.opts.singleProducer && b.opts.singleConsumer:
		return VariantSPSC
	case b.opts.singleProducer:
		return VariantSPMC
	case b.opts.singleConsumer:
		return VariantMPSC
	default:
		return VariantMPMC
	}
}

// Capacity returns the configured capacity.
func (b *Builder) Capacity() int {
	return b.opts.capacity
}

// Build creates a [Queue] with the variant resolved by [Builder.Variant].
func Build[T any](b *Builder) *Queue[T] {
	return New[T](b.Variant(), b.opts.capacity)
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
