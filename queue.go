// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

import "fmt"

var (
	_ Backend[int] = (*SPSC[int])(nil)
	_ Backend[int] = (*MPSC[int])(nil)
	_ Backend[int] = (*MPMC[int])(nil)
	_ Backend[int] = (*SPMC[int])(nil)
	_ Backend[int] = (*BlockingSPSC[int])(nil)
	_ Backend[int] = (*BlockingMPSC[int])(nil)
	_ Backend[int] = (*Queue[int])(nil)

	_ Closer = (*BlockingSPSC[int])(nil)
	_ Closer = (*BlockingMPSC[int])(nil)
)

// Queue is a bounded FIFO queue whose back-end is chosen once at
// construction.
//
// Queue is a tagged union: the variant recorded by [New] selects which one
// of the back-end fields is set, and every operation switches on it. The
// variant never changes after construction.
//
// The concurrency contract is the one of the selected back-end, see
// [Variant.SingleProducer] and [Variant.SingleConsumer].
type Queue[T any] struct {
	variant      Variant
	spsc         *SPSC[T]
	mpsc         *MPSC[T]
	mpmc         *MPMC[T]
	spmc         *SPMC[T]
	blockingSPSC *BlockingSPSC[T]
	blockingMPSC *BlockingMPSC[T]
}

// New creates a queue backed by variant holding at most capacity elements.
// Panics if variant is not valid or capacity < 1.
func New[T any](variant Variant, capacity int) *Queue[T] {
	q := &Queue[T]{variant: variant}
	switch variant {
	case VariantSPSC:
		q.spsc = NewSPSC[T](capacity)
	case VariantMPSC:
		q.mpsc = NewMPSC[T](capacity)
	case VariantMPMC:
		q.mpmc = NewMPMC[T](capacity)
	case VariantSPMC:
		q.spmc = NewSPMC[T](capacity)
	case VariantBlockingSPSC:
		q.blockingSPSC = NewBlockingSPSC[T](capacity)
	case VariantBlockingMPSC:
		q.blockingMPSC = NewBlockingMPSC[T](capacity)
	default:
		panic("vq: invalid variant " + variant.String())
	}
	return q
}

// Variant returns the variant chosen at construction.
func (q *Queue[T]) Variant() Variant {
	return q.variant
}

// Push adds elem to the queue.
//
// Overflow variants return the evicted oldest element with overflow set to
// true when the queue was full. Blocking variants suspend while the queue
// is full and return (zero-value, false) once elem is stored.
func (q *Queue[T]) Push(elem T) (evicted T, overflow bool) {
	switch q.variant {
	case VariantSPSC:
		return q.spsc.Push(elem)
	case VariantMPSC:
		return q.mpsc.Push(elem)
	case VariantMPMC:
		return q.mpmc.Push(elem)
	case VariantSPMC:
		return q.spmc.Push(elem)
	case VariantBlockingSPSC:
		return q.blockingSPSC.Push(elem)
	default:
		return q.blockingMPSC.Push(elem)
	}
}

// Pop removes and returns the oldest element. It never blocks.
// Returns (zero-value, false) if the queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	switch q.variant {
	case VariantSPSC:
		return q.spsc.Pop()
	case VariantMPSC:
		return q.mpsc.Pop()
	case VariantMPMC:
		return q.mpmc.Pop()
	case VariantSPMC:
		return q.spmc.Pop()
	case VariantBlockingSPSC:
		return q.blockingSPSC.Pop()
	default:
		return q.blockingMPSC.Pop()
	}
}

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	switch q.variant {
	case VariantSPSC:
		return q.spsc.Empty()
	case VariantMPSC:
		return q.mpsc.Empty()
	case VariantMPMC:
		return q.mpmc.Empty()
	case VariantSPMC:
		return q.spmc.Empty()
	case VariantBlockingSPSC:
		return q.blockingSPSC.Empty()
	default:
		return q.blockingMPSC.Empty()
	}
}

// Cap returns the capacity passed to [New].
func (q *Queue[T]) Cap() int {
	switch q.variant {
	case VariantSPSC:
		return q.spsc.Cap()
	case VariantMPSC:
		return q.mpsc.Cap()
	case VariantMPMC:
		return q.mpmc.Cap()
	case VariantSPMC:
		return q.spmc.Cap()
	case VariantBlockingSPSC:
		return q.blockingSPSC.Cap()
	default:
		return q.blockingMPSC.Cap()
	}
}

// Close releases producers blocked in Push on blocking variants and makes
// further pushes hand their element back. No-op for overflow variants.
func (q *Queue[T]) Close() {
	switch q.variant {
	case VariantBlockingSPSC:
		q.blockingSPSC.Close()
	case VariantBlockingMPSC:
		q.blockingMPSC.Close()
	}
}

func (q *Queue[T]) backend() any {
	switch q.variant {
	case VariantSPSC:
		return q.spsc
	case VariantMPSC:
		return q.mpsc
	case VariantMPMC:
		return q.mpmc
	case VariantSPMC:
		return q.spmc
	case VariantBlockingSPSC:
		return q.blockingSPSC
	default:
		return q.blockingMPSC
	}
}

// Underlying returns the back-end selected at construction as B.
//
// Intended for tests and monitoring only. B must match the variant passed
// to [New]; asking for any other back-end type panics.
//
//	q := vq.New[int](vq.VariantSPSC, 5)
//	spsc := vq.Underlying[*vq.SPSC[int]](q)
func Underlying[B Backend[T], T any](q *Queue[T]) B {
	b, ok := q.backend().(B)
	if !ok {
		var want B
		panic(fmt.Sprintf("vq: %s queue has no %T back-end", q.variant, want))
	}
	return b
}
