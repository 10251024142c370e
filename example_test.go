// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq_test

import (
	"fmt"

	"code.hybscloud.com/vq"
)

// ExampleNew demonstrates a queue selected by variant.
func ExampleNew() {
	q := vq.New[int](vq.VariantSPSC, 8)

	// Producer sends 5 values
	for i := 1; i <= 5; i++ {
		q.Push(i * 10)
	}

	// Consumer receives values
	for !q.Empty() {
		v, _ := q.Pop()
		fmt.Println(v)
	}

	// Output:
	// 10
	// 20
	// 30
	// 40
	// 50
}

// ExampleQueue_Push_overflow demonstrates the drop-oldest policy.
func ExampleQueue_Push_overflow() {
	q := vq.New[string](vq.VariantMPSC, 2)

	for _, ev := range []string{"boot", "ready", "tick", "tock"} {
		if dropped, overflow := q.Push(ev); overflow {
			fmt.Println("dropped", dropped)
		}
	}

	for {
		ev, ok := q.Pop()
		if !ok {
			break
		}
		fmt.Println("got", ev)
	}

	// Output:
	// dropped boot
	// dropped ready
	// got tick
	// got tock
}

// ExampleBuild demonstrates variant selection from constraints.
func ExampleBuild() {
	q := vq.Build[int](vq.NewBuilder(64).SingleConsumer().Blocking())
	fmt.Println(q.Variant(), q.Cap())

	q = vq.Build[int](vq.NewBuilder(64).SingleProducer())
	fmt.Println(q.Variant(), q.Cap())

	// Output:
	// BlockingMPSC 64
	// SPMC 64
}

// ExampleBlockingMPSC_TryPush demonstrates backpressure without blocking.
func ExampleBlockingMPSC_TryPush() {
	q := vq.New[int](vq.VariantBlockingMPSC, 2)
	b := vq.Underlying[*vq.BlockingMPSC[int]](q)

	for i := range 3 {
		if err := b.TryPush(i); vq.IsWouldBlock(err) {
			fmt.Println("full at", i)
		}
	}

	// Close releases blocked producers; later pushes hand the value back
	q.Close()
	rejected, _ := q.Push(9)
	fmt.Println("rejected", rejected)

	for v, ok := q.Pop(); ok; v, ok = q.Pop() {
		fmt.Println(v)
	}

	// Output:
	// full at 2
	// rejected 9
	// 0
	// 1
}
