// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples with concurrent producer/consumer goroutines.
// These trigger false positives with Go's race detector because lock-free
// queue synchronization uses atomic sequences that the detector cannot see.
// The examples are correct; they're excluded from race testing.

package vq_test

import (
	"fmt"
	"sort"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/vq"
)

// Example_pipeline demonstrates a multi-stage pipeline using blocking SPSC
// queues. Producers wait on a full stage instead of dropping values.
func Example_pipeline() {
	// Pipeline: Generate → Double → Print
	stage1to2 := vq.New[int](vq.VariantBlockingSPSC, 2) // Generate → Double
	stage2to3 := vq.New[int](vq.VariantBlockingSPSC, 2) // Double → Print

	var wg sync.WaitGroup
	results := make([]int, 0, 5)

	// Stage 1: Generate numbers 1-5
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 1; i <= 5; i++ {
			stage1to2.Push(i)
		}
	}()

	// Stage 2: Double each number
	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		for processed := 0; processed < 5; {
			v, ok := stage1to2.Pop()
			if !ok {
				backoff.Wait()
				continue
			}
			backoff.Reset()
			stage2to3.Push(v * 2)
			processed++
		}
	}()

	// Stage 3: Collect results
	backoff := iox.Backoff{}
	for len(results) < 5 {
		v, ok := stage2to3.Pop()
		if !ok {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		results = append(results, v)
	}

	wg.Wait()

	for i, v := range results {
		fmt.Printf("Stage output %d: %d\n", i, v)
	}

	// Output:
	// Stage output 0: 2
	// Stage output 1: 4
	// Stage output 2: 6
	// Stage output 3: 8
	// Stage output 4: 10
}

// Example_eventAggregation demonstrates several sources feeding one
// aggregator through an overflowing MPSC queue large enough not to drop.
func Example_eventAggregation() {
	q := vq.New[string](vq.VariantMPSC, 16)

	var wg sync.WaitGroup
	for s := range 3 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if dropped, overflow := q.Push(fmt.Sprintf("event from sensor %d", id)); overflow {
				fmt.Println("dropped", dropped)
			}
		}(s)
	}
	wg.Wait()

	var events []string
	for ev, ok := q.Pop(); ok; ev, ok = q.Pop() {
		events = append(events, ev)
	}
	sort.Strings(events)
	for _, ev := range events {
		fmt.Println(ev)
	}

	// Output:
	// event from sensor 0
	// event from sensor 1
	// event from sensor 2
}
