// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vq

import "strconv"

// Variant selects the back-end of a [Queue].
//
// The set is closed. Converting any other value to Variant and passing it
// to [New] is a programming error.
type Variant uint8

const (
	// VariantSPSC selects [SPSC]: lock-free, drops oldest on overflow.
	VariantSPSC Variant = iota
	// VariantMPSC selects [MPSC]: lock-free, drops oldest on overflow.
	VariantMPSC
	// VariantMPMC selects [MPMC]: lock-free, drops oldest on overflow.
	VariantMPMC
	// VariantSPMC selects [SPMC]: lock-free, drops oldest on overflow.
	VariantSPMC
	// VariantBlockingSPSC selects [BlockingSPSC]: producer blocks when full.
	VariantBlockingSPSC
	// VariantBlockingMPSC selects [BlockingMPSC]: producers block when full.
	VariantBlockingMPSC

	numVariants
)

var variantNames = [numVariants]string{
	VariantSPSC:         "SPSC",
	VariantMPSC:         "MPSC",
	VariantMPMC:         "MPMC",
	VariantSPMC:         "SPMC",
	VariantBlockingSPSC: "BlockingSPSC",
	VariantBlockingMPSC: "BlockingMPSC",
}

// Variants returns every variant in declaration order.
func Variants() []Variant {
	vs := make([]Variant, numVariants)
	for i := range vs {
		vs[i] = Variant(i)
	}
	return vs
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool {
	return v < numVariants
}

// Blocking reports whether Push suspends on a full queue.
func (v Variant) Blocking() bool {
	return v == VariantBlockingSPSC || v == VariantBlockingMPSC
}

// Overflows reports whether Push evicts the oldest element on a full queue.
func (v Variant) Overflows() bool {
	return v.Valid() && !v.Blocking()
}

// SingleProducer reports whether at most one goroutine may call Push.
func (v Variant) SingleProducer() bool {
	return v == VariantSPSC || v == VariantSPMC || v == VariantBlockingSPSC
}

// SingleConsumer reports whether at most one goroutine may call Pop.
func (v Variant) SingleConsumer() bool {
	return v.Valid() && v != VariantSPMC && v != VariantMPMC
}

func (v Variant) String() string {
	if !v.Valid() {
		return "Variant(" + strconv.Itoa(int(v)) + ")"
	}
	return variantNames[v]
}
