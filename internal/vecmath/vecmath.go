// Package vecmath provides the complex64 block kernels behind dsp/vecops.
//
// The kernel set is chosen once, on first use, from the variants registered
// in registry.Global for the detected CPU features. All functions operate on
// equal-length slices; callers reconcile lengths before calling.
package vecmath

import (
	"sync"

	"github.com/cwbudde/algo-sdr/internal/cpu"
	"github.com/cwbudde/algo-sdr/internal/vecmath/registry"
)

var (
	selected   *registry.OpEntry
	selectOnce sync.Once
)

func initOperations() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("vecmath: no implementation registered (missing generic fallback?)")
	}
	if entry.ScaleInPlace == nil || entry.ConjInPlace == nil || entry.MulInPlace == nil || entry.AddInPlace == nil {
		panic("vecmath: selected implementation " + entry.Name + " is incomplete")
	}
	selected = entry
}

func ops() *registry.OpEntry {
	selectOnce.Do(initOperations)
	return selected
}

// Implementation returns the name of the selected kernel set.
func Implementation() string {
	return ops().Name
}

// ScaleInPlace computes dst[i] *= k.
func ScaleInPlace(dst []complex64, k float32) {
	ops().ScaleInPlace(dst, k)
}

// ConjInPlace negates the imaginary part of every element.
func ConjInPlace(dst []complex64) {
	ops().ConjInPlace(dst)
}

// MulInPlace computes dst[i] *= src[i]. Panics if lengths differ.
func MulInPlace(dst, src []complex64) {
	ops().MulInPlace(dst, src)
}

// AddInPlace computes dst[i] += src[i]. Panics if lengths differ.
func AddInPlace(dst, src []complex64) {
	ops().AddInPlace(dst, src)
}
