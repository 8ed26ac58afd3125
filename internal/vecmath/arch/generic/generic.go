// Package generic provides the portable complex vector kernels.
package generic

import (
	"github.com/cwbudde/algo-sdr/internal/cpu"
	"github.com/cwbudde/algo-sdr/internal/vecmath/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "generic",
		SIMDLevel:    cpu.SIMDNone,
		Priority:     0,
		ScaleInPlace: ScaleInPlace,
		ConjInPlace:  ConjInPlace,
		MulInPlace:   MulInPlace,
		AddInPlace:   AddInPlace,
	})
}

// ScaleInPlace multiplies every element by the real scalar k.
func ScaleInPlace(dst []complex64, k float32) {
	for i, v := range dst {
		dst[i] = complex(real(v)*k, imag(v)*k)
	}
}

// ConjInPlace negates the imaginary part of every element.
func ConjInPlace(dst []complex64) {
	for i, v := range dst {
		dst[i] = complex(real(v), -imag(v))
	}
}

// MulInPlace computes dst[i] *= src[i]. Panics if lengths differ.
func MulInPlace(dst, src []complex64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] *= src[i]
	}
}

// AddInPlace computes dst[i] += src[i]. Panics if lengths differ.
func AddInPlace(dst, src []complex64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}
	for i := range dst {
		dst[i] += src[i]
	}
}
