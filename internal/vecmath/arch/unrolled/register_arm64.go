//go:build arm64 && !purego

package unrolled

import (
	"github.com/cwbudde/algo-sdr/internal/cpu"
	"github.com/cwbudde/algo-sdr/internal/vecmath/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "unrolled",
		SIMDLevel:    cpu.SIMDNEON,
		Priority:     10,
		ScaleInPlace: ScaleInPlace,
		ConjInPlace:  ConjInPlace,
		MulInPlace:   MulInPlace,
		AddInPlace:   AddInPlace,
	})
}
