//go:build (amd64 || arm64) && !purego

package vecmath

import (
	_ "github.com/cwbudde/algo-sdr/internal/vecmath/arch/generic"  // register generic kernels
	_ "github.com/cwbudde/algo-sdr/internal/vecmath/arch/unrolled" // register unrolled kernels
)
