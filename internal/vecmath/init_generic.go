//go:build purego || !(amd64 || arm64)

package vecmath

import (
	_ "github.com/cwbudde/algo-sdr/internal/vecmath/arch/generic" // register generic kernels
)
