package fft

import (
	"math"
	"strconv"
)

// Scale selects the amplitude normalization applied by a transform pass.
type Scale int

const (
	// ScaleNone applies no normalization.
	ScaleNone Scale = iota
	// ScaleSN scales every pass by 1/sqrt(N).
	ScaleSN
)

// String returns the short name of the mode.
func (s Scale) String() string {
	switch s {
	case ScaleNone:
		return "None"
	case ScaleSN:
		return "SN"
	default:
		return "Scale(" + strconv.Itoa(int(s)) + ")"
	}
}

// Factor returns the gain one pass of length n applies in this mode.
func (s Scale) Factor(n int) float32 {
	if s == ScaleSN && n > 0 {
		return float32(1 / math.Sqrt(float64(n)))
	}
	return 1
}

func (s Scale) valid() bool {
	return s == ScaleNone || s == ScaleSN
}
