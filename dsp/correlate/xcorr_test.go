package correlate

import "math/cmplx"

// directXCorr returns |sum_j signal[l+j] * conj(pattern[j])| for every lag
// where the pattern fits.
func directXCorr(signal, pattern []complex64) []float64 {
	if len(signal) < len(pattern) {
		return nil
	}
	out := make([]float64, len(signal)-len(pattern)+1)
	for l := range out {
		var acc complex128
		for j, p := range pattern {
			acc += complex128(signal[l+j]) * cmplx.Conj(complex128(p))
		}
		out[l] = cmplx.Abs(acc)
	}
	return out
}
