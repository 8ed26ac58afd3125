package fft

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

var errEngineMismatch = errors.New("fft: engine output disagrees with direct DFT")

// verifyBins caps how many forward bins verifyEngine checks against a
// direct sum, keeping construction O(n).
const verifyBins = 8

// verifyEngine transforms a fixed test vector with e and compares a
// spread of bins against the direct DFT, then checks that the inverse
// restores the input.
func verifyEngine(e engine, n int) error {
	src := make([]complex64, n)
	for j := range src {
		x := float64(j)
		src[j] = complex64(complex(math.Cos(0.7*x)+0.25, math.Sin(1.3*x)-0.5*math.Cos(0.2*x)))
	}

	spec := make([]complex64, n)
	if err := e.forward(spec, src); err != nil {
		return err
	}

	tol := 1e-3 * math.Sqrt(float64(n))
	for _, k := range verifyBinSet(n) {
		var want complex128
		for j, v := range src {
			want += complex128(v) * cmplx.Rect(1, -2*math.Pi*float64((j*k)%n)/float64(n))
		}
		if d := cmplx.Abs(complex128(spec[k]) - want); d > tol || math.IsNaN(d) {
			return fmt.Errorf("%w: bin %d off by %g", errEngineMismatch, k, d)
		}
	}

	back := make([]complex64, n)
	if err := e.inverse(back, spec); err != nil {
		return err
	}
	gain := 1.0
	if !e.inverseNormalized() {
		gain = 1 / float64(n)
	}
	for j := range back {
		got := complex128(back[j]) * complex(gain, 0)
		if d := cmplx.Abs(got - complex128(src[j])); d > 1e-3 || math.IsNaN(d) {
			return fmt.Errorf("%w: inverse sample %d off by %g", errEngineMismatch, j, d)
		}
	}
	return nil
}

// verifyBinSet returns every bin for short lengths and an even spread
// including DC, Nyquist and the last bin otherwise.
func verifyBinSet(n int) []int {
	if n <= verifyBins {
		bins := make([]int, n)
		for k := range bins {
			bins[k] = k
		}
		return bins
	}

	bins := []int{0, 1, n / 2, n - 1}
	for i := 1; len(bins) < verifyBins; i++ {
		bins = append(bins, (i*n)/(verifyBins-3)+i)
	}
	for i := range bins {
		bins[i] %= n
	}
	return bins
}
