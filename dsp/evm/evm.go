// Package evm measures error vector magnitude between received and
// reference symbols.
//
// The error vector of a symbol is actual-ref. Limits are given in dB
// relative to the reference magnitude using the amplitude convention
// 20*log10(|actual-ref| / |ref|).
//
// A limit of 0 dB accepts any error up to the reference magnitude, so a
// symbol 0.9 received for 1 (an error of -20 dB) passes at 0 dB. Tight
// checks use negative limits: the same symbol fails at -21 dB.
package evm

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-sdr/dsp/core"
)

// ErrLimitExceeded is returned by Check when an element is out of bounds.
var ErrLimitExceeded = errors.New("evm: limit exceeded")

// ErrorMagnitudes returns |actual[i]-ref[i]| over the overlapping prefix.
func ErrorMagnitudes(actual, ref []complex64) []float32 {
	n := min(len(actual), len(ref))
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(cmplx.Abs(complex128(actual[i] - ref[i])))
	}
	return out
}

// Limit converts a dB limit into the maximum error magnitude allowed for a
// reference symbol of magnitude refMag.
func Limit(refMag, limitDB float64) float64 {
	return refMag * core.DBToAmplitude(limitDB)
}

// Check compares actual against ref element by element over the
// overlapping prefix. The first element whose error magnitude exceeds
// Limit(|ref|, limitDB) is reported in a wrapped ErrLimitExceeded.
func Check(actual, ref []complex64, limitDB float64) error {
	n := min(len(actual), len(ref))
	for i := 0; i < n; i++ {
		e := cmplx.Abs(complex128(actual[i] - ref[i]))
		r := cmplx.Abs(complex128(ref[i]))
		limit := Limit(r, limitDB)
		if e > limit {
			return fmt.Errorf("%w: element %d: error %g (%.2f dB) > limit %g (%.2f dB), actual %v, expected %v",
				ErrLimitExceeded, i, e, ratioDB(e, r), limit, limitDB, actual[i], ref[i])
		}
	}
	return nil
}

// RMS returns sqrt(sum|actual-ref|^2 / sum|ref|^2) over the overlapping
// prefix. It returns 0 when the reference carries no power.
func RMS(actual, ref []complex64) float64 {
	n := min(len(actual), len(ref))
	errPow := make([]float64, n)
	refPow := make([]float64, n)
	for i := 0; i < n; i++ {
		d := complex128(actual[i] - ref[i])
		errPow[i] = real(d)*real(d) + imag(d)*imag(d)
		r := complex128(ref[i])
		refPow[i] = real(r)*real(r) + imag(r)*imag(r)
	}

	den := floats.Sum(refPow)
	if den == 0 {
		return 0
	}
	return math.Sqrt(floats.Sum(errPow) / den)
}

// DB converts an EVM ratio to dB. Non-positive ratios give -Inf.
func DB(ratio float64) float64 {
	if ratio <= 0 {
		return math.Inf(-1)
	}
	return core.AmplitudeToDB(ratio)
}

func ratioDB(e, r float64) float64 {
	if r == 0 {
		return math.Inf(1)
	}
	return DB(e / r)
}
