package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-sdr/dsp/evm"
)

// RequireComplexNearlyEqual fails t if got and want differ in length or if
// any element pair is further apart than eps.
func RequireComplexNearlyEqual(t *testing.T, got, want []complex64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := cmplx.Abs(complex128(got[i] - want[i]))
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any component is NaN or Inf.
func RequireFinite(t *testing.T, data []complex64) {
	t.Helper()
	for i, v := range data {
		if cmplx.IsNaN(complex128(v)) || cmplx.IsInf(complex128(v)) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireEVM fails t if any element of actual deviates from ref by more
// than limitDB relative to the reference magnitude.
func RequireEVM(t *testing.T, actual, ref []complex64, limitDB float64) {
	t.Helper()
	if err := evm.Check(actual, ref, limitDB); err != nil {
		t.Fatal(err)
	}
}

// MaxAbsDiff returns the largest element distance between two slices.
func MaxAbsDiff(a, b []complex64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		maxDiff = math.Max(maxDiff, cmplx.Abs(complex128(a[i]-b[i])))
	}
	return maxDiff, nil
}
