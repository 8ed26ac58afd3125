package correlate

import (
	"errors"
	"math"
	"math/cmplx"
	"sync"
	"testing"

	"github.com/cwbudde/algo-sdr/dsp/fft"
	"github.com/cwbudde/algo-sdr/internal/testutil"
)

var tilePattern = []complex64{-1 + 1i, 0, 1 - 1i, 1 - 1i}

func TestNewErrors(t *testing.T) {
	if _, err := New(nil, testutil.NewDFT(8)); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("empty pattern: err = %v", err)
	}
	if _, err := New(make([]complex64, 9), testutil.NewDFT(8)); !errors.Is(err, ErrPatternTooLong) {
		t.Fatalf("long pattern: err = %v", err)
	}
	if _, err := New(tilePattern, nil); !errors.Is(err, ErrNilTransformer) {
		t.Fatalf("nil transformer: err = %v", err)
	}
}

func TestKernelIsConjugatedAndPadded(t *testing.T) {
	c, err := New(tilePattern, testutil.NewDFT(8))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	want := []complex64{-1 - 1i, 0, 1 + 1i, 1 + 1i, 0, 0, 0, 0}
	testutil.RequireComplexNearlyEqual(t, c.Kernel(), want, 0)
	if c.Len() != 8 || c.PatternLen() != 4 || c.Hop() != 5 {
		t.Fatalf("Len/PatternLen/Hop = %d/%d/%d", c.Len(), c.PatternLen(), c.Hop())
	}
}

func TestReferenceIsConjugatedPatternSpectrum(t *testing.T) {
	const n = 16
	pattern := testutil.DeterministicNoise(5, 1, 6)
	d := testutil.NewDFT(n)

	c, err := New(pattern, d)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	padded := make([]complex64, n)
	copy(padded, pattern)
	spec := make([]complex64, n)
	if err := d.Forward(spec, padded, fft.ScaleNone); err != nil {
		t.Fatal(err)
	}
	for i := range spec {
		spec[i] = complex64(cmplx.Conj(complex128(spec[i])))
	}
	testutil.RequireComplexNearlyEqual(t, c.Reference(), spec, 1e-4)
}

func TestCorrelateMatchesCircularDefinition(t *testing.T) {
	const n = 32
	pattern := testutil.DeterministicNoise(1, 1, 9)
	window := testutil.DeterministicNoise(2, 1, n)

	c, err := New(pattern, testutil.NewDFT(n))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	want := make([]complex64, n)
	for l := range want {
		var acc complex128
		for j, p := range pattern {
			acc += complex128(window[(l+j)%n]) * cmplx.Conj(complex128(p))
		}
		want[l] = complex64(acc * n)
	}

	got := append([]complex64(nil), window...)
	if err := c.Correlate(got); err != nil {
		t.Fatalf("Correlate() error = %v", err)
	}
	testutil.RequireComplexNearlyEqual(t, got, want, 1e-2)
}

func TestCorrelateLengthMismatchLeavesWindow(t *testing.T) {
	c, err := New(tilePattern, testutil.NewDFT(8))
	if err != nil {
		t.Fatal(err)
	}
	window := testutil.Ramp(6)
	orig := append([]complex64(nil), window...)

	if err := c.Correlate(window); !errors.Is(err, fft.ErrLengthMismatch) {
		t.Fatalf("Correlate() error = %v, want ErrLengthMismatch", err)
	}
	testutil.RequireComplexNearlyEqual(t, window, orig, 0)

	if _, err := c.Detect(window, 1); !errors.Is(err, fft.ErrLengthMismatch) {
		t.Fatalf("Detect() error = %v, want ErrLengthMismatch", err)
	}
}

func TestDetectTiledPattern(t *testing.T) {
	const n = 512
	c, err := New(tilePattern, testutil.NewDFT(n))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	d, err := c.Detect(testutil.Tile(tilePattern, n), 3)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if d.Lag%4 != 0 {
		t.Fatalf("peak lag = %d, want a multiple of 4", d.Lag)
	}
	if math.Abs(d.Magnitude-6) > 1e-3 {
		t.Fatalf("peak magnitude = %v, want 6 (pattern energy)", d.Magnitude)
	}
	if math.Abs(d.Mean-2.5) > 1e-3 {
		t.Fatalf("mean magnitude = %v, want 2.5", d.Mean)
	}
	if !d.Detected || d.Magnitude < 2*d.Mean {
		t.Fatalf("peak %v not clearly above mean %v", d.Magnitude, d.Mean)
	}
}

func TestDetectAllTiledPattern(t *testing.T) {
	const n = 64
	c, err := New(tilePattern, testutil.NewDFT(n))
	if err != nil {
		t.Fatal(err)
	}

	ds, err := c.DetectAll(testutil.Tile(tilePattern, n), 5)
	if err != nil {
		t.Fatalf("DetectAll() error = %v", err)
	}
	if len(ds) != n/4 {
		t.Fatalf("len = %d, want %d", len(ds), n/4)
	}
	for i, d := range ds {
		if d.Lag != 4*i || !d.Detected {
			t.Fatalf("detection %d = %+v", i, d)
		}
	}
}

func TestDetectBelowThreshold(t *testing.T) {
	c, err := New(tilePattern, testutil.NewDFT(16))
	if err != nil {
		t.Fatal(err)
	}
	d, err := c.Detect(make([]complex64, 16), 0.5)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if d.Detected {
		t.Fatalf("silence detected: %+v", d)
	}
}

func TestInvalidThreshold(t *testing.T) {
	c, err := New(tilePattern, testutil.NewDFT(8))
	if err != nil {
		t.Fatal(err)
	}
	window := make([]complex64, 8)
	for _, th := range []float64{-1, math.NaN()} {
		if _, err := c.Detect(window, th); !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("Detect(%v) error = %v", th, err)
		}
		if _, err := c.DetectAll(window, th); !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("DetectAll(%v) error = %v", th, err)
		}
		if _, err := c.Scan(window, th); !errors.Is(err, ErrInvalidSettings) {
			t.Fatalf("Scan(%v) error = %v", th, err)
		}
	}
}

func TestFindPeak(t *testing.T) {
	tests := []struct {
		in   []float64
		idx  int
		peak float64
	}{
		{in: nil, idx: -1, peak: 0},
		{in: []float64{1, 3, 3, 2}, idx: 1, peak: 3},
		{in: []float64{-2, -1}, idx: 1, peak: -1},
	}
	for _, tc := range tests {
		idx, peak := FindPeak(tc.in)
		if idx != tc.idx || peak != tc.peak {
			t.Fatalf("FindPeak(%v) = %d, %v; want %d, %v", tc.in, idx, peak, tc.idx, tc.peak)
		}
	}
}

func TestDetectWithPlan(t *testing.T) {
	const n = 256
	plan, err := fft.New(n)
	if err != nil {
		t.Fatalf("fft.New() error = %v", err)
	}
	pattern := testutil.DeterministicNoise(7, 1, 31)
	c, err := New(pattern, plan)
	if err != nil {
		t.Fatal(err)
	}

	window := testutil.DeterministicNoise(8, 0.05, n)
	for j, p := range pattern {
		window[57+j] += p
	}

	d, err := c.Detect(window, 1)
	if err != nil {
		t.Fatalf("Detect() error = %v", err)
	}
	if !d.Detected || d.Lag != 57 {
		t.Fatalf("Detect() = %+v, want lag 57", d)
	}
}

func TestConcurrentDetect(t *testing.T) {
	const n = 128
	plan, err := fft.New(n)
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(tilePattern, plan)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(offset int) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				window := make([]complex64, n)
				copy(window[offset:], tilePattern)
				d, err := c.Detect(window, 1)
				if err != nil {
					t.Errorf("Detect() error = %v", err)
					return
				}
				if d.Lag != offset {
					t.Errorf("lag = %d, want %d", d.Lag, offset)
					return
				}
			}
		}(g * 10)
	}
	wg.Wait()
}

func BenchmarkCorrelate(b *testing.B) {
	plan, err := fft.New(1024)
	if err != nil {
		b.Fatal(err)
	}
	c, err := New(testutil.DeterministicNoise(1, 1, 63), plan)
	if err != nil {
		b.Fatal(err)
	}
	window := testutil.DeterministicNoise(2, 1, 1024)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Correlate(window)
	}
}
