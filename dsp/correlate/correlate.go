package correlate

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-sdr/dsp/buffer"
	"github.com/cwbudde/algo-sdr/dsp/fft"
	"github.com/cwbudde/algo-sdr/dsp/vecops"
)

// Errors returned by correlators.
var (
	ErrEmptyPattern    = errors.New("correlate: empty pattern")
	ErrPatternTooLong  = errors.New("correlate: pattern longer than transform")
	ErrNilTransformer  = errors.New("correlate: nil transformer")
	ErrInvalidSettings = errors.New("correlate: invalid settings")
)

// Correlator matches one pattern against windows of a fixed length.
// It is safe for concurrent use when its Transformer is.
type Correlator struct {
	t          fft.Transformer
	patternLen int

	kernel []complex64
	ref    []complex64

	windows *buffer.Pool
	mags    sync.Pool
}

// New builds a correlator for pattern using transform t.
//
// The pattern is conjugated and zero-padded to t.Len() to form the
// reference kernel. The kernel is transformed once without scaling and its
// bins are reversed (k to N-k), which turns FFT(conj(p)) into conj(FFT(p)).
func New(pattern []complex64, t fft.Transformer) (*Correlator, error) {
	if t == nil {
		return nil, ErrNilTransformer
	}
	if len(pattern) == 0 {
		return nil, ErrEmptyPattern
	}
	n := t.Len()
	if len(pattern) > n {
		return nil, fmt.Errorf("%w: %d > %d", ErrPatternTooLong, len(pattern), n)
	}

	kernel := make([]complex64, n)
	vecops.Conj(vecops.CopyFrom(kernel, pattern))

	spec := make([]complex64, n)
	if err := t.Forward(spec, kernel, fft.ScaleNone); err != nil {
		return nil, fmt.Errorf("correlate: reference spectrum: %w", err)
	}

	ref := make([]complex64, n)
	ref[0] = spec[0]
	for k := 1; k < n; k++ {
		ref[k] = spec[n-k]
	}

	c := &Correlator{
		t:          t,
		patternLen: len(pattern),
		kernel:     kernel,
		ref:        ref,
		windows:    buffer.NewPool(),
	}
	c.mags.New = func() any {
		buf := make([]float64, n)
		return &buf
	}
	return c, nil
}

// Len returns the window length the correlator operates on.
func (c *Correlator) Len() int {
	return c.t.Len()
}

// PatternLen returns the length of the pattern.
func (c *Correlator) PatternLen() int {
	return c.patternLen
}

// Kernel returns a copy of the conjugated, zero-padded pattern.
func (c *Correlator) Kernel() []complex64 {
	return append([]complex64(nil), c.kernel...)
}

// Reference returns a copy of the cached reference spectrum.
func (c *Correlator) Reference() []complex64 {
	return append([]complex64(nil), c.ref...)
}

// Correlate replaces window with its circular cross-correlation against
// the pattern. len(window) must equal Len(); otherwise an error wrapping
// fft.ErrLengthMismatch is returned and window is left untouched.
func (c *Correlator) Correlate(window []complex64) error {
	return vecops.Chain(window).
		FFT(c.t, fft.ScaleNone).
		Mul(c.ref).
		IFFT(c.t, fft.ScaleNone).
		Err()
}
