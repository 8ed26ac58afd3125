package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync/atomic"

	"github.com/cwbudde/algo-sdr/dsp/fft"
)

// DFT is a direct O(N^2) fft.Transformer. Tests use it to check code
// built on the transform contract without depending on an FFT engine.
// It is safe for concurrent use.
type DFT struct {
	n       int
	twiddle []complex128
	calls   atomic.Int64
}

var _ fft.Transformer = (*DFT)(nil)

// NewDFT returns a DFT of length n.
func NewDFT(n int) *DFT {
	tw := make([]complex128, n)
	for k := range tw {
		tw[k] = cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
	}
	return &DFT{n: n, twiddle: tw}
}

// Len returns the transform length.
func (d *DFT) Len() int { return d.n }

// Calls counts transforms that passed the length check.
func (d *DFT) Calls() int { return int(d.calls.Load()) }

func (d *DFT) Forward(dst, src []complex64, s fft.Scale) error { return d.run(dst, src, s, false) }
func (d *DFT) Inverse(dst, src []complex64, s fft.Scale) error { return d.run(dst, src, s, true) }

func (d *DFT) ForwardInPlace(buf []complex64, s fft.Scale) error {
	return d.run(buf, buf, s, false)
}

func (d *DFT) InverseInPlace(buf []complex64, s fft.Scale) error {
	return d.run(buf, buf, s, true)
}

func (d *DFT) run(dst, src []complex64, s fft.Scale, inverse bool) error {
	if len(dst) != d.n || len(src) != d.n {
		return fmt.Errorf("%w: got %d and %d, want %d", fft.ErrLengthMismatch, len(dst), len(src), d.n)
	}
	d.calls.Add(1)

	gain := complex(float64(s.Factor(d.n)), 0)
	out := make([]complex128, d.n)
	for k := range out {
		var acc complex128
		for j, v := range src {
			w := d.twiddle[(j*k)%d.n]
			if inverse {
				w = cmplx.Conj(w)
			}
			acc += complex128(v) * w
		}
		out[k] = acc * gain
	}
	for i, v := range out {
		dst[i] = complex64(v)
	}
	return nil
}
