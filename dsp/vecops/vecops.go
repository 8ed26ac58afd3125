package vecops

import (
	"fmt"

	"github.com/cwbudde/algo-sdr/dsp/fft"
	"github.com/cwbudde/algo-sdr/internal/vecmath"
)

// Scale multiplies every sample by the real factor k.
func Scale(buf []complex64, k float32) []complex64 {
	vecmath.ScaleInPlace(buf, k)
	return buf
}

// Conj negates the imaginary part of every sample.
func Conj(buf []complex64) []complex64 {
	vecmath.ConjInPlace(buf)
	return buf
}

// CopyFrom copies the overlapping prefix of src into dst.
func CopyFrom(dst, src []complex64) []complex64 {
	copy(dst, src)
	return dst
}

// Mul multiplies dst by src elementwise over the overlapping prefix.
func Mul(dst, src []complex64) []complex64 {
	n := min(len(dst), len(src))
	vecmath.MulInPlace(dst[:n], src[:n])
	return dst
}

// Add adds src to dst elementwise over the overlapping prefix.
func Add(dst, src []complex64) []complex64 {
	n := min(len(dst), len(src))
	vecmath.AddInPlace(dst[:n], src[:n])
	return dst
}

// FFT replaces buf with its forward transform.
func FFT(buf []complex64, t fft.Transformer, s fft.Scale) ([]complex64, error) {
	if err := checkLen(buf, t); err != nil {
		return buf, err
	}
	return buf, t.ForwardInPlace(buf, s)
}

// IFFT replaces buf with its inverse transform.
func IFFT(buf []complex64, t fft.Transformer, s fft.Scale) ([]complex64, error) {
	if err := checkLen(buf, t); err != nil {
		return buf, err
	}
	return buf, t.InverseInPlace(buf, s)
}

func checkLen(buf []complex64, t fft.Transformer) error {
	if len(buf) != t.Len() {
		return fmt.Errorf("%w: buffer %d, transform %d", fft.ErrLengthMismatch, len(buf), t.Len())
	}
	return nil
}
