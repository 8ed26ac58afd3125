package vecops

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// scratchBuf holds pooled memory for splitting samples into real and
// imaginary planes.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func split(src []complex64) (re, im []float64, buf *scratchBuf) {
	n := len(src)
	buf = scratchPool.Get().(*scratchBuf)
	if cap(buf.data) < 2*n {
		buf.data = make([]float64, 2*n)
	}
	re, im = buf.data[:n], buf.data[n:2*n]
	for i, v := range src {
		re[i] = float64(real(v))
		im[i] = float64(imag(v))
	}
	return re, im, buf
}

func ensureLen(buf []float64, n int) []float64 {
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// Magnitudes writes |src[i]| into dst, reusing dst's capacity when it is
// large enough, and returns the result.
func Magnitudes(dst []float64, src []complex64) []float64 {
	dst = ensureLen(dst, len(src))
	if len(src) == 0 {
		return dst
	}

	re, im, buf := split(src)
	defer scratchPool.Put(buf)

	vecmath.Magnitude(dst, re, im)
	return dst
}

// Powers writes |src[i]|^2 into dst, reusing dst's capacity when it is
// large enough, and returns the result.
func Powers(dst []float64, src []complex64) []float64 {
	dst = ensureLen(dst, len(src))
	if len(src) == 0 {
		return dst
	}

	re, im, buf := split(src)
	defer scratchPool.Put(buf)

	vecmath.Power(dst, re, im)
	return dst
}

// Mean returns the arithmetic mean of x, or 0 for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Sum(x) / float64(len(x))
}
