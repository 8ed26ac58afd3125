package resample

import (
	"fmt"

	"github.com/cwbudde/algo-sdr/dsp/interp"
)

// Method selects the interpolation kernel.
type Method int

const (
	// MethodLinear interpolates between neighbouring samples. Default.
	MethodLinear Method = iota
	// MethodHermite uses 4-point cubic Hermite interpolation, clamping
	// neighbours at the buffer edges.
	MethodHermite
)

type config struct {
	method Method
}

// Option configures Interpolate.
type Option func(*config)

// WithMethod selects the interpolation kernel. Unknown methods are ignored.
func WithMethod(m Method) Option {
	return func(cfg *config) {
		if m == MethodLinear || m == MethodHermite {
			cfg.method = m
		}
	}
}

func defaultConfig() config {
	return config{method: MethodLinear}
}

// Interpolate upsamples src into dst by factor, placing factor-1
// interpolated samples between each pair of consecutive source samples.
//
// Output sample j sits at source position j/factor. Filling stops when dst
// is full or the position passes the last source sample, so at most
// (len(src)-1)*factor+1 samples are produced. It returns the number of
// samples written.
func Interpolate(src, dst []complex64, factor int, opts ...Option) (int, error) {
	if factor <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFactor, factor)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if len(src) == 0 || len(dst) == 0 {
		return 0, nil
	}

	last := len(src) - 1
	step := 1 / float32(factor)

	n := 0
	for i := 0; i <= last && n < len(dst); i++ {
		dst[n] = src[i]
		n++
		if i == last {
			break
		}
		for k := 1; k < factor && n < len(dst); k++ {
			t := float32(k) * step
			switch cfg.method {
			case MethodHermite:
				dst[n] = interp.Hermite4(t, src[clamp(i-1, last)], src[i], src[i+1], src[clamp(i+2, last)])
			default:
				dst[n] = interp.Linear2(t, src[i], src[i+1])
			}
			n++
		}
	}
	return n, nil
}

func clamp(i, last int) int {
	if i < 0 {
		return 0
	}
	if i > last {
		return last
	}
	return i
}
