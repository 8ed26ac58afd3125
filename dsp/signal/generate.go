// Package signal generates deterministic complex baseband test signals.
package signal

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSampleRate sets the rate used to interpret frequencies. The default
// of 1 makes frequencies cycles per sample.
func WithSampleRate(hz float64) Option {
	return func(g *Generator) {
		g.sampleRate = hz
	}
}

// WithSeed sets the seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{sampleRate: 1, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// SampleRate returns the configured sample rate.
func (g *Generator) SampleRate() float64 { return g.sampleRate }

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Tone generates amplitude*exp(j*2*pi*freq*n/sampleRate). Negative
// frequencies rotate clockwise.
func (g *Generator) Tone(freq, amplitude float64, samples int) ([]complex64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", samples)
	}
	if g.sampleRate <= 0 {
		return nil, fmt.Errorf("tone sample rate must be > 0: %f", g.sampleRate)
	}
	out := make([]complex64, samples)
	step := 2 * math.Pi * freq / g.sampleRate
	for i := range out {
		s, c := math.Sincos(step * float64(i))
		out[i] = complex(float32(amplitude*c), float32(amplitude*s))
	}
	return out, nil
}

// WhiteNoise generates noise whose real and imaginary parts are uniform in
// [-amplitude, amplitude). Every call with the same seed returns the same
// samples.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]complex64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]complex64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(float32(re), float32(im))
	}
	return out, nil
}

// GaussianNoise generates circular Gaussian noise with standard deviation
// sigma per component.
func (g *Generator) GaussianNoise(sigma float64, samples int) ([]complex64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if sigma < 0 {
		return nil, fmt.Errorf("noise sigma must be >= 0: %f", sigma)
	}
	out := make([]complex64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = complex(float32(rng.NormFloat64()*sigma), float32(rng.NormFloat64()*sigma))
	}
	return out, nil
}

// Impulse generates a single sample of the given value at pos.
func (g *Generator) Impulse(value complex64, samples, pos int) ([]complex64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if pos < 0 || pos >= samples {
		return nil, fmt.Errorf("impulse position out of range: %d", pos)
	}
	out := make([]complex64, samples)
	out[pos] = value
	return out, nil
}

// Normalize scales data so its largest magnitude equals targetPeak and
// returns a new slice.
func Normalize(data []complex64, targetPeak float64) ([]complex64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	peak := 0.0
	for _, v := range data {
		peak = math.Max(peak, cmplx.Abs(complex128(v)))
	}

	out := make([]complex64, len(data))
	if peak == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := float32(targetPeak / peak)
	for i, v := range data {
		out[i] = complex(real(v)*scale, imag(v)*scale)
	}
	return out, nil
}
