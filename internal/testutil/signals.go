// Package testutil holds deterministic signal generators and tolerance
// assertions shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// Tone generates a complex exponential at freq cycles per sample.
func Tone(freq, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	for i := range out {
		s, c := math.Sincos(2 * math.Pi * freq * float64(i))
		out[i] = complex(float32(amplitude*c), float32(amplitude*s))
	}
	return out
}

// DeterministicNoise generates complex white noise with a fixed seed.
// Each component is uniform in [-amplitude, amplitude).
func DeterministicNoise(seed int64, amplitude float64, length int) []complex64 {
	out := make([]complex64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		re := (rng.Float64()*2 - 1) * amplitude
		im := (rng.Float64()*2 - 1) * amplitude
		out[i] = complex(float32(re), float32(im))
	}
	return out
}

// Impulse generates a unit impulse at pos.
func Impulse(length, pos int) []complex64 {
	out := make([]complex64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Ramp returns samples whose real part counts up from 0 and whose
// imaginary part counts down, which makes index mix-ups visible.
func Ramp(length int) []complex64 {
	out := make([]complex64, length)
	for i := range out {
		out[i] = complex(float32(i), -float32(i))
	}
	return out
}

// Tile repeats pattern until length samples are produced.
func Tile(pattern []complex64, length int) []complex64 {
	out := make([]complex64, length)
	if len(pattern) == 0 {
		return out
	}
	for i := range out {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}
