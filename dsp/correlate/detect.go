package correlate

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sdr/dsp/vecops"
)

// Detection describes one correlation lag.
//
// Magnitude and Mean are divided by the transform length, so a window
// that contains the pattern exactly scores the pattern's energy.
type Detection struct {
	Lag       int
	Magnitude float64
	Mean      float64
	Detected  bool
}

// FindPeak returns the index and value of the largest element of mags,
// or (-1, 0) when mags is empty. Ties resolve to the lowest index.
func FindPeak(mags []float64) (int, float64) {
	idx, peak := -1, 0.0
	for i, v := range mags {
		if idx < 0 || v > peak {
			idx, peak = i, v
		}
	}
	return idx, peak
}

// Detect correlates window in place and reports the strongest lag. The
// detection flag is set when its magnitude exceeds threshold. A negative
// or NaN threshold returns ErrInvalidSettings.
func (c *Correlator) Detect(window []complex64, threshold float64) (Detection, error) {
	if err := checkThreshold(threshold); err != nil {
		return Detection{}, err
	}
	var d Detection
	err := c.score(window, func(mags []float64, mean float64) {
		lag, peak := FindPeak(mags)
		d = Detection{Lag: lag, Magnitude: peak, Mean: mean, Detected: peak > threshold}
	})
	return d, err
}

// DetectAll correlates window in place and returns every lag whose
// magnitude exceeds threshold, in lag order.
func (c *Correlator) DetectAll(window []complex64, threshold float64) ([]Detection, error) {
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}
	var out []Detection
	err := c.score(window, func(mags []float64, mean float64) {
		out = collect(out, mags, mean, threshold, 0, len(mags))
	})
	return out, err
}

// score runs Correlate on window and hands the normalized magnitudes and
// their mean to fn. The magnitude slice is only valid during fn.
func (c *Correlator) score(window []complex64, fn func(mags []float64, mean float64)) error {
	if err := c.Correlate(window); err != nil {
		return err
	}

	bp := c.mags.Get().(*[]float64)
	defer c.mags.Put(bp)

	mags := vecops.Magnitudes(*bp, window)
	*bp = mags

	inv := 1 / float64(len(window))
	for i := range mags {
		mags[i] *= inv
	}
	fn(mags, vecops.Mean(mags))
	return nil
}

func collect(out []Detection, mags []float64, mean, threshold float64, offset, limit int) []Detection {
	for l := 0; l < limit && l < len(mags); l++ {
		if mags[l] > threshold {
			out = append(out, Detection{Lag: offset + l, Magnitude: mags[l], Mean: mean, Detected: true})
		}
	}
	return out
}

func checkThreshold(threshold float64) error {
	if math.IsNaN(threshold) || threshold < 0 {
		return fmt.Errorf("%w: threshold %v", ErrInvalidSettings, threshold)
	}
	return nil
}
