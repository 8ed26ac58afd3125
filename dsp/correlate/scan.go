package correlate

// Hop returns how many lags each overlap-save window of Scan contributes.
func (c *Correlator) Hop() int {
	return c.Len() - c.patternLen + 1
}

// Scan correlates the whole of signal against the pattern and returns every
// lag whose normalized magnitude exceeds threshold. Lags are offsets into
// signal and only positions where the pattern fits entirely are reported,
// so a signal shorter than the pattern yields no detections.
//
// The signal is cut into windows of Len() samples advancing by Hop(); the
// trailing samples of each window only feed the wrap-free lags. Window
// buffers come from an internal pool and signal is never modified. Mean
// carries the mean magnitude of the window the lag was found in.
func (c *Correlator) Scan(signal []complex64, threshold float64) ([]Detection, error) {
	if err := checkThreshold(threshold); err != nil {
		return nil, err
	}
	if len(signal) < c.patternLen {
		return nil, nil
	}

	lastLag := len(signal) - c.patternLen
	hop := c.Hop()

	win := c.windows.Get(c.Len())
	defer c.windows.Put(win)

	var out []Detection
	for start := 0; start <= lastLag; start += hop {
		win.Load(signal[start:])

		limit := min(hop, lastLag-start+1)
		err := c.score(win.Samples(), func(mags []float64, mean float64) {
			out = collect(out, mags, mean, threshold, start, limit)
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
