// Package correlate detects a known pattern in complex sample streams by
// frequency-domain cross-correlation (matched filtering).
//
// A Correlator caches the spectrum of its pattern for one transform
// length. Each window is then processed in place as
//
//	FFT(window) * conj(FFT(pattern)) -> IFFT
//
// using [vecops] on a caller-supplied [fft.Transformer], with no
// normalization on either pass. Sample l of the result is the circular
// cross-correlation at lag l, scaled by the transform length.
//
// [Correlator.Detect] and [Correlator.DetectAll] score a single window.
// [Correlator.Scan] walks arbitrarily long signals with overlap-save
// windows and reports absolute lags.
package correlate
