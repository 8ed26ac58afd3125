// Package resample converts the sample rate of complex baseband buffers.
//
// Both directions write into caller-owned destinations and report how many
// samples were produced:
//   - Interpolate(src, dst, factor, opts...) inserts factor-1 samples
//     between each source pair (linear by default, WithMethod(MethodHermite)
//     for cubic)
//   - Downsample(src, dst) keeps one sample in every Stride(len(src), len(dst))
//   - DownsampleStepBy(src, dst) produces identical output with a strided walk
//   - DownsampleBy(src, dst, stride) uses an explicit stride
//
// No anti-alias filtering is applied. Band-limit the signal before
// decimating if aliasing matters.
package resample
