// Package vecops provides elementwise operations on complex64 sample buffers.
//
// Every mutating function works in place and returns the buffer it mutated,
// so steps compose without temporaries:
//
//	vecops.Mul(vecops.Conj(a), b)
//
// Binary operations never resize and never panic on mismatched lengths. They
// act on the overlapping prefix, min(len(dst), len(src)), and leave the rest
// of the longer buffer untouched.
//
// Transforms are delegated to an [fft.Transformer]. Their buffer must have
// exactly the transformer length; anything else is reported as
// [fft.ErrLengthMismatch] before the buffer is touched.
//
// For pipelines that include transforms, [Chain] offers a fluent form that
// carries the first error:
//
//	err := vecops.Chain(window).
//		FFT(plan, fft.ScaleNone).
//		Mul(reference).
//		IFFT(plan, fft.ScaleNone).
//		Err()
package vecops
