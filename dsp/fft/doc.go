// Package fft provides fixed-length complex64 transform plans with explicit
// scaling modes.
//
// A [Plan] is created once for a length and reused for every buffer of that
// length. It exposes copying transforms ([Plan.Forward], [Plan.Inverse]) and
// in-place transforms ([Plan.ForwardInPlace], [Plan.InverseInPlace]), each
// taking a [Scale]:
//
//   - [ScaleNone]: no amplitude correction. A forward/inverse round trip
//     multiplies the signal by N.
//   - [ScaleSN]: symmetric normalization. Each pass is scaled by 1/sqrt(N),
//     so a forward/inverse round trip restores the original amplitude.
//
// Buffers whose length differs from the plan length are rejected with
// [ErrLengthMismatch]; nothing is truncated or padded.
//
// # Backends
//
// The transform itself is delegated to a third-party engine chosen with
// [WithBackend]:
//
//   - [BackendAlgoFFT]: github.com/MeKo-Christian/algo-fft, native complex64,
//     powers of two only
//   - [BackendGonum]: gonum.org/v1/gonum/dsp/fourier
//   - [BackendGoDSP]: github.com/mjibson/go-dsp/fft, any length
//   - [BackendAuto] (default): algo-fft for powers of two, go-dsp otherwise
//
// An algo-fft plan is checked against a direct DFT on a few bins when it
// is built. A plan that disagrees is refused, and [BackendAuto] falls back
// to go-dsp.
//
// Consumers that only need the transform contract should accept a
// [Transformer] so they can be tested against any implementation.
//
// # Concurrency
//
// A Plan never changes after [New] returns and may be shared by goroutines
// transforming distinct buffers.
package fft
