package vecops

import "github.com/cwbudde/algo-sdr/dsp/fft"

// Ops applies a sequence of operations to one buffer. The first failing
// step records its error and every later step becomes a no-op; steps that
// ran before the failure stay applied.
type Ops struct {
	buf []complex64
	err error
}

// Chain starts a pipeline on buf.
func Chain(buf []complex64) *Ops {
	return &Ops{buf: buf}
}

// Scale multiplies every sample by k.
func (o *Ops) Scale(k float32) *Ops {
	if o.err == nil {
		Scale(o.buf, k)
	}
	return o
}

// Conj conjugates every sample.
func (o *Ops) Conj() *Ops {
	if o.err == nil {
		Conj(o.buf)
	}
	return o
}

// CopyFrom copies the overlapping prefix of src into the buffer.
func (o *Ops) CopyFrom(src []complex64) *Ops {
	if o.err == nil {
		CopyFrom(o.buf, src)
	}
	return o
}

// Mul multiplies the buffer by src over the overlapping prefix.
func (o *Ops) Mul(src []complex64) *Ops {
	if o.err == nil {
		Mul(o.buf, src)
	}
	return o
}

// Add adds src to the buffer over the overlapping prefix.
func (o *Ops) Add(src []complex64) *Ops {
	if o.err == nil {
		Add(o.buf, src)
	}
	return o
}

// FFT forward-transforms the buffer in place.
func (o *Ops) FFT(t fft.Transformer, s fft.Scale) *Ops {
	if o.err == nil {
		_, o.err = FFT(o.buf, t, s)
	}
	return o
}

// IFFT inverse-transforms the buffer in place.
func (o *Ops) IFFT(t fft.Transformer, s fft.Scale) *Ops {
	if o.err == nil {
		_, o.err = IFFT(o.buf, t, s)
	}
	return o
}

// Samples returns the buffer the pipeline operates on.
func (o *Ops) Samples() []complex64 {
	return o.buf
}

// Err returns the first error encountered, if any.
func (o *Ops) Err() error {
	return o.err
}

// Result returns the buffer and the first error.
func (o *Ops) Result() ([]complex64, error) {
	return o.buf, o.err
}
