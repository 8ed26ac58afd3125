package buffer

// Buffer owns a []complex64 whose backing array is kept across Resize
// calls.
type Buffer struct {
	samples []complex64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	return &Buffer{samples: make([]complex64, max(length, 0))}
}

// FromSlice wraps s without copying.
func FromSlice(s []complex64) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []complex64 {
	return b.samples
}

// Len returns the number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the capacity of the backing array.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Resize sets the length to n. Samples exposed beyond the previous length
// are zero.
func (b *Buffer) Resize(n int) {
	n = max(n, 0)
	old := len(b.samples)
	if n > cap(b.samples) {
		s := make([]complex64, n)
		copy(s, b.samples)
		b.samples = s
		return
	}
	b.samples = b.samples[:n]
	if n > old {
		clear(b.samples[old:])
	}
}

// Zero sets every sample to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}

// Load copies src into the buffer and zeroes whatever src does not cover.
// It returns the number of samples copied.
func (b *Buffer) Load(src []complex64) int {
	n := copy(b.samples, src)
	clear(b.samples[n:])
	return n
}

// Copy returns a deep copy.
func (b *Buffer) Copy() *Buffer {
	return &Buffer{samples: append([]complex64(nil), b.samples...)}
}
