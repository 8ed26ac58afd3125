package sequence

// Expand unpacks seed into 32 elements of 0 or 1, least significant bit
// first.
func Expand(seed uint32) []uint8 {
	out := make([]uint8, 32)
	for i := range out {
		out[i] = uint8(seed >> i & 1)
	}
	return out
}

// Generator produces the element at position n from the elements already
// in seq (seq has length n).
type Generator func(n int, seq []uint8) uint8

// Generate extends a copy of seed with gen until it holds length elements.
// A seed that is already long enough is returned as a copy, untruncated.
func Generate(seed []uint8, gen Generator, length int) []uint8 {
	seq := make([]uint8, len(seed), max(len(seed), length))
	copy(seq, seed)
	for len(seq) < length {
		seq = append(seq, gen(len(seq), seq))
	}
	return seq
}

// BPSK maps bits to antipodal symbols: 0 to +1 and 1 to -1.
func BPSK(bits []uint8) []complex64 {
	out := make([]complex64, len(bits))
	for i, b := range bits {
		if b&1 == 0 {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}
