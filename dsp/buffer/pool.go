package buffer

import (
	"math/bits"
	"sync"
)

// maxClass bounds the capacity classes; larger buffers are not pooled.
const maxClass = 30

// Pool recycles Buffers grouped by power-of-two capacity, so a request
// never takes a buffer that must grow and a small request never pins a
// large backing array. It is safe for concurrent use.
type Pool struct {
	classes [maxClass + 1]sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	p := &Pool{}
	for c := range p.classes {
		size := 1 << c
		p.classes[c].New = func() any {
			return &Buffer{samples: make([]complex64, 0, size)}
		}
	}
	return p
}

// Get returns a zeroed Buffer of the requested length whose capacity is
// the next power of two. Return it with Put.
func (p *Pool) Get(length int) *Buffer {
	length = max(length, 0)
	c := classFor(length)
	if c > maxClass {
		return New(length)
	}

	b := p.classes[c].Get().(*Buffer)
	b.samples = b.samples[:length]
	clear(b.samples)
	return b
}

// Put hands b back to the pool. b must not be used afterwards. Buffers
// are filed under the largest class their capacity covers.
func (p *Pool) Put(b *Buffer) {
	if b == nil || cap(b.samples) == 0 {
		return
	}
	c := bits.Len(uint(cap(b.samples))) - 1
	if c > maxClass {
		return
	}
	b.samples = b.samples[:0]
	p.classes[c].Put(b)
}

// classFor returns the smallest c with 1<<c >= n.
func classFor(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
