package fft

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cwbudde/algo-sdr/internal/vecmath"
)

// Errors returned by plans.
var (
	ErrInvalidLength  = errors.New("fft: invalid transform length")
	ErrLengthMismatch = errors.New("fft: buffer length does not match plan length")
	ErrInvalidScale   = errors.New("fft: invalid scale mode")
	ErrUnknownBackend = errors.New("fft: unknown backend")
)

// Transformer is the transform contract consumed by vecops and correlate.
//
// Implementations are bound to one length. Every method must reject
// buffers of any other length without modifying them.
type Transformer interface {
	Len() int
	Forward(dst, src []complex64, s Scale) error
	Inverse(dst, src []complex64, s Scale) error
	ForwardInPlace(buf []complex64, s Scale) error
	InverseInPlace(buf []complex64, s Scale) error
}

type config struct {
	backend Backend
}

// Option configures a Plan.
type Option func(*config)

// WithBackend selects the transform engine.
func WithBackend(b Backend) Option {
	return func(cfg *config) {
		cfg.backend = b
	}
}

// Plan is a precomputed transform for one fixed length.
type Plan struct {
	n       int
	backend Backend
	eng     engine
	scratch sync.Pool
}

var _ Transformer = (*Plan)(nil)

// New creates a plan for length n.
func New(n int, opts ...Option) (*Plan, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	cfg := config{backend: BackendAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	eng, backend, err := newEngine(cfg.backend, n)
	if err != nil {
		return nil, err
	}

	p := &Plan{n: n, backend: backend, eng: eng}
	p.scratch.New = func() any {
		buf := make([]complex64, n)
		return &buf
	}

	return p, nil
}

// Len returns the transform length.
func (p *Plan) Len() int {
	return p.n
}

// Backend returns the engine the plan resolved to.
func (p *Plan) Backend() Backend {
	return p.backend
}

// Forward writes the forward transform of src into dst.
func (p *Plan) Forward(dst, src []complex64, s Scale) error {
	return p.transform(dst, src, s, false)
}

// Inverse writes the inverse transform of src into dst.
func (p *Plan) Inverse(dst, src []complex64, s Scale) error {
	return p.transform(dst, src, s, true)
}

// ForwardInPlace replaces buf with its forward transform.
func (p *Plan) ForwardInPlace(buf []complex64, s Scale) error {
	return p.transform(buf, buf, s, false)
}

// InverseInPlace replaces buf with its inverse transform.
func (p *Plan) InverseInPlace(buf []complex64, s Scale) error {
	return p.transform(buf, buf, s, true)
}

// Transform returns the forward transform of src in a new slice.
func (p *Plan) Transform(src []complex64, s Scale) ([]complex64, error) {
	if err := p.check(src, s); err != nil {
		return nil, err
	}

	dst := make([]complex64, p.n)
	if err := p.transform(dst, src, s, false); err != nil {
		return nil, err
	}
	return dst, nil
}

func (p *Plan) check(buf []complex64, s Scale) error {
	if !s.valid() {
		return fmt.Errorf("%w: %v", ErrInvalidScale, s)
	}
	if len(buf) != p.n {
		return fmt.Errorf("%w: got %d, plan %d", ErrLengthMismatch, len(buf), p.n)
	}
	return nil
}

func (p *Plan) transform(dst, src []complex64, s Scale, inverse bool) error {
	if err := p.check(src, s); err != nil {
		return err
	}
	if err := p.check(dst, s); err != nil {
		return err
	}

	in := src
	if &dst[0] == &src[0] {
		tmp := p.scratch.Get().(*[]complex64)
		defer p.scratch.Put(tmp)
		copy(*tmp, src)
		in = *tmp
	}

	gain := s.Factor(p.n)
	var err error
	if inverse {
		err = p.eng.inverse(dst, in)
		if p.eng.inverseNormalized() {
			gain *= float32(p.n)
		}
	} else {
		err = p.eng.forward(dst, in)
	}
	if err != nil {
		return fmt.Errorf("fft: %v transform failed: %w", p.backend, err)
	}

	if gain != 1 {
		vecmath.ScaleInPlace(dst, gain)
	}
	return nil
}
