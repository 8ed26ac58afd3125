package fft

import (
	"fmt"
	"strings"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	godsp "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend identifies the engine that computes the transform.
type Backend int

const (
	// BackendAuto uses algo-fft for powers of two that pass verification
	// and go-dsp otherwise.
	BackendAuto Backend = iota
	// BackendAlgoFFT uses github.com/MeKo-Christian/algo-fft. Only
	// power-of-two lengths are served; its mixed-radix plans for lengths
	// such as 40 or 1000 compute wrong spectra.
	BackendAlgoFFT
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendAuto:    "auto",
	BackendAlgoFFT: "algofft",
	BackendGonum:   "gonum",
	BackendGoDSP:   "godsp",
}

// String returns the name accepted by ParseBackend.
func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend resolves a backend name such as "gonum".
func ParseBackend(name string) (Backend, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return BackendAuto, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
}

// engine computes an unnormalized forward transform and an inverse that
// is either unnormalized or divided by N, as inverseNormalized reports.
// dst and src never alias.
type engine interface {
	forward(dst, src []complex64) error
	inverse(dst, src []complex64) error
	inverseNormalized() bool
}

func newEngine(b Backend, n int) (engine, Backend, error) {
	switch b {
	case BackendAuto:
		if e, err := newAlgoFFTEngine(n); err == nil {
			return e, BackendAlgoFFT, nil
		}
		return newGoDSPEngine(n), BackendGoDSP, nil
	case BackendAlgoFFT:
		e, err := newAlgoFFTEngine(n)
		if err != nil {
			return nil, b, err
		}
		return e, b, nil
	case BackendGonum:
		return newGonumEngine(n), b, nil
	case BackendGoDSP:
		return newGoDSPEngine(n), b, nil
	default:
		return nil, b, fmt.Errorf("%w: %v", ErrUnknownBackend, b)
	}
}

// algofftEngine hands each call its own algo-fft plan, since plans carry
// scratch memory.
type algofftEngine struct {
	plans sync.Pool
}

func newAlgoFFTEngine(n int) (*algofftEngine, error) {
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: algofft serves powers of two, got %d", ErrInvalidLength, n)
	}

	plan, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, fmt.Errorf("%w: algofft rejected length %d: %w", ErrInvalidLength, n, err)
	}

	e := &algofftEngine{}
	e.plans.New = func() any {
		// n was accepted above.
		p, _ := algofft.NewPlan32(n)
		return p
	}
	e.plans.Put(plan)

	if err := verifyEngine(e, n); err != nil {
		return nil, fmt.Errorf("%w: algofft length %d: %w", ErrInvalidLength, n, err)
	}
	return e, nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func (e *algofftEngine) forward(dst, src []complex64) error {
	plan := e.plans.Get().(*algofft.Plan[complex64])
	defer e.plans.Put(plan)
	return plan.Forward(dst, src)
}

func (e *algofftEngine) inverse(dst, src []complex64) error {
	plan := e.plans.Get().(*algofft.Plan[complex64])
	defer e.plans.Put(plan)
	return plan.Inverse(dst, src)
}

func (e *algofftEngine) inverseNormalized() bool { return true }

// gonumEngine serializes calls: CmplxFFT keeps its work arrays inside the
// plan, and so does the engine's complex128 staging memory.
type gonumEngine struct {
	mu  sync.Mutex
	fft *fourier.CmplxFFT
	in  []complex128
	out []complex128
}

func newGonumEngine(n int) *gonumEngine {
	return &gonumEngine{
		fft: fourier.NewCmplxFFT(n),
		in:  make([]complex128, n),
		out: make([]complex128, n),
	}
}

func (e *gonumEngine) forward(dst, src []complex64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	widen(e.in, src)
	e.out = e.fft.Coefficients(e.out, e.in)
	narrow(dst, e.out)
	return nil
}

func (e *gonumEngine) inverse(dst, src []complex64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	widen(e.in, src)
	e.out = e.fft.Sequence(e.out, e.in)
	narrow(dst, e.out)
	return nil
}

func (e *gonumEngine) inverseNormalized() bool { return false }

// goDSPEngine is stateless; go-dsp caches its twiddle factors globally and
// returns freshly allocated results.
type goDSPEngine struct {
	n    int
	pool sync.Pool
}

func newGoDSPEngine(n int) *goDSPEngine {
	e := &goDSPEngine{n: n}
	e.pool.New = func() any {
		buf := make([]complex128, n)
		return &buf
	}
	return e
}

func (e *goDSPEngine) forward(dst, src []complex64) error {
	buf := e.pool.Get().(*[]complex128)
	defer e.pool.Put(buf)

	widen(*buf, src)
	narrow(dst, godsp.FFT(*buf))
	return nil
}

func (e *goDSPEngine) inverse(dst, src []complex64) error {
	buf := e.pool.Get().(*[]complex128)
	defer e.pool.Put(buf)

	widen(*buf, src)
	narrow(dst, godsp.IFFT(*buf))
	return nil
}

func (e *goDSPEngine) inverseNormalized() bool { return true }

func widen(dst []complex128, src []complex64) {
	for i, v := range src {
		dst[i] = complex128(v)
	}
}

func narrow(dst []complex64, src []complex128) {
	for i := range dst {
		dst[i] = complex64(src[i])
	}
}
