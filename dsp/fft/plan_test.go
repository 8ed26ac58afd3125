package fft

import (
	"errors"
	"math"
	"math/cmplx"
	"math/rand"
	"strconv"
	"sync"
	"testing"
)

var backends = []Backend{BackendAlgoFFT, BackendGonum, BackendGoDSP}

func randomBuffer(seed int64, n int) []complex64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
	}
	return out
}

func naiveDFT(x []complex64, inverse bool) []complex128 {
	n := len(x)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	out := make([]complex128, n)
	for k := 0; k < n; k++ {
		var acc complex128
		for j := 0; j < n; j++ {
			angle := sign * 2 * math.Pi * float64(j*k) / float64(n)
			acc += complex128(x[j]) * cmplx.Exp(complex(0, angle))
		}
		out[k] = acc
	}
	return out
}

func maxErr(got []complex64, want []complex128) float64 {
	worst := 0.0
	for i := range got {
		if d := cmplx.Abs(complex128(got[i]) - want[i]); d > worst {
			worst = d
		}
	}
	return worst
}

func TestNewRejectsInvalidLength(t *testing.T) {
	for _, n := range []int{0, -4} {
		if _, err := New(n); !errors.Is(err, ErrInvalidLength) {
			t.Fatalf("New(%d) error = %v, want ErrInvalidLength", n, err)
		}
	}
}

func TestNewUnknownBackend(t *testing.T) {
	if _, err := New(8, WithBackend(Backend(42))); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("New() error = %v, want ErrUnknownBackend", err)
	}
}

func TestForwardMatchesDFT(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			const n = 64
			p, err := New(n, WithBackend(b))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			src := randomBuffer(1, n)
			dst := make([]complex64, n)
			if err := p.Forward(dst, src, ScaleNone); err != nil {
				t.Fatalf("Forward() error = %v", err)
			}
			if e := maxErr(dst, naiveDFT(src, false)); e > 1e-3 {
				t.Fatalf("max error vs DFT = %g", e)
			}
		})
	}
}

func TestInverseNoneIsUnnormalized(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			const n = 32
			p, err := New(n, WithBackend(b))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			src := randomBuffer(2, n)
			dst := make([]complex64, n)
			if err := p.Inverse(dst, src, ScaleNone); err != nil {
				t.Fatalf("Inverse() error = %v", err)
			}
			if e := maxErr(dst, naiveDFT(src, true)); e > 1e-3 {
				t.Fatalf("max error vs inverse DFT = %g", e)
			}
		})
	}
}

func TestRoundTripSN(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			const n = 256
			p, err := New(n, WithBackend(b))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			orig := randomBuffer(3, n)
			buf := append([]complex64(nil), orig...)
			if err := p.ForwardInPlace(buf, ScaleSN); err != nil {
				t.Fatalf("ForwardInPlace() error = %v", err)
			}
			if err := p.InverseInPlace(buf, ScaleSN); err != nil {
				t.Fatalf("InverseInPlace() error = %v", err)
			}
			for i := range buf {
				if d := cmplx.Abs(complex128(buf[i] - orig[i])); d > 1e-5 {
					t.Fatalf("round trip [%d] = %v, want %v", i, buf[i], orig[i])
				}
			}
		})
	}
}

func TestSNPreservesEnergy(t *testing.T) {
	const n = 128
	p, err := New(n)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := randomBuffer(4, n)
	spec, err := p.Transform(src, ScaleSN)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	var eIn, eOut float64
	for i := range src {
		eIn += real(complex128(src[i]) * cmplx.Conj(complex128(src[i])))
		eOut += real(complex128(spec[i]) * cmplx.Conj(complex128(spec[i])))
	}
	if math.Abs(eIn-eOut) > 1e-3*eIn {
		t.Fatalf("energy in %g, out %g", eIn, eOut)
	}
}

func TestImpulseForward(t *testing.T) {
	p, err := New(16)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	buf := make([]complex64, 16)
	buf[0] = 1
	if err := p.ForwardInPlace(buf, ScaleNone); err != nil {
		t.Fatalf("ForwardInPlace() error = %v", err)
	}
	for i, v := range buf {
		if cmplx.Abs(complex128(v-1)) > 1e-6 {
			t.Fatalf("bin %d = %v, want 1", i, v)
		}
	}
}

func TestLengthMismatchLeavesBuffersUntouched(t *testing.T) {
	p, err := New(8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	short := randomBuffer(5, 7)
	orig := append([]complex64(nil), short...)
	if err := p.ForwardInPlace(short, ScaleNone); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("ForwardInPlace() error = %v, want ErrLengthMismatch", err)
	}
	for i := range short {
		if short[i] != orig[i] {
			t.Fatalf("buffer modified at %d", i)
		}
	}

	dst := make([]complex64, 9)
	if err := p.Forward(dst, make([]complex64, 8), ScaleNone); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Forward() error = %v, want ErrLengthMismatch", err)
	}
	if _, err := p.Transform(make([]complex64, 4), ScaleSN); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("Transform() error = %v, want ErrLengthMismatch", err)
	}
}

func TestInvalidScale(t *testing.T) {
	p, err := New(8)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := p.ForwardInPlace(make([]complex64, 8), Scale(7)); !errors.Is(err, ErrInvalidScale) {
		t.Fatalf("error = %v, want ErrInvalidScale", err)
	}
}

func TestAutoHandlesOddLength(t *testing.T) {
	const n = 12
	p, err := New(n)
	if err != nil {
		t.Fatalf("New(%d) error = %v", n, err)
	}
	if p.Backend() == BackendAuto {
		t.Fatal("Backend() should report the resolved engine")
	}
	src := randomBuffer(6, n)
	dst := make([]complex64, n)
	if err := p.Forward(dst, src, ScaleNone); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}
	if e := maxErr(dst, naiveDFT(src, false)); e > 1e-3 {
		t.Fatalf("max error vs DFT = %g", e)
	}
}

func TestConcurrentUse(t *testing.T) {
	for _, b := range backends {
		t.Run(b.String(), func(t *testing.T) {
			const n = 64
			p, err := New(n, WithBackend(b))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			var wg sync.WaitGroup
			errs := make(chan error, 8)
			for g := 0; g < 8; g++ {
				wg.Add(1)
				go func(seed int64) {
					defer wg.Done()
					orig := randomBuffer(seed, n)
					buf := append([]complex64(nil), orig...)
					for i := 0; i < 20; i++ {
						if err := p.ForwardInPlace(buf, ScaleSN); err != nil {
							errs <- err
							return
						}
						if err := p.InverseInPlace(buf, ScaleSN); err != nil {
							errs <- err
							return
						}
					}
					for i := range buf {
						if cmplx.Abs(complex128(buf[i]-orig[i])) > 1e-4 {
							errs <- errors.New("round trip drifted")
							return
						}
					}
				}(int64(g))
			}
			wg.Wait()
			close(errs)
			for err := range errs {
				t.Fatal(err)
			}
		})
	}
}

func TestParseBackend(t *testing.T) {
	for b, name := range backendNames {
		got, err := ParseBackend(" " + name + " ")
		if err != nil || got != b {
			t.Fatalf("ParseBackend(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseBackend("fftw"); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("ParseBackend(fftw) error = %v", err)
	}
}

func TestScaleString(t *testing.T) {
	if ScaleNone.String() != "None" || ScaleSN.String() != "SN" || Scale(5).String() != "Scale(5)" {
		t.Fatalf("unexpected names: %s %s %s", ScaleNone, ScaleSN, Scale(5))
	}
	if f := ScaleSN.Factor(16); f != 0.25 {
		t.Fatalf("ScaleSN.Factor(16) = %v, want 0.25", f)
	}
	if f := ScaleNone.Factor(16); f != 1 {
		t.Fatalf("ScaleNone.Factor(16) = %v, want 1", f)
	}
}

func benchmarkInPlace(b *testing.B, backend Backend, n int) {
	p, err := New(n, WithBackend(backend))
	if err != nil {
		b.Fatalf("New() error = %v", err)
	}
	buf := randomBuffer(7, n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := p.ForwardInPlace(buf, ScaleSN); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkForwardInPlace(b *testing.B) {
	for _, backend := range backends {
		for _, n := range []int{512, 1024, 2048} {
			b.Run(backend.String()+"/"+strconv.Itoa(n), func(b *testing.B) {
				benchmarkInPlace(b, backend, n)
			})
		}
	}
}
