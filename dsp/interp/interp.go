package interp

// Linear2 interpolates between x0 (t=0) and x1 (t=1).
func Linear2(t float32, x0, x1 complex64) complex64 {
	return complex(
		real(x0)+t*(real(x1)-real(x0)),
		imag(x0)+t*(imag(x1)-imag(x0)),
	)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t float32, xm1, x0, x1, x2 complex64) complex64 {
	return complex(
		hermite(t, real(xm1), real(x0), real(x1), real(x2)),
		hermite(t, imag(xm1), imag(x0), imag(x1), imag(x2)),
	)
}

func hermite(t, xm1, x0, x1, x2 float32) float32 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}
