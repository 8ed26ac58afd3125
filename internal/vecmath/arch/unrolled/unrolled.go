// Package unrolled provides 4x-unrolled complex kernels in plain Go.
//
// The kernels use no vector instructions of their own. They register at
// the architecture baseline (SSE2 on amd64, NEON on arm64), the scalar
// floating-point units the compiler targets there, so they run on every
// such CPU and step aside when generic kernels are forced.
package unrolled

// ScaleInPlace multiplies every element by the real scalar k.
func ScaleInPlace(dst []complex64, k float32) {
	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		v0, v1, v2, v3 := dst[i], dst[i+1], dst[i+2], dst[i+3]
		dst[i] = complex(real(v0)*k, imag(v0)*k)
		dst[i+1] = complex(real(v1)*k, imag(v1)*k)
		dst[i+2] = complex(real(v2)*k, imag(v2)*k)
		dst[i+3] = complex(real(v3)*k, imag(v3)*k)
	}
	for ; i < n; i++ {
		v := dst[i]
		dst[i] = complex(real(v)*k, imag(v)*k)
	}
}

// ConjInPlace negates the imaginary part of every element.
func ConjInPlace(dst []complex64) {
	i := 0
	n := len(dst)
	for ; i+3 < n; i += 4 {
		v0, v1, v2, v3 := dst[i], dst[i+1], dst[i+2], dst[i+3]
		dst[i] = complex(real(v0), -imag(v0))
		dst[i+1] = complex(real(v1), -imag(v1))
		dst[i+2] = complex(real(v2), -imag(v2))
		dst[i+3] = complex(real(v3), -imag(v3))
	}
	for ; i < n; i++ {
		dst[i] = complex(real(dst[i]), -imag(dst[i]))
	}
}

// MulInPlace computes dst[i] *= src[i]. Panics if lengths differ.
func MulInPlace(dst, src []complex64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	i := 0
	n := len(dst)
	src = src[:n]
	for ; i+3 < n; i += 4 {
		dst[i] = mul(dst[i], src[i])
		dst[i+1] = mul(dst[i+1], src[i+1])
		dst[i+2] = mul(dst[i+2], src[i+2])
		dst[i+3] = mul(dst[i+3], src[i+3])
	}
	for ; i < n; i++ {
		dst[i] = mul(dst[i], src[i])
	}
}

// AddInPlace computes dst[i] += src[i]. Panics if lengths differ.
func AddInPlace(dst, src []complex64) {
	if len(dst) != len(src) {
		panic("vecmath: slice length mismatch")
	}

	i := 0
	n := len(dst)
	src = src[:n]
	for ; i+3 < n; i += 4 {
		dst[i] += src[i]
		dst[i+1] += src[i+1]
		dst[i+2] += src[i+2]
		dst[i+3] += src[i+3]
	}
	for ; i < n; i++ {
		dst[i] += src[i]
	}
}

func mul(a, b complex64) complex64 {
	ar, ai := real(a), imag(a)
	br, bi := real(b), imag(b)
	return complex(ar*br-ai*bi, ar*bi+ai*br)
}
