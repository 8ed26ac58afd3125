package resample

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFactor indicates a non-positive interpolation factor.
	ErrInvalidFactor = errors.New("resample: invalid interpolation factor")
	// ErrInvalidStride indicates a non-positive decimation stride.
	ErrInvalidStride = errors.New("resample: invalid stride")
)

// Stride returns the decimation stride ceil(srcLen/dstLen), at least 1.
// It returns 0 when dstLen is not positive.
func Stride(srcLen, dstLen int) int {
	if dstLen <= 0 {
		return 0
	}
	s := (srcLen + dstLen - 1) / dstLen
	if s < 1 {
		return 1
	}
	return s
}

// Downsample fills dst with every Stride(len(src), len(dst))-th sample of
// src, starting at src[0]. It stops when dst is full or src is exhausted
// and returns the number of samples written.
func Downsample(src, dst []complex64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	return downsampleIndexed(src, dst, Stride(len(src), len(dst))), nil
}

// DownsampleStepBy returns exactly what Downsample returns, walking src
// with a stepped cursor instead of computing each source index.
func DownsampleStepBy(src, dst []complex64) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	return downsampleStepped(src, dst, Stride(len(src), len(dst))), nil
}

// DownsampleBy keeps every stride-th sample of src, filling dst left to
// right until it is full or src runs out.
func DownsampleBy(src, dst []complex64, stride int) (int, error) {
	if stride <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStride, stride)
	}
	return downsampleIndexed(src, dst, stride), nil
}

func downsampleIndexed(src, dst []complex64, stride int) int {
	for k := range dst {
		i := k * stride
		if i >= len(src) {
			return k
		}
		dst[k] = src[i]
	}
	return len(dst)
}

func downsampleStepped(src, dst []complex64, stride int) int {
	n := 0
	for i := 0; i < len(src) && n < len(dst); i += stride {
		dst[n] = src[i]
		n++
	}
	return n
}
