// Package interp provides interpolation primitives for complex baseband
// samples.
//
// Each primitive treats the real and imaginary parts independently:
//
//   - [Linear2]:  2-point linear interpolation
//   - [Hermite4]: 4-point cubic Hermite
//
// resample.Interpolate selects between them with its WithMethod option.
package interp
