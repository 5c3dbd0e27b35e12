// Package interp provides the interpolation primitives used by the
// calibration and stitching pipelines.
//
//   - [Linear]:    piecewise-linear lookup over sorted samples
//   - [Hermite4]:  4-point cubic Hermite kernel for smooth resampling
//   - [CrossingX]: leading-edge level crossing on a spectrum
package interp
