// Package xafs handles X-ray absorption fine structure data: the Athena
// column conventions for normalized μ(E), k²χ(k) and |χ(R)| exports, and
// the windowed Fourier transform that turns a k-space oscillation into a
// radial distribution magnitude.
package xafs
