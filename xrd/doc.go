// Package xrd computes Bragg reflection angles for cubic lattices and
// carries the reflection tables used to annotate powder diffraction
// figures. It also provides the straight-line fit behind Williamson-Hall
// crystallite-size and lattice-strain analysis.
package xrd
