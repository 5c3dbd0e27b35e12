// Package shirley computes the Shirley background of a core-level
// photoemission spectrum.
//
// The background under a peak region is assumed proportional to the
// integrated photoelectron intensity above it, which leads to a
// fixed-point problem solved by iterating a cumulative-sum formula
// between two anchor energies until the baseline stops moving.
package shirley
