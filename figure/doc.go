// Package figure renders the publication figures. It wraps gonum/plot
// with the serif house style used across the characterization plots:
// fixed font roles, an 8x6 inch canvas, 300 dpi PNG output, and the
// handful of axis treatments the figures share (inverted binding-energy
// axes, log-log scattering axes, comma-grouped and decade tick labels).
package figure
