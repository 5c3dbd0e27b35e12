// Package saxs reads small-angle X-ray scattering profiles and McSAS
// Monte-Carlo analysis outputs: measured/fitted intensity curves and
// particle radius histograms. Instrument units (meters, 1/m) are
// converted to the nanometer scale the figures use.
package saxs
