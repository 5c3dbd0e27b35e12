// Package dataset provides the in-memory representation of measured
// curves (energy/intensity, angle/intensity, Q/intensity pairs) and the
// elementwise transforms shared by all figure pipelines.
package dataset
