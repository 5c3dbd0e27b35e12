// Package haxpes processes hard X-ray photoelectron spectra: the tagged
// text export of the analyzer (metadata lines, then a [Data] block),
// binding-energy conversion, peak normalization and the Fermi-edge
// energy calibration against a reference sample.
package haxpes
