// Package loader reads beamline data files: whitespace-delimited text,
// comma-separated exports and Excel workbooks.
//
// Instrument exports mix metadata, comment lines and numeric rows in one
// file, so row-level parsing is forgiving: comment lines, blank lines and
// rows whose selected columns are not numeric are skipped silently. Only
// file-level failures surface as errors.
package loader
