package xafs

import (
	"github.com/spring8-benten/bentenplot/dataset"
	"github.com/spring8-benten/bentenplot/loader"
)

// Athena exports share a layout: '#' comment header, then whitespace
// columns. The column of interest differs per file kind.

// ReadNorm reads a .nor file: energy in column 0, normalized μ(E) in
// column 1.
func ReadNorm(path string) (dataset.Series, error) {
	return loader.Series(path, loader.Options{YCol: 1})
}

// ReadChiK reads a .chik file: wavenumber k in column 0, k²χ(k) in
// column 3.
func ReadChiK(path string) (dataset.Series, error) {
	return loader.Series(path, loader.Options{YCol: 3})
}

// ReadChiR reads a .chir file: radial distance in column 0, |χ(R)| in
// column 3.
func ReadChiR(path string) (dataset.Series, error) {
	return loader.Series(path, loader.Options{YCol: 3})
}

// ReadFitPair reads a fit export (.k2, .rmag): abscissa in column 0,
// experimental curve in column 1, fitted curve in column 2.
func ReadFitPair(path string) (exp, fit dataset.Series, err error) {
	exp, err = loader.Series(path, loader.Options{YCol: 1})
	if err != nil {
		return dataset.Series{}, dataset.Series{}, err
	}

	fit, err = loader.Series(path, loader.Options{YCol: 2})
	if err != nil {
		return dataset.Series{}, dataset.Series{}, err
	}

	return exp, fit, nil
}
