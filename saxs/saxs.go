package saxs

import (
	"fmt"

	"github.com/spring8-benten/bentenplot/dataset"
	"github.com/spring8-benten/bentenplot/loader"
)

const profileHeaderLines = 4

// Profile reads a scattering intensity profile: Q (1/nm) and intensity
// in the first two columns after a fixed four-line header. Rows with NAN
// markers are dropped.
func Profile(path string) (dataset.Series, error) {
	s, err := loader.Series(path, loader.Options{SkipLines: profileHeaderLines})
	if err != nil {
		return dataset.Series{}, err
	}

	if s.Len() == 0 {
		return dataset.Series{}, fmt.Errorf("saxs: no profile rows in %s", path)
	}

	return s, nil
}

// Fit holds a McSAS fit file: the measured curve and the Monte-Carlo
// fitted curve, both with intensity errors, on a shared Q grid in 1/nm.
type Fit struct {
	Measured dataset.Series
	Fitted   dataset.Series
}

// ReadFit parses a McSAS fit output. The file carries Q in 1/m,
// measured intensity with its error, and fitted intensity with its
// error, after one header row.
func ReadFit(path string) (Fit, error) {
	cols, err := loader.Table(path, loader.Options{SkipLines: 1}, 5)
	if err != nil {
		return Fit{}, err
	}

	if len(cols[0]) == 0 {
		return Fit{}, fmt.Errorf("saxs: no fit rows in %s", path)
	}

	return Fit{
		Measured: dataset.Series{X: cols[0], Y: cols[1], YErr: cols[2]}.ScaleX(1e-9),
		Fitted:   dataset.Series{X: cols[0], Y: cols[3], YErr: cols[4]}.ScaleX(1e-9),
	}, nil
}

// Histogram holds a McSAS radius distribution: particle radius in nm,
// the volume-fraction histogram with its error, the observability
// limit, and the cumulative distribution with its error.
type Histogram struct {
	Radius        []float64
	Fraction      []float64
	FractionErr   []float64
	Observability []float64
	CDF           []float64
	CDFErr        []float64
}

// ReadHistogram parses a McSAS radius histogram file. Radii are stored
// in meters and converted to nanometers.
func ReadHistogram(path string) (Histogram, error) {
	cols, err := loader.Table(path, loader.Options{SkipLines: 1}, 7)
	if err != nil {
		return Histogram{}, err
	}

	if len(cols[0]) == 0 {
		return Histogram{}, fmt.Errorf("saxs: no histogram rows in %s", path)
	}

	return Histogram{
		Radius:        dataset.Series{X: cols[0]}.ScaleX(1e9).X,
		Fraction:      cols[2],
		FractionErr:   cols[3],
		Observability: cols[4],
		CDF:           cols[5],
		CDFErr:        cols[6],
	}, nil
}
