package xrd

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat"
)

// LineFit is the least-squares straight line through a Williamson-Hall
// point set. StdErr is the standard error of the slope, used to draw the
// ±3σ confidence band around the fit.
type LineFit struct {
	Slope     float64
	Intercept float64
	StdErr    float64
}

// FitLine performs an ordinary least-squares fit of y against x.
func FitLine(x, y []float64) (LineFit, error) {
	if len(x) != len(y) {
		return LineFit{}, errors.New("xrd: x and y length mismatch")
	}

	if len(x) < 3 {
		return LineFit{}, errors.New("xrd: need at least 3 points for a line fit")
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	mean := stat.Mean(x, nil)

	var sse, sxx float64
	for i := range x {
		r := y[i] - (intercept + slope*x[i])
		sse += r * r

		dx := x[i] - mean
		sxx += dx * dx
	}

	if sxx == 0 {
		return LineFit{}, errors.New("xrd: degenerate x values")
	}

	stderr := math.Sqrt(sse / float64(len(x)-2) / sxx)

	return LineFit{Slope: slope, Intercept: intercept, StdErr: stderr}, nil
}

// Eval evaluates the fitted line at x.
func (f LineFit) Eval(x float64) float64 {
	return f.Slope*x + f.Intercept
}
