package interp

import (
	"errors"
	"fmt"
	"sort"
)

// ErrOutOfRange is returned when the query point lies outside the sampled
// interval and extrapolation is not meaningful.
var ErrOutOfRange = errors.New("interp: query outside sampled range")

// Linear evaluates the piecewise-linear interpolant of (xs, ys) at x.
// xs must be sorted ascending. Queries at the boundary samples return the
// boundary values exactly.
func Linear(xs, ys []float64, x float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("interp: length mismatch: %d vs %d", len(xs), len(ys))
	}

	if len(xs) == 0 {
		return 0, ErrOutOfRange
	}

	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, ErrOutOfRange
	}

	i := sort.SearchFloat64s(xs, x)
	if i < len(xs) && xs[i] == x {
		return ys[i], nil
	}

	x0, x1 := xs[i-1], xs[i]
	y0, y1 := ys[i-1], ys[i]

	if x1 == x0 {
		return y0, nil
	}

	frac := (x - x0) / (x1 - x0)

	return y0 + frac*(y1-y0), nil
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)
	return ((c3*t+c2)*t+c1)*t + c0
}

// Resample evaluates the Hermite interpolant of (xs, ys) on a uniform
// grid of n points spanning the sampled range. Endpoints are duplicated
// for the boundary stencils. Used to draw smooth fitted curves through
// coarse sample grids.
func Resample(xs, ys []float64, n int) ([]float64, []float64, error) {
	if len(xs) != len(ys) {
		return nil, nil, fmt.Errorf("interp: length mismatch: %d vs %d", len(xs), len(ys))
	}

	if len(xs) < 2 || n < 2 {
		return nil, nil, ErrOutOfRange
	}

	outX := make([]float64, n)
	outY := make([]float64, n)

	lo, hi := xs[0], xs[len(xs)-1]
	step := (hi - lo) / float64(n-1)

	for i := range outX {
		x := lo + float64(i)*step
		outX[i] = x

		j := sort.SearchFloat64s(xs, x)
		if j >= len(xs) {
			j = len(xs) - 1
		}

		if j > 0 {
			j--
		}

		x0, x1 := xs[j], xs[j+1]

		frac := 0.0
		if x1 != x0 {
			frac = (x - x0) / (x1 - x0)
		}

		ym1 := ys[maxInt(j-1, 0)]
		y2 := ys[minInt(j+2, len(ys)-1)]

		outY[i] = Hermite4(frac, ym1, ys[j], ys[j+1], y2)
	}

	return outX, outY, nil
}

// CrossingX finds the x position where y reaches level on the leading
// edge of a spectrum. The search walks the samples from the high-x end,
// collects the window of points with lo < y <= hi, and inverts it by
// linear interpolation in y. The window bounds keep the inversion on the
// monotonic rise of the edge.
func CrossingX(xs, ys []float64, level, lo, hi float64) (float64, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("interp: length mismatch: %d vs %d", len(xs), len(ys))
	}

	var subX, subY []float64
	for i := len(xs) - 1; i >= 0; i-- {
		if ys[i] > lo {
			subX = append(subX, xs[i])
			subY = append(subY, ys[i])
		}

		if ys[i] > hi {
			break
		}
	}

	if len(subY) < 2 {
		return 0, fmt.Errorf("interp: no samples inside crossing window [%g, %g]", lo, hi)
	}

	// Invert the edge: interpolate x as a function of y.
	idx := make([]int, len(subY))
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool { return subY[idx[a]] < subY[idx[b]] })

	sy := make([]float64, len(subY))
	sx := make([]float64, len(subX))

	for i, j := range idx {
		sy[i] = subY[j]
		sx[i] = subX[j]
	}

	return Linear(sy, sx, level)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
