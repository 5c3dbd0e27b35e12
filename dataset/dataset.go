package dataset

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// ErrEmpty is returned by operations that need at least one sample.
var ErrEmpty = errors.New("dataset: empty series")

// Series holds paired samples of a measured curve. YErr is optional; when
// present it has the same length as Y.
type Series struct {
	X    []float64
	Y    []float64
	YErr []float64
}

// New validates and wraps paired sample slices.
func New(x, y []float64) (Series, error) {
	if len(x) != len(y) {
		return Series{}, fmt.Errorf("dataset: length mismatch: %d x values, %d y values", len(x), len(y))
	}

	return Series{X: x, Y: y}, nil
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.X) }

// Clone returns a deep copy.
func (s Series) Clone() Series {
	out := Series{
		X: append([]float64(nil), s.X...),
		Y: append([]float64(nil), s.Y...),
	}
	if s.YErr != nil {
		out.YErr = append([]float64(nil), s.YErr...)
	}

	return out
}

// MaxY returns the largest Y value.
func (s Series) MaxY() (float64, error) {
	if len(s.Y) == 0 {
		return 0, ErrEmpty
	}

	m := s.Y[0]
	for _, v := range s.Y[1:] {
		if v > m {
			m = v
		}
	}

	return m, nil
}

// MinY returns the smallest Y value.
func (s Series) MinY() (float64, error) {
	if len(s.Y) == 0 {
		return 0, ErrEmpty
	}

	m := s.Y[0]
	for _, v := range s.Y[1:] {
		if v < m {
			m = v
		}
	}

	return m, nil
}

// NormalizeMax divides every Y value by the peak value so the maximum
// becomes 1. A zero or negative-only curve is returned unchanged.
func (s Series) NormalizeMax() Series {
	out := s.Clone()

	m, err := s.MaxY()
	if err != nil || m == 0 {
		return out
	}

	vecmath.ScaleBlock(out.Y, s.Y, 1/m)
	if s.YErr != nil {
		vecmath.ScaleBlock(out.YErr, s.YErr, 1/math.Abs(m))
	}

	return out
}

// Scale multiplies every Y value (and Y error) by factor.
func (s Series) Scale(factor float64) Series {
	out := s.Clone()
	if len(out.Y) == 0 {
		return out
	}

	vecmath.ScaleBlock(out.Y, s.Y, factor)
	if s.YErr != nil {
		vecmath.ScaleBlock(out.YErr, s.YErr, math.Abs(factor))
	}

	return out
}

// ScaleX multiplies every X value by factor. Used for unit conversions
// such as meters to nanometers.
func (s Series) ScaleX(factor float64) Series {
	out := s.Clone()
	if len(out.X) == 0 {
		return out
	}

	vecmath.ScaleBlock(out.X, s.X, factor)

	return out
}

// Offset adds delta to every Y value.
func (s Series) Offset(delta float64) Series {
	out := s.Clone()
	for i := range out.Y {
		out.Y[i] += delta
	}

	return out
}

// OffsetX adds delta to every X value. Used for energy-axis corrections.
func (s Series) OffsetX(delta float64) Series {
	out := s.Clone()
	for i := range out.X {
		out.X[i] += delta
	}

	return out
}

// ClipX keeps only the samples with lo <= x <= hi.
func (s Series) ClipX(lo, hi float64) Series {
	var out Series
	for i, x := range s.X {
		if x < lo || x > hi {
			continue
		}

		out.X = append(out.X, x)
		out.Y = append(out.Y, s.Y[i])

		if s.YErr != nil {
			out.YErr = append(out.YErr, s.YErr[i])
		}
	}

	return out
}

// SortByX returns a copy ordered by ascending X.
func (s Series) SortByX() Series {
	out := s.Clone()

	idx := make([]int, out.Len())
	for i := range idx {
		idx[i] = i
	}

	sort.SliceStable(idx, func(a, b int) bool { return s.X[idx[a]] < s.X[idx[b]] })

	for i, j := range idx {
		out.X[i] = s.X[j]
		out.Y[i] = s.Y[j]

		if s.YErr != nil {
			out.YErr[i] = s.YErr[j]
		}
	}

	return out
}

// Merge concatenates several series into one, preserving sample order of
// the inputs.
func Merge(parts ...Series) Series {
	var out Series
	for _, p := range parts {
		out.X = append(out.X, p.X...)
		out.Y = append(out.Y, p.Y...)
	}

	return out
}
