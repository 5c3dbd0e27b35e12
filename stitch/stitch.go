package stitch

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spring8-benten/bentenplot/dataset"
)

const (
	defaultXMin = 0.0
	defaultXMax = 60.0
)

// Config bounds the stitched profile. Zero XMax defaults to 60 degrees.
type Config struct {
	XMin float64
	XMax float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.XMax == 0 {
		cfg.XMax = defaultXMax
	}

	return cfg
}

// Plan holds the per-segment clip ranges, gain scale factors and
// background offsets computed from one reference scan. The same plan is
// applied to the raw, background and corrected scans of a measurement so
// all three line up.
type Plan struct {
	Ranges  [][2]float64
	Scales  []float64
	Offsets []float64
}

// NewPlan derives a stitching plan from the raw segments. Clip
// boundaries sit at the midpoint of neighboring segment overlaps. Each
// scale factor chains off the previous one so intensities stay
// continuous across boundaries. When background segments are given,
// offsets are accumulated that keep the scaled background continuous
// too.
func NewPlan(raw, background []dataset.Series, cfg Config) (*Plan, error) {
	cfg = normalizeConfig(cfg)

	n := len(raw)
	if n == 0 {
		return nil, errors.New("stitch: no segments")
	}

	if background != nil && len(background) != n {
		return nil, fmt.Errorf("stitch: %d background segments for %d raw segments", len(background), n)
	}

	for i, s := range raw {
		if s.Len() < 2 {
			return nil, fmt.Errorf("stitch: segment %d too short", i)
		}
	}

	p := &Plan{
		Ranges:  make([][2]float64, n),
		Scales:  make([]float64, n),
		Offsets: make([]float64, n),
	}

	for i := range p.Ranges {
		p.Ranges[i] = [2]float64{cfg.XMin, cfg.XMax}
		p.Scales[i] = 1
	}

	for i := 1; i < n; i++ {
		b := 0.5 * (raw[i-1].X[raw[i-1].Len()-1] + raw[i].X[0])

		p.Ranges[i-1][1] = b
		p.Ranges[i][0] = b

		prev := interpClamp(raw[i-1], b)
		cur := interpClamp(raw[i], b)

		if cur == 0 {
			return nil, fmt.Errorf("stitch: zero intensity at boundary %g", b)
		}

		p.Scales[i] = p.Scales[i-1] * prev / cur

		if background != nil {
			bgPrev := interpClamp(background[i-1], b)
			bgCur := interpClamp(background[i], b)

			p.Offsets[i] = p.Offsets[i-1] + p.Scales[i-1]*bgPrev - p.Scales[i]*bgCur
		}
	}

	return p, nil
}

// Stitch clips each segment to its planned range, applies the gain
// scales and the given per-segment offsets (nil means zero), and merges
// everything into one profile sorted by x. Pass p.Offsets for the
// background scan and nil for the raw and corrected scans.
func (p *Plan) Stitch(segments []dataset.Series, offsets []float64) (dataset.Series, error) {
	if len(segments) != len(p.Ranges) {
		return dataset.Series{}, fmt.Errorf("stitch: %d segments for a %d-segment plan", len(segments), len(p.Ranges))
	}

	if offsets != nil && len(offsets) != len(segments) {
		return dataset.Series{}, fmt.Errorf("stitch: %d offsets for %d segments", len(offsets), len(segments))
	}

	var out dataset.Series
	for i, s := range segments {
		seg := s.ClipX(p.Ranges[i][0], p.Ranges[i][1]).Scale(p.Scales[i])
		if offsets != nil {
			seg = seg.Offset(offsets[i])
		}

		out = dataset.Merge(out, seg)
	}

	if out.Len() == 0 {
		return dataset.Series{}, errors.New("stitch: no points inside planned ranges")
	}

	return out.SortByX(), nil
}

// interpClamp linearly interpolates s at x, clamping to the endpoint
// values outside the sampled range. Boundaries can fall just outside a
// segment when neighbors do not overlap.
func interpClamp(s dataset.Series, x float64) float64 {
	if x <= s.X[0] {
		return s.Y[0]
	}

	if x >= s.X[s.Len()-1] {
		return s.Y[s.Len()-1]
	}

	i := sort.SearchFloat64s(s.X, x)
	if s.X[i] == x {
		return s.Y[i]
	}

	x0, x1 := s.X[i-1], s.X[i]
	y0, y1 := s.Y[i-1], s.Y[i]

	return y0 + (x-x0)/(x1-x0)*(y1-y0)
}
