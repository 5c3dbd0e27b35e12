package stitch

import (
	"math"
	"testing"

	"github.com/spring8-benten/bentenplot/dataset"
)

// segment samples f(x) = 100 - x over [lo, hi] at the given gain.
func segment(lo, hi, step, gain float64) dataset.Series {
	var s dataset.Series
	for x := lo; x <= hi+1e-9; x += step {
		s.X = append(s.X, x)
		s.Y = append(s.Y, (100-x)*gain)
	}

	return s
}

func constSegment(lo, hi, step, value float64) dataset.Series {
	var s dataset.Series
	for x := lo; x <= hi+1e-9; x += step {
		s.X = append(s.X, x)
		s.Y = append(s.Y, value)
	}

	return s
}

func TestPlanRestoresContinuity(t *testing.T) {
	raw := []dataset.Series{
		segment(0, 10, 0.5, 1.0),
		segment(9, 20, 0.5, 0.5),
	}

	p, err := NewPlan(raw, nil, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(p.Scales[1]-2.0) > 1e-12 {
		t.Fatalf("scale = %v, want 2", p.Scales[1])
	}

	b := p.Ranges[0][1]
	if math.Abs(b-9.5) > 1e-12 {
		t.Fatalf("boundary = %v, want 9.5", b)
	}

	if p.Ranges[1][0] != b {
		t.Fatalf("ranges do not meet: %v vs %v", p.Ranges[0], p.Ranges[1])
	}

	out, err := p.Stitch(raw, nil)
	if err != nil {
		t.Fatal(err)
	}

	for i, x := range out.X {
		if math.Abs(out.Y[i]-(100-x)) > 1e-9 {
			t.Fatalf("discontinuity at x=%v: y=%v", x, out.Y[i])
		}

		if i > 0 && x < out.X[i-1] {
			t.Fatalf("output not sorted at %d", i)
		}
	}
}

func TestBackgroundOffsets(t *testing.T) {
	raw := []dataset.Series{
		segment(0, 10, 0.5, 1.0),
		segment(9, 20, 0.5, 0.5),
	}

	// The second background segment carries an extra additive shift of 2
	// on top of the halved gain.
	background := []dataset.Series{
		constSegment(0, 10, 0.5, 10),
		constSegment(9, 20, 0.5, 7),
	}

	p, err := NewPlan(raw, background, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(p.Offsets[1]-(-4)) > 1e-12 {
		t.Fatalf("offset = %v, want -4", p.Offsets[1])
	}

	out, err := p.Stitch(background, p.Offsets)
	if err != nil {
		t.Fatal(err)
	}

	for i, x := range out.X {
		if math.Abs(out.Y[i]-10) > 1e-9 {
			t.Fatalf("background not continuous at x=%v: y=%v", x, out.Y[i])
		}
	}
}

func TestSingleSegmentPassthrough(t *testing.T) {
	raw := []dataset.Series{segment(0, 10, 0.5, 1.0)}

	p, err := NewPlan(raw, nil, Config{})
	if err != nil {
		t.Fatal(err)
	}

	out, err := p.Stitch(raw, nil)
	if err != nil {
		t.Fatal(err)
	}

	if out.Len() != raw[0].Len() {
		t.Fatalf("got %d points, want %d", out.Len(), raw[0].Len())
	}
}

func TestPlanErrors(t *testing.T) {
	if _, err := NewPlan(nil, nil, Config{}); err == nil {
		t.Fatal("expected error for no segments")
	}

	short := []dataset.Series{{X: []float64{1}, Y: []float64{1}}}
	if _, err := NewPlan(short, nil, Config{}); err == nil {
		t.Fatal("expected error for one-point segment")
	}

	raw := []dataset.Series{segment(0, 10, 0.5, 1), segment(9, 20, 0.5, 1)}
	if _, err := NewPlan(raw, raw[:1], Config{}); err == nil {
		t.Fatal("expected error for background count mismatch")
	}

	p, err := NewPlan(raw, nil, Config{})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Stitch(raw[:1], nil); err == nil {
		t.Fatal("expected error for segment count mismatch")
	}

	if _, err := p.Stitch(raw, []float64{1}); err == nil {
		t.Fatal("expected error for offset count mismatch")
	}
}
