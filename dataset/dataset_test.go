package dataset

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-12
}

func TestNewLengthMismatch(t *testing.T) {
	if _, err := New([]float64{1, 2}, []float64{1}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestNormalizeMax(t *testing.T) {
	s := Series{X: []float64{0, 1, 2}, Y: []float64{1, 4, 2}}

	n := s.NormalizeMax()
	if !almostEqual(n.Y[1], 1) {
		t.Fatalf("peak not normalized to 1, got %v", n.Y[1])
	}

	if !almostEqual(n.Y[0], 0.25) || !almostEqual(n.Y[2], 0.5) {
		t.Fatalf("unexpected normalized values %v", n.Y)
	}

	// Receiver must stay untouched.
	if !almostEqual(s.Y[1], 4) {
		t.Fatalf("receiver mutated: %v", s.Y)
	}
}

func TestNormalizeMaxZeroPeak(t *testing.T) {
	s := Series{X: []float64{0, 1}, Y: []float64{0, 0}}

	n := s.NormalizeMax()
	if n.Y[0] != 0 || n.Y[1] != 0 {
		t.Fatalf("zero curve should pass through, got %v", n.Y)
	}
}

func TestClipX(t *testing.T) {
	s := Series{
		X:    []float64{0, 1, 2, 3, 4},
		Y:    []float64{10, 11, 12, 13, 14},
		YErr: []float64{1, 1, 1, 1, 1},
	}

	c := s.ClipX(1, 3)
	if c.Len() != 3 {
		t.Fatalf("want 3 samples, got %d", c.Len())
	}

	if c.X[0] != 1 || c.X[2] != 3 {
		t.Fatalf("unexpected clip bounds %v", c.X)
	}

	if len(c.YErr) != 3 {
		t.Fatalf("YErr not clipped: %v", c.YErr)
	}
}

func TestSortByX(t *testing.T) {
	s := Series{X: []float64{3, 1, 2}, Y: []float64{30, 10, 20}}

	o := s.SortByX()
	for i, want := range []float64{1, 2, 3} {
		if o.X[i] != want {
			t.Fatalf("sorted X = %v", o.X)
		}
	}

	if o.Y[0] != 10 || o.Y[2] != 30 {
		t.Fatalf("Y not permuted with X: %v", o.Y)
	}
}

func TestScaleAndOffset(t *testing.T) {
	s := Series{X: []float64{1, 2}, Y: []float64{1, 2}}

	got := s.Scale(2).Offset(1)
	if got.Y[0] != 3 || got.Y[1] != 5 {
		t.Fatalf("scale+offset = %v", got.Y)
	}

	gx := s.ScaleX(1e9).OffsetX(-1)
	if gx.X[0] != 1e9-1 {
		t.Fatalf("x transform = %v", gx.X)
	}
}

func TestMerge(t *testing.T) {
	a := Series{X: []float64{1}, Y: []float64{10}}
	b := Series{X: []float64{2}, Y: []float64{20}}

	m := Merge(a, b)
	if m.Len() != 2 || m.X[1] != 2 || m.Y[0] != 10 {
		t.Fatalf("merge = %+v", m)
	}
}
