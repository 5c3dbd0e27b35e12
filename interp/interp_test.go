package interp

import (
	"math"
	"testing"
)

func TestLinear(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{0, 10, 40}

	for _, tc := range []struct {
		x, want float64
	}{
		{x: 0, want: 0},
		{x: 0.5, want: 5},
		{x: 1, want: 10},
		{x: 1.5, want: 25},
		{x: 2, want: 40},
	} {
		got, err := Linear(xs, ys, tc.x)
		if err != nil {
			t.Fatalf("x=%v: %v", tc.x, err)
		}

		if math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("x=%v: got %v want %v", tc.x, got, tc.want)
		}
	}

	if _, err := Linear(xs, ys, 3); err == nil {
		t.Fatal("expected out-of-range error")
	}
}

func TestHermite4IdentityOnLinearRamp(t *testing.T) {
	xm1, x0, x1, x2 := -1.0, 0.0, 1.0, 2.0
	for _, frac := range []float64{0, 0.25, 0.5, 1} {
		got := Hermite4(frac, xm1, x0, x1, x2)
		if math.Abs(got-frac) > 1e-12 {
			t.Fatalf("t=%v: got %v", frac, got)
		}
	}
}

func TestResampleLinearRamp(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{0, 1, 2, 3}

	outX, outY, err := Resample(xs, ys, 7)
	if err != nil {
		t.Fatal(err)
	}

	for i := range outX {
		if math.Abs(outY[i]-outX[i]) > 1e-9 {
			t.Fatalf("point %d: (%v, %v)", i, outX[i], outY[i])
		}
	}
}

func TestCrossingX(t *testing.T) {
	// Rising edge toward low x, like a normalized valence-band spectrum
	// plotted against binding energy.
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{1.0, 0.8, 0.6, 0.3, 0.1, 0.0}

	got, err := CrossingX(xs, ys, 0.4, 0.05, 0.75)
	if err != nil {
		t.Fatal(err)
	}

	// y falls from 0.6 at x=2 to 0.3 at x=3; 0.4 sits a third from x=3.
	want := 2.0 + (0.6-0.4)/(0.6-0.3)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestCrossingXEmptyWindow(t *testing.T) {
	xs := []float64{0, 1}
	ys := []float64{0.01, 0.02}

	if _, err := CrossingX(xs, ys, 0.4, 0.05, 0.75); err == nil {
		t.Fatal("expected window error")
	}
}
