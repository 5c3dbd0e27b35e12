package peakfit

import (
	"math"
	"testing"
)

func TestFindPeaks(t *testing.T) {
	xs := make([]float64, 401)
	ys := make([]float64, 401)

	for i := range xs {
		x := float64(i) * 0.025 // 0..10
		xs[i] = x
		ys[i] = Gaussian(x, 5, 2.8, 0.1) + Gaussian(x, 3, 4.8, 0.15) + Gaussian(x, 1, 7.2, 0.2)
	}

	got := FindPeaks(xs, ys, DetectOptions{MinX: 2, MaxX: 8, MinSeparation: 0.5, MaxCount: 6})
	if len(got) != 3 {
		t.Fatalf("want 3 peaks, got %v", got)
	}

	for i, want := range []float64{2.8, 4.8, 7.2} {
		if math.Abs(got[i]-want) > 0.05 {
			t.Fatalf("peak %d at %v, want near %v", i, got[i], want)
		}
	}
}

func TestFindPeaksSeparation(t *testing.T) {
	xs := make([]float64, 201)
	ys := make([]float64, 201)

	for i := range xs {
		x := float64(i) * 0.05
		xs[i] = x
		// Two maxima 0.3 apart; only the taller may survive a 0.5 gate.
		ys[i] = Gaussian(x, 5, 4.0, 0.05) + Gaussian(x, 4, 4.3, 0.05)
	}

	got := FindPeaks(xs, ys, DetectOptions{MinSeparation: 0.5})
	if len(got) != 1 {
		t.Fatalf("want 1 surviving peak, got %v", got)
	}

	if math.Abs(got[0]-4.0) > 0.05 {
		t.Fatalf("kept peak at %v, want the taller one near 4.0", got[0])
	}
}

func TestFitRecoversKnownPeaks(t *testing.T) {
	rho := 0.02
	truth := []struct{ a, x0, sigma float64 }{
		{a: 40, x0: 2.75, sigma: 0.12},
		{a: 25, x0: 4.6, sigma: 0.18},
	}

	xs := make([]float64, 501)
	ys := make([]float64, 501)

	for i := range xs {
		x := 0.5 + float64(i)*0.015 // 0.5..8
		xs[i] = x

		y := Baseline(x, rho) + Decay(x, -0.8, 1.2, 1.1)
		for _, p := range truth {
			y += Gaussian(x, p.a, p.x0, p.sigma)
		}

		ys[i] = y
	}

	res, err := Fit(xs, ys, Config{
		Detect: DetectOptions{MinX: 2, MaxX: 6, MinSeparation: 0.5, MaxCount: 6},
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(res.Peaks) != len(truth) {
		t.Fatalf("want %d peaks, got %d", len(truth), len(res.Peaks))
	}

	for i, want := range truth {
		got := res.Peaks[i]
		if math.Abs(got.Position-want.x0) > 0.02 {
			t.Fatalf("peak %d position %v, want %v", i, got.Position, want.x0)
		}

		if math.Abs(got.Sigma-want.sigma) > 0.02 {
			t.Fatalf("peak %d sigma %v, want %v", i, got.Sigma, want.sigma)
		}

		if math.Abs(got.Amplitude-want.a)/want.a > 0.1 {
			t.Fatalf("peak %d amplitude %v, want %v", i, got.Amplitude, want.a)
		}
	}
}

func TestFitAreaPositive(t *testing.T) {
	xs := make([]float64, 301)
	ys := make([]float64, 301)

	for i := range xs {
		x := 0.5 + float64(i)*0.02
		xs[i] = x
		ys[i] = Baseline(x, 0.01) + Gaussian(x, 30, 3.0, 0.15)
	}

	res, err := Fit(xs, ys, Config{
		Detect: DetectOptions{MinX: 1, MaxX: 6, MinSeparation: 0.5, MaxCount: 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	// Gaussian integral a·σ·sqrt(2π) plus a small baseline share.
	analytic := 30 * 0.15 * math.Sqrt(2*math.Pi)

	got := res.Peaks[0].Area
	if got < analytic*0.9 || got > analytic*1.3 {
		t.Fatalf("area %v implausible against Gaussian integral %v", got, analytic)
	}
}

func TestFitNoPeaks(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{1, 1, 1, 1, 1}

	if _, err := Fit(xs, ys, Config{Detect: DetectOptions{MinSeparation: 0.5}}); err == nil {
		t.Fatal("expected ErrNoPeaks for flat data")
	}
}

func TestDecaySignConstraint(t *testing.T) {
	xs := make([]float64, 301)
	ys := make([]float64, 301)

	for i := range xs {
		x := 0.5 + float64(i)*0.02
		xs[i] = x
		ys[i] = Baseline(x, 0.015) + Decay(x, -0.5, 1.0, 0.9) + Gaussian(x, 20, 3.1, 0.12)
	}

	res, err := Fit(xs, ys, Config{
		Detect: DetectOptions{MinX: 1, MaxX: 6, MinSeparation: 0.5, MaxCount: 2},
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.Decay.Amp > 0 {
		t.Fatalf("decay amplitude %v must stay non-positive", res.Decay.Amp)
	}

	if res.Decay.Lambda < 0 || res.Decay.N < 0 {
		t.Fatalf("decay exponents must stay non-negative: n=%v lambda=%v", res.Decay.N, res.Decay.Lambda)
	}
}

func TestCurveEval(t *testing.T) {
	xs := make([]float64, 201)
	ys := make([]float64, 201)

	for i := range xs {
		x := 0.5 + float64(i)*0.03
		xs[i] = x
		ys[i] = Baseline(x, 0.01) + Gaussian(x, 10, 2.5, 0.2)
	}

	res, err := Fit(xs, ys, Config{
		Detect: DetectOptions{MinX: 1, MaxX: 5, MinSeparation: 0.5, MaxCount: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	total, base := res.Curve(xs)
	if len(total) != len(xs) || len(base) != len(xs) {
		t.Fatalf("curve lengths %d/%d", len(total), len(base))
	}

	// The model curve should track the synthetic data closely.
	for i := range xs {
		if math.Abs(total[i]-ys[i]) > 0.5 {
			t.Fatalf("model deviates at x=%v: %v vs %v", xs[i], total[i], ys[i])
		}
	}
}
