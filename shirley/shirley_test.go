package shirley

import (
	"math"
	"testing"
)

// syntheticSpectrum builds a Gaussian peak on top of a step background,
// the shape a Shirley correction is designed for: flat low background on
// the low-binding-energy side, elevated background on the high side.
func syntheticSpectrum() (energy, intensity []float64) {
	n := 201
	energy = make([]float64, n)
	intensity = make([]float64, n)

	for i := range energy {
		e := 68.0 + float64(i)*0.05 // 68..78 eV
		energy[i] = e

		peak := 100 * math.Exp(-(e-72.5)*(e-72.5)/(2*0.4*0.4))
		step := 10 / (1 + math.Exp(-(e-72.5)*4))

		intensity[i] = 2 + peak + step
	}

	return energy, intensity
}

func TestCorrectConverges(t *testing.T) {
	energy, intensity := syntheticSpectrum()

	res, err := Correct(energy, intensity, Config{EnergyMin: 78, EnergyMax: 68})
	if err != nil {
		t.Fatal(err)
	}

	if !res.Converged {
		t.Fatalf("did not converge in %d iterations", res.Iterations)
	}

	if res.Iterations >= 50 {
		t.Fatalf("iteration count %d at the cap", res.Iterations)
	}
}

func TestAnchorValue(t *testing.T) {
	energy, intensity := syntheticSpectrum()

	res, err := Correct(energy, intensity, Config{EnergyMin: 68, EnergyMax: 78})
	if err != nil {
		t.Fatal(err)
	}

	// The fixed-point formula pins the baseline at the low-index anchor
	// to the intensity of the high-index anchor on every iterate.
	if got, want := res.Background[0], intensity[len(intensity)-1]; math.Abs(got-want) > 1e-9 {
		t.Fatalf("background anchor = %v want %v", got, want)
	}
}

func TestEqualShouldersGiveConstantBackground(t *testing.T) {
	n := 101
	energy := make([]float64, n)
	intensity := make([]float64, n)

	for i := range energy {
		e := 68.0 + float64(i)*0.1
		energy[i] = e
		intensity[i] = 5 + 100*math.Exp(-(e-73)*(e-73)/(2*0.5*0.5))
	}

	res, err := Correct(energy, intensity, Config{EnergyMin: 68, EnergyMax: 78})
	if err != nil {
		t.Fatal(err)
	}

	// Equal edge intensities force the coupling constant to zero, so the
	// baseline is flat at the shoulder level.
	for i, b := range res.Background {
		if math.Abs(b-5) > 1e-6 {
			t.Fatalf("background[%d] = %v, want flat 5", i, b)
		}
	}

	if !res.Converged {
		t.Fatal("flat baseline must converge")
	}
}

func TestCorrectedSubtraction(t *testing.T) {
	energy, intensity := syntheticSpectrum()

	res, err := Correct(energy, intensity, Config{EnergyMin: 68, EnergyMax: 78})
	if err != nil {
		t.Fatal(err)
	}

	for i := range intensity {
		want := intensity[i] - res.Background[i]
		if math.Abs(res.Corrected[i]-want) > 1e-12 {
			t.Fatalf("corrected[%d] = %v want %v", i, res.Corrected[i], want)
		}
	}
}

func TestNonConvergenceReported(t *testing.T) {
	energy, intensity := syntheticSpectrum()

	res, err := Correct(energy, intensity, Config{
		EnergyMin: 68,
		EnergyMax: 78,
		Eps:       1e-300, // unreachable tolerance
		MaxIters:  3,
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.Converged {
		t.Fatal("expected Converged=false at unreachable tolerance")
	}

	if res.Background == nil {
		t.Fatal("last iterate must still be returned")
	}
}

func TestDegenerateInput(t *testing.T) {
	if _, err := Correct([]float64{1, 2}, []float64{0, 0}, Config{EnergyMin: 1, EnergyMax: 2}); err == nil {
		t.Fatal("expected degenerate-region error")
	}

	if _, err := Correct(nil, nil, Config{}); err == nil {
		t.Fatal("expected empty-spectrum error")
	}
}
