package haxpes

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/spring8-benten/bentenplot/dataset"
)

const sampleExport = `Region Name=VB
Excitation Energy=7940.0
Pass Energy=200
[Data 1]
7938.0  10.0
7937.0  20.0
7936.0  40.0
7935.0  20.0
`

func writeSpectrum(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "vb.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestReadSpectrumMetadata(t *testing.T) {
	path := writeSpectrum(t, sampleExport)

	s, err := ReadSpectrum(path, 0)
	if err != nil {
		t.Fatal(err)
	}

	if s.Meta["Excitation Energy"] != "7940.0" {
		t.Fatalf("metadata = %v", s.Meta)
	}

	if s.Series.Len() != 4 {
		t.Fatalf("want 4 rows, got %d", s.Series.Len())
	}

	if s.Series.X[0] != 7938.0 {
		t.Fatalf("kinetic energy kept raw, got %v", s.Series.X[0])
	}
}

func TestReadSpectrumBindingConversion(t *testing.T) {
	path := writeSpectrum(t, sampleExport)

	s, err := ReadSpectrum(path, 7940.0)
	if err != nil {
		t.Fatal(err)
	}

	if s.Series.X[0] != 2.0 || s.Series.X[3] != 5.0 {
		t.Fatalf("binding energies = %v", s.Series.X)
	}
}

func TestPhotonEnergy(t *testing.T) {
	path := writeSpectrum(t, sampleExport)

	e, err := PhotonEnergy(path)
	if err != nil {
		t.Fatal(err)
	}

	if e != 7940.0 {
		t.Fatalf("photon energy = %v", e)
	}
}

func TestNormalized(t *testing.T) {
	path := writeSpectrum(t, sampleExport)

	s, err := Normalized(path, 7940.0, 0.0, 4.5)
	if err != nil {
		t.Fatal(err)
	}

	// The 5.0 eV row is cut by the upper limit.
	if s.Len() != 3 {
		t.Fatalf("want 3 rows after cut, got %d", s.Len())
	}

	max := 0.0
	for _, y := range s.Y {
		if y > max {
			max = y
		}
	}

	if math.Abs(max-1) > 1e-12 {
		t.Fatalf("peak not normalized, max = %v", max)
	}
}

func TestReadSpectrumNoData(t *testing.T) {
	path := writeSpectrum(t, "key=value\nno data block\n")

	if _, err := ReadSpectrum(path, 0); err == nil {
		t.Fatal("expected error for missing data block")
	}
}

func edgeSpectrum(shift float64) dataset.Series {
	var s dataset.Series
	for i := 0; i <= 100; i++ {
		x := float64(i) * 0.05 // 0..5 eV binding energy
		s.X = append(s.X, x)
		s.Y = append(s.Y, 1/(1+math.Exp((x-1.0-shift)*8)))
	}

	return s
}

func TestEnergyOffset(t *testing.T) {
	target := edgeSpectrum(0.15)
	ref := edgeSpectrum(0.0)

	offset, targetEdge, refEdge, err := EnergyOffset(target, ref, EdgeConfig{})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(offset-(-0.15)) > 0.01 {
		t.Fatalf("offset = %v, want -0.15", offset)
	}

	if targetEdge < refEdge {
		t.Fatalf("shifted edge %v must sit above reference %v", targetEdge, refEdge)
	}
}
