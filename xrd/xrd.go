package xrd

import (
	"fmt"
	"math"
)

// Reduced Planck constant times c, in keV·Å.
const hbarC = 1.97

// DefaultEnergy is the beamline X-ray energy in keV.
const DefaultEnergy = 24.0

// Lattice constants in Å.
const (
	LatticePt   = 3.918
	LatticeCeO2 = 5.411
)

// HKL is a Miller index triple.
type HKL [3]int

func (h HKL) String() string {
	return fmt.Sprintf("(%d%d%d)", h[0], h[1], h[2])
}

// TwoTheta computes the first-order Bragg angle 2θ in degrees for a
// cubic lattice with constant latticeA (Å) at energyKeV.
func TwoTheta(h HKL, latticeA, energyKeV float64) (float64, error) {
	if latticeA <= 0 || energyKeV <= 0 {
		return 0, fmt.Errorf("xrd: invalid lattice %g Å or energy %g keV", latticeA, energyKeV)
	}

	d := latticeA / math.Sqrt(float64(h[0]*h[0]+h[1]*h[1]+h[2]*h[2]))

	arg := hbarC * math.Pi / (d * energyKeV)
	if arg > 1 {
		return 0, fmt.Errorf("xrd: reflection %v not reachable at %g keV", h, energyKeV)
	}

	return 2 * asinDeg(arg), nil
}

func asinDeg(x float64) float64 {
	return math.Asin(x) * 180 / math.Pi
}

// Reflection pairs a Miller index with its Bragg angle and the placement
// of its figure annotation: LabelDX shifts the label in degrees along 2θ,
// LabelY is the label height in counts.
type Reflection struct {
	HKL      HKL
	TwoTheta float64
	LabelDX  float64
	LabelY   float64
}

type mark struct {
	hkl HKL
	dx  float64
	y   float64
}

var ptMarks = []mark{
	{HKL{1, 1, 1}, -0.5, 260000},
	{HKL{2, 0, 0}, -0.5, 185000},
	{HKL{2, 2, 0}, -0.5, 170000},
	{HKL{3, 1, 1}, -0.5, 180000},
	{HKL{2, 2, 2}, -0.3, 150000},
	{HKL{4, 0, 0}, -0.5, 140000},
	{HKL{3, 3, 1}, -0.8, 155000},
	{HKL{4, 2, 0}, -0.2, 155000},
	{HKL{4, 2, 2}, -0.5, 145000},
	{HKL{5, 1, 1}, -0.5, 145000},
	{HKL{5, 3, 1}, -0.5, 145000},
}

var ceO2Marks = []mark{
	{HKL{1, 1, 1}, -0.5, 75000},
	{HKL{2, 0, 0}, -0.5, 25000},
	{HKL{2, 2, 0}, -0.5, 50000},
	{HKL{3, 1, 1}, -0.5, 45000},
	{HKL{2, 2, 2}, -0.5, 15000},
	{HKL{4, 0, 0}, -0.5, 15000},
	{HKL{3, 3, 1}, -0.8, 20000},
	{HKL{4, 2, 0}, -0.2, 15000},
	{HKL{4, 2, 2}, -0.5, 20000},
	{HKL{5, 1, 1}, -0.5, 20000},
	{HKL{4, 4, 0}, -0.5, 10000},
	{HKL{5, 3, 1}, -0.5, 15000},
	{HKL{6, 2, 0}, -0.5, 15000},
}

func computeMarks(marks []mark, latticeA, energyKeV float64) ([]Reflection, error) {
	out := make([]Reflection, 0, len(marks))
	for _, m := range marks {
		tt, err := TwoTheta(m.hkl, latticeA, energyKeV)
		if err != nil {
			return nil, err
		}

		out = append(out, Reflection{HKL: m.hkl, TwoTheta: tt, LabelDX: m.dx, LabelY: m.y})
	}

	return out, nil
}

// PtReflections returns the annotated Pt fcc reflection set with Bragg
// angles computed at energyKeV.
func PtReflections(energyKeV float64) ([]Reflection, error) {
	return computeMarks(ptMarks, LatticePt, energyKeV)
}

// CeO2Reflections returns the annotated CeO2 standard reflection set
// with Bragg angles computed at energyKeV.
func CeO2Reflections(energyKeV float64) ([]Reflection, error) {
	return computeMarks(ceO2Marks, LatticeCeO2, energyKeV)
}

// RietveldReflections returns the Pt reflection set with the refined
// peak positions used on the Rietveld figure. Angles are fixed from the
// refinement, not recomputed from the ideal lattice.
func RietveldReflections() []Reflection {
	return []Reflection{
		{HKL{1, 1, 1}, 13.1645, -0.5, 55000},
		{HKL{2, 0, 0}, 15.212, -0.5, 30000},
		{HKL{2, 2, 0}, 21.5761, -0.5, 25000},
		{HKL{3, 1, 1}, 25.3568, -0.5, 25000},
		{HKL{2, 2, 2}, 26.5043, -0.3, 15000},
		{HKL{4, 0, 0}, 30.6977, -0.5, 10000},
		{HKL{3, 3, 1}, 33.5294, -0.8, 15000},
		{HKL{4, 2, 0}, 34.4271, -0.2, 15000},
		{HKL{4, 2, 2}, 37.8314, -0.5, 10000},
	}
}
