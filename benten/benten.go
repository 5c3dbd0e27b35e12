package benten

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spring8-benten/bentenplot/loader"
)

// DefaultSheet is the worksheet carrying the standard-sample table.
const DefaultSheet = "data"

// Pretreatment states of a standard sample.
const (
	AsMade = "AsMade"
	H      = "H"
	EC     = "EC"
)

// Record is one row of the standard-sample table. Missing numeric cells
// are NaN.
type Record struct {
	Sample       string
	Pretreatment string

	// SAXSD is the particle size by SAXS in nm; SAXSDWidth its
	// distribution width.
	SAXSD      float64
	SAXSDWidth float64

	// ScherrerSize is the crystallite size by XRD in nm.
	ScherrerSize float64

	// LatticeStrain is the Williamson-Hall strain, dimensionless.
	LatticeStrain float64
}

var ptCoSamples = map[string]bool{
	"TEC35V31E": true,
	"TEC36E52":  true,
	"TEC36F52":  true,
}

// IsPtCo reports whether a sample is a Pt-Co alloy catalyst; the rest of
// the standard set is pure Pt.
func IsPtCo(sample string) bool {
	return ptCoSamples[sample]
}

// ReadRecords loads the standard-sample table from a workbook sheet.
func ReadRecords(path, sheet string) ([]Record, error) {
	rows, err := loader.ExcelStrings(path, sheet)
	if err != nil {
		return nil, err
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("benten: sheet %q in %s has no data rows", sheet, path)
	}

	idx := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		idx[strings.TrimSpace(h)] = i
	}

	for _, required := range []string{"Sample", "pretreatment"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("benten: sheet %q has no %q column", sheet, required)
		}
	}

	var out []Record
	for _, row := range rows[1:] {
		sample := cell(row, idx, "Sample")
		if sample == "" {
			continue
		}

		out = append(out, Record{
			Sample:        sample,
			Pretreatment:  cell(row, idx, "pretreatment"),
			SAXSD:         num(row, idx, "SAXS_d"),
			SAXSDWidth:    num(row, idx, "SAXS_d_width"),
			ScherrerSize:  num(row, idx, "XRD_sd"),
			LatticeStrain: num(row, idx, "XRD_ws"),
		})
	}

	return out, nil
}

func cell(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[i])
}

func num(row []string, idx map[string]int, name string) float64 {
	v, err := strconv.ParseFloat(cell(row, idx, name), 64)
	if err != nil {
		return math.NaN()
	}

	return v
}

// Metric selects which XRD quantity a transition is plotted against.
type Metric int

const (
	// MetricScherrerSize plots crystallite size against particle size.
	MetricScherrerSize Metric = iota

	// MetricLatticeStrain plots Williamson-Hall strain against particle
	// size.
	MetricLatticeStrain
)

// Point is one figure position: particle size by SAXS on X, the chosen
// XRD metric on Y.
type Point struct {
	X float64
	Y float64
}

// Transition holds one sample's movement across pretreatments. XErr is
// the as-made particle size distribution width, NaN when the sheet has
// none.
type Transition struct {
	Sample string
	PtCo   bool

	AsMade Point
	H      Point
	EC     Point

	XErr float64
}

// Transitions pairs each sample's three pretreatment states. Samples
// missing any of the three states are dropped, matching the figures.
// Order follows first appearance in the table.
func Transitions(records []Record, metric Metric) []Transition {
	byState := make(map[string]map[string]Record)

	var order []string
	for _, r := range records {
		states, ok := byState[r.Sample]
		if !ok {
			states = make(map[string]Record, 3)
			byState[r.Sample] = states

			order = append(order, r.Sample)
		}

		states[r.Pretreatment] = r
	}

	var out []Transition
	for _, sample := range order {
		states := byState[sample]

		asMade, okA := states[AsMade]
		h, okH := states[H]
		ec, okE := states[EC]

		if !okA || !okH || !okE {
			continue
		}

		out = append(out, Transition{
			Sample: sample,
			PtCo:   IsPtCo(sample),
			AsMade: point(asMade, metric),
			H:      point(h, metric),
			EC:     point(ec, metric),
			XErr:   asMade.SAXSDWidth,
		})
	}

	return out
}

func point(r Record, metric Metric) Point {
	y := r.ScherrerSize
	if metric == MetricLatticeStrain {
		y = r.LatticeStrain
	}

	return Point{X: r.SAXSD, Y: y}
}
