package main

import (
	"math"
	"testing"

	"github.com/spring8-benten/bentenplot/dataset"
	"github.com/spring8-benten/bentenplot/loader"
)

func TestSeriesName(t *testing.T) {
	files := []string{"haxpes_Pt4f_TEC10F50E_H_0001.csv", "other.txt"}

	cases := []struct {
		names []string
		i     int
		want  string
	}{
		{[]string{"TEC10F50E"}, 0, "TEC10F50E"},
		{[]string{"TEC10F50E"}, 1, "other"},
		{nil, 0, "haxpes_Pt4f_TEC10F50E_H_0001"},
	}

	for _, c := range cases {
		if got := seriesName(c.names, files, c.i); got != c.want {
			t.Fatalf("seriesName(%v, %d) = %q, want %q", c.names, c.i, got, c.want)
		}
	}
}

func TestSheetSeriesTrimsToShorter(t *testing.T) {
	sheet := &loader.Sheet{
		Name:    "data1",
		Headers: []string{"twotheta", "CeO2"},
		Columns: map[string][]float64{
			"twotheta": {1, 2, 3, 4},
			"CeO2":     {10, 20},
		},
	}

	s, err := sheetSeries(sheet, "twotheta", "CeO2")
	if err != nil {
		t.Fatalf("sheetSeries: %v", err)
	}

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	if s.X[1] != 2 || s.Y[1] != 20 {
		t.Fatalf("unexpected sample: (%v, %v)", s.X[1], s.Y[1])
	}
}

func TestSheetSeriesMissingColumn(t *testing.T) {
	sheet := &loader.Sheet{Name: "data1", Columns: map[string][]float64{}}

	if _, err := sheetSeries(sheet, "twotheta", "CeO2"); err == nil {
		t.Fatal("expected error for missing column")
	}
}

func TestSmoothCurveDensifies(t *testing.T) {
	coarse := dataset.Series{
		X: []float64{0, 1, 2, 3, 4},
		Y: []float64{0, 1, 0, -1, 0},
	}

	smooth := smoothCurve(coarse, 9)

	if smooth.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", smooth.Len())
	}

	// The interpolant passes through the original samples.
	for i, x := range coarse.X {
		if got := smooth.Y[2*i]; math.Abs(got-coarse.Y[i]) > 1e-12 {
			t.Fatalf("smooth.Y at x=%v = %v, want %v", x, got, coarse.Y[i])
		}
	}
}

func TestSmoothCurveShortInput(t *testing.T) {
	s := dataset.Series{X: []float64{1}, Y: []float64{2}}

	smooth := smoothCurve(s, 100)

	if smooth.Len() != 1 || smooth.Y[0] != 2 {
		t.Fatalf("short curve changed: %+v", smooth)
	}
}

func TestRowFloats(t *testing.T) {
	row := []string{"label", "unit", "1.5", "", " 2.5 ", "3"}

	got, err := rowFloats(row, 2)
	if err != nil {
		t.Fatalf("rowFloats: %v", err)
	}

	want := []float64{1.5, 2.5, 3}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("rowFloats[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRowFloatsBadCell(t *testing.T) {
	if _, err := rowFloats([]string{"a", "b", "not-a-number"}, 2); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRowFloatsShortRow(t *testing.T) {
	got, err := rowFloats([]string{"only"}, 2)
	if err != nil {
		t.Fatalf("rowFloats: %v", err)
	}

	if len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}
