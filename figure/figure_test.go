package figure

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/spring8-benten/bentenplot/dataset"
)

func TestGroupComma(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{11530, "11,530"},
		{300000, "300,000"},
		{-185000, "-185,000"},
	}

	for _, tt := range tests {
		if got := groupComma(tt.in); got != tt.want {
			t.Fatalf("groupComma(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStepTicks(t *testing.T) {
	ticks := StepTicks(1, 5).Ticks(2, 12)

	var majors, minors int
	for _, tick := range ticks {
		if tick.Label == "" {
			minors++
		} else {
			majors++
		}
	}

	// Majors at 5, 10; minors fill the rest of 2..12.
	if majors != 2 {
		t.Fatalf("majors = %d, want 2", majors)
	}

	if minors != 9 {
		t.Fatalf("minors = %d, want 9", minors)
	}
}

func TestDecadeTicks(t *testing.T) {
	ticks := DecadeTicks().Ticks(0.1, 10)

	if len(ticks) != len(decadeValues) {
		t.Fatalf("got %d ticks, want %d", len(ticks), len(decadeValues))
	}

	labels := map[float64]string{0.1: "10⁻¹", 0.5: "5", 1: "10⁰", 3: "3", 10: "10¹"}
	for _, tick := range ticks {
		want, ok := labels[tick.Value]
		if ok && tick.Label != want {
			t.Fatalf("label at %v = %q, want %q", tick.Value, tick.Label, want)
		}
	}

	if got := DecadeTicks().Ticks(0.3, 4); len(got) != 10 {
		t.Fatalf("clipped ticks = %d, want 10", len(got))
	}
}

func TestPaletteFallback(t *testing.T) {
	if Color("no-such-color") != (color.NRGBA{A: 255}) {
		t.Fatal("unknown color should fall back to black")
	}

	if Color("peachpuff") != (color.NRGBA{255, 218, 185, 255}) {
		t.Fatal("peachpuff lookup failed")
	}
}

func TestWithAlpha(t *testing.T) {
	c := WithAlpha(Color("red"), 0.5).(color.NRGBA)
	if c.R != 255 || c.A != 128 {
		t.Fatalf("got %+v", c)
	}
}

func TestRampEndpoints(t *testing.T) {
	warm := Warm(3)
	if len(warm) != 3 {
		t.Fatalf("got %d colors", len(warm))
	}

	if warm[0] == warm[2] {
		t.Fatal("ramp endpoints should differ")
	}

	single := Cool(1)
	if len(single) != 1 {
		t.Fatal("single-entry ramp")
	}
}

func TestSavePNG(t *testing.T) {
	f := New(Style{Width: 2 * vg.Inch, Height: 1.5 * vg.Inch, DPI: 72})
	f.Labels("", "x", "y")

	s := dataset.Series{X: []float64{0, 1, 2}, Y: []float64{0, 1, 0}}
	if err := f.Line(s, LineOpts{Color: Color("red")}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out", "fig.png")
	if err := f.SavePNG(path); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if info.Size() == 0 {
		t.Fatal("empty PNG written")
	}
}
