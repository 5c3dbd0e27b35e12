package figure

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// StepTicks places unlabeled minor ticks every minor step and labeled
// major ticks every major step, both aligned to multiples of the step.
func StepTicks(minor, major float64) plot.Ticker {
	return stepTicks{minor: minor, major: major}
}

type stepTicks struct {
	minor, major float64
}

func (t stepTicks) Ticks(min, max float64) []plot.Tick {
	var out []plot.Tick

	if t.major > 0 {
		start := math.Ceil(min/t.major) * t.major
		for v := start; v <= max+1e-9; v += t.major {
			out = append(out, plot.Tick{Value: v, Label: trimFloat(v)})
		}
	}

	if t.minor > 0 {
		start := math.Ceil(min/t.minor) * t.minor
		for v := start; v <= max+1e-9; v += t.minor {
			if t.major > 0 && math.Mod(v+1e-9, t.major) < 2e-9 {
				continue
			}

			out = append(out, plot.Tick{Value: v})
		}
	}

	return out
}

// CommaTicks keeps the default tick positions but groups the label
// digits with commas (11,530). Values below threshold keep plain
// labels; a zero threshold groups everything.
func CommaTicks(threshold float64) plot.Ticker {
	return commaTicks{threshold: threshold}
}

type commaTicks struct {
	threshold float64
}

func (t commaTicks) Ticks(min, max float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(min, max)
	for i, tick := range ticks {
		if tick.Label == "" {
			continue
		}

		if tick.Value >= t.threshold {
			ticks[i].Label = groupComma(int64(tick.Value))
		} else {
			ticks[i].Label = strconv.FormatInt(int64(tick.Value), 10)
		}
	}

	return ticks
}

// DecadeTicks labels a log axis spanning 0.1 to 10 the way the
// scattering profiles do: powers of ten in exponent form, single digits
// in between.
func DecadeTicks() plot.Ticker {
	return decadeTicks{}
}

type decadeTicks struct{}

var decadeValues = []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 1, 2, 3, 4, 5, 6, 7, 8, 10}

func (decadeTicks) Ticks(min, max float64) []plot.Tick {
	var out []plot.Tick
	for _, v := range decadeValues {
		if v < min || v > max {
			continue
		}

		out = append(out, plot.Tick{Value: v, Label: decadeLabel(v)})
	}

	return out
}

func decadeLabel(v float64) string {
	switch {
	case v == 0.1:
		return "10⁻¹"
	case v == 1:
		return "10⁰"
	case v == 10:
		return "10¹"
	case v > 0.1 && v < 1:
		return strconv.Itoa(int(v*10 + 0.5))
	case v > 1 && v < 10:
		return strconv.Itoa(int(v + 0.5))
	default:
		return ""
	}
}

func groupComma(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatInt(v, 10)

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}

		out = append(out, c)
	}

	if neg {
		return "-" + string(out)
	}

	return string(out)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
