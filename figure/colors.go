package figure

import "image/color"

// Named palette matching the colors the figures were designed with.
var palette = map[string]color.NRGBA{
	"black":         {0, 0, 0, 255},
	"red":           {255, 0, 0, 255},
	"blue":          {0, 0, 255, 255},
	"green":         {0, 128, 0, 255},
	"cyan":          {0, 255, 255, 255},
	"brown":         {165, 42, 42, 255},
	"gray":          {128, 128, 128, 255},
	"peachpuff":     {255, 218, 185, 255},
	"darkkhaki":     {189, 183, 107, 255},
	"darkgreen":     {0, 100, 0, 255},
	"darkslategray": {47, 79, 79, 255},
}

// Color looks up a palette color by name. Unknown names fall back to
// black.
func Color(name string) color.Color {
	if c, ok := palette[name]; ok {
		return c
	}

	return color.NRGBA{A: 255}
}

// WithAlpha returns c at the given opacity in [0, 1].
func WithAlpha(c color.Color, alpha float64) color.Color {
	if alpha < 0 {
		alpha = 0
	}

	if alpha > 1 {
		alpha = 1
	}

	n := color.NRGBAModel.Convert(c).(color.NRGBA)

	return color.NRGBA{R: n.R, G: n.G, B: n.B, A: uint8(alpha*255 + 0.5)}
}

// Warm returns n reds from light to dark, one per series.
func Warm(n int) []color.Color {
	return ramp(n, color.NRGBA{252, 146, 114, 255}, color.NRGBA{165, 15, 21, 255})
}

// Cool returns n blues from light to dark, one per series.
func Cool(n int) []color.Color {
	return ramp(n, color.NRGBA{158, 202, 225, 255}, color.NRGBA{8, 69, 148, 255})
}

func ramp(n int, from, to color.NRGBA) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}

		out[i] = color.NRGBA{
			R: lerp8(from.R, to.R, t),
			G: lerp8(from.G, to.G, t),
			B: lerp8(from.B, to.B, t),
			A: 255,
		}
	}

	return out
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + t*(float64(b)-float64(a)) + 0.5)
}
