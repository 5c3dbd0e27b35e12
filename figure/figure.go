package figure

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/spring8-benten/bentenplot/dataset"
)

// Figure wraps a gonum plot with the house style applied.
type Figure struct {
	*plot.Plot
	style Style
}

// New creates an empty styled figure.
func New(st Style) *Figure {
	st = normalizeStyle(st)

	p := plot.New()

	for _, ts := range []*text.Style{
		&p.Title.TextStyle,
		&p.X.Label.TextStyle,
		&p.Y.Label.TextStyle,
		&p.Legend.TextStyle,
	} {
		ts.Font.Variant = "Serif"
	}

	p.X.Tick.Label.Font.Variant = "Serif"
	p.Y.Tick.Label.Font.Variant = "Serif"

	p.Title.TextStyle.Font.Size = st.TitleSize
	p.X.Label.TextStyle.Font.Size = st.LabelSize
	p.Y.Label.TextStyle.Font.Size = st.LabelSize
	p.X.Tick.Label.Font.Size = st.TickSize
	p.Y.Tick.Label.Font.Size = st.TickSize
	p.Legend.TextStyle.Font.Size = st.LegendSize

	return &Figure{Plot: p, style: st}
}

// Labels sets the title and axis labels.
func (f *Figure) Labels(title, x, y string) {
	f.Title.Text = title
	f.X.Label.Text = x
	f.Y.Label.Text = y
}

// XRange fixes the horizontal axis limits.
func (f *Figure) XRange(lo, hi float64) {
	f.X.Min, f.X.Max = lo, hi
}

// YRange fixes the vertical axis limits.
func (f *Figure) YRange(lo, hi float64) {
	f.Y.Min, f.Y.Max = lo, hi
}

// InvertX reverses the horizontal axis, the conventional display for
// binding-energy spectra.
func (f *Figure) InvertX() {
	f.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	f.X.Tick.Marker = plot.InvertedTicks{Ticker: f.X.Tick.Marker}
}

// LogX switches the horizontal axis to a logarithmic scale.
func (f *Figure) LogX() {
	f.X.Scale = plot.LogScale{}
	f.X.Tick.Marker = plot.LogTicks{Prec: -1}
}

// LogY switches the vertical axis to a logarithmic scale.
func (f *Figure) LogY() {
	f.Y.Scale = plot.LogScale{}
	f.Y.Tick.Marker = plot.LogTicks{Prec: -1}
}

// Grid adds grid lines. Dashed, thin, gray, per the house style; either
// direction can be switched off.
func (f *Figure) Grid(vertical, horizontal bool) {
	g := plotter.NewGrid()

	g.Vertical.Color = Color("gray")
	g.Vertical.Width = vg.Points(0.5)
	g.Vertical.Dashes = Dashes("--")

	g.Horizontal.Color = Color("gray")
	g.Horizontal.Width = vg.Points(0.5)
	g.Horizontal.Dashes = Dashes("--")

	if !vertical {
		g.Vertical.Color = color.Transparent
	}

	if !horizontal {
		g.Horizontal.Color = color.Transparent
	}

	f.Add(g)
}

// Dashes translates the line style shorthand used throughout the
// figure definitions: "-" solid, "--" dashed, ":" dotted.
func Dashes(style string) []vg.Length {
	switch style {
	case "--":
		return []vg.Length{vg.Points(6), vg.Points(2)}
	case ":":
		return []vg.Length{vg.Points(1), vg.Points(3)}
	default:
		return nil
	}
}

// LineOpts styles one curve.
type LineOpts struct {
	Color  color.Color
	Width  vg.Length
	Dashes []vg.Length
	Alpha  float64
	Legend string
}

func (o LineOpts) lineStyle() draw.LineStyle {
	c := o.Color
	if c == nil {
		c = Color("black")
	}

	if o.Alpha > 0 && o.Alpha < 1 {
		c = WithAlpha(c, o.Alpha)
	}

	w := o.Width
	if w == 0 {
		w = vg.Points(1)
	}

	return draw.LineStyle{Color: c, Width: w, Dashes: o.Dashes}
}

// Line draws a curve through the series samples.
func (f *Figure) Line(s dataset.Series, o LineOpts) error {
	l, err := plotter.NewLine(toXYs(s))
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	l.LineStyle = o.lineStyle()

	f.Add(l)

	if o.Legend != "" {
		f.Legend.Add(o.Legend, l)
	}

	return nil
}

// VLine draws a vertical segment from (x, y0) to (x, y1), used for
// Bragg peak markers.
func (f *Figure) VLine(x, y0, y1 float64, o LineOpts) error {
	return f.Line(dataset.Series{X: []float64{x, x}, Y: []float64{y0, y1}}, o)
}

// MarkerOpts styles one point set.
type MarkerOpts struct {
	Color  color.Color
	Radius vg.Length
	Square bool
	Alpha  float64
	Legend string
}

func (o MarkerOpts) glyphStyle() draw.GlyphStyle {
	c := o.Color
	if c == nil {
		c = Color("black")
	}

	if o.Alpha > 0 && o.Alpha < 1 {
		c = WithAlpha(c, o.Alpha)
	}

	r := o.Radius
	if r == 0 {
		r = vg.Points(3)
	}

	var shape draw.GlyphDrawer = draw.CircleGlyph{}
	if o.Square {
		shape = draw.BoxGlyph{}
	}

	return draw.GlyphStyle{Color: c, Radius: r, Shape: shape}
}

// Scatter draws the series samples as detached markers.
func (f *Figure) Scatter(s dataset.Series, o MarkerOpts) error {
	sc, err := plotter.NewScatter(toXYs(s))
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	sc.GlyphStyle = o.glyphStyle()

	f.Add(sc)

	if o.Legend != "" {
		f.Legend.Add(o.Legend, sc)
	}

	return nil
}

// ErrorBars draws markers with vertical error bars. The series must
// carry YErr values.
func (f *Figure) ErrorBars(s dataset.Series, o MarkerOpts) error {
	if len(s.YErr) != s.Len() {
		return fmt.Errorf("figure: series without errors: %d errors for %d samples", len(s.YErr), s.Len())
	}

	data := errData{XYs: toXYs(s), errs: s.YErr}

	bars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	style := o.lineOpts().lineStyle()
	bars.LineStyle = style
	bars.CapWidth = vg.Points(3)

	f.Add(bars)

	return f.Scatter(s, o)
}

func (o MarkerOpts) lineOpts() LineOpts {
	return LineOpts{Color: o.Color, Width: vg.Points(0.7), Alpha: o.Alpha}
}

// Bars draws a histogram as filled rectangles centered on the x values.
func (f *Figure) Bars(x, heights []float64, width float64, c color.Color, alpha float64, legend string) error {
	if len(x) != len(heights) {
		return fmt.Errorf("figure: %d bar positions for %d heights", len(x), len(heights))
	}

	if alpha > 0 && alpha < 1 {
		c = WithAlpha(c, alpha)
	}

	var last *plotter.Polygon
	for i := range x {
		half := width / 2
		rect := plotter.XYs{
			{X: x[i] - half, Y: 0},
			{X: x[i] + half, Y: 0},
			{X: x[i] + half, Y: heights[i]},
			{X: x[i] - half, Y: heights[i]},
		}

		poly, err := plotter.NewPolygon(rect)
		if err != nil {
			return fmt.Errorf("figure: %w", err)
		}

		poly.Color = c
		poly.LineStyle.Color = color.Transparent

		f.Add(poly)
		last = poly
	}

	if legend != "" && last != nil {
		f.Legend.Add(legend, last)
	}

	return nil
}

// Fill shades the band between two curves sampled on a shared grid, used
// for confidence bands around fitted lines.
func (f *Figure) Fill(xs, lower, upper []float64, c color.Color, alpha float64, legend string) error {
	if len(xs) != len(lower) || len(xs) != len(upper) {
		return fmt.Errorf("figure: band length mismatch: %d/%d/%d", len(xs), len(lower), len(upper))
	}

	band := make(plotter.XYs, 0, 2*len(xs))
	for i := range xs {
		band = append(band, plotter.XY{X: xs[i], Y: upper[i]})
	}

	for i := len(xs) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: xs[i], Y: lower[i]})
	}

	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	if alpha > 0 && alpha < 1 {
		c = WithAlpha(c, alpha)
	}

	poly.Color = c
	poly.LineStyle.Color = color.Transparent

	f.Add(poly)
	if legend != "" {
		f.Legend.Add(legend, poly)
	}

	return nil
}

// Text places a label at data coordinates. Rotated labels run bottom-up,
// the style used for reflection indices.
func (f *Figure) Text(x, y float64, label string, rotated bool) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{label},
	})
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	for i := range l.TextStyle {
		l.TextStyle[i].Font.Variant = "Serif"
		l.TextStyle[i].Font.Size = vg.Points(12)

		if rotated {
			l.TextStyle[i].Rotation = math.Pi / 2
		}
	}

	f.Add(l)

	return nil
}

// FractionText places a label at axis-fraction coordinates. The axis
// limits must be fixed first.
func (f *Figure) FractionText(fx, fy float64, label string) error {
	x := f.X.Min + fx*(f.X.Max-f.X.Min)
	y := f.Y.Min + fy*(f.Y.Max-f.Y.Min)

	return f.Text(x, y, label, false)
}

// LegendAt anchors the legend at an axis-fraction position measured
// from the bottom-left corner.
func (f *Figure) LegendAt(fx, fy float64) {
	f.Legend.Top = true
	f.Legend.Left = true
	f.Legend.XOffs = f.style.Width * vg.Length(fx)
	f.Legend.YOffs = -f.style.Height * vg.Length(1-fy)
}

// SavePNG renders the figure to a PNG at the styled size and
// resolution, creating the output directory when needed.
func (f *Figure) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("figure: %w", err)
		}
	}

	c := vgimg.NewWith(
		vgimg.UseWH(f.style.Width, f.style.Height),
		vgimg.UseDPI(f.style.DPI),
	)

	f.Draw(draw.New(c))

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("figure: writing %s: %w", path, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("figure: %w", err)
	}

	return nil
}

func toXYs(s dataset.Series) plotter.XYs {
	xys := make(plotter.XYs, s.Len())
	for i := range xys {
		xys[i] = plotter.XY{X: s.X[i], Y: s.Y[i]}
	}

	return xys
}

// errData adapts a series with symmetric errors to the error bar
// plotter.
type errData struct {
	plotter.XYs
	errs []float64
}

func (e errData) YError(i int) (float64, float64) {
	return e.errs[i], e.errs[i]
}
