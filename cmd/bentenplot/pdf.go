package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/spring8-benten/bentenplot/dataset"
	"github.com/spring8-benten/bentenplot/figure"
	"github.com/spring8-benten/bentenplot/loader"
	"github.com/spring8-benten/bentenplot/peakfit"
	"github.com/spring8-benten/bentenplot/stitch"
)

var pdfCmd = &cobra.Command{
	Use:   "pdf",
	Short: "Pair distribution function figures",
}

var pdfSQOpts struct {
	file   string
	sample string
	out    string
}

var pdfSQCmd = &cobra.Command{
	Use:   "sq",
	Short: "Structure factor S(Q)",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(pdfSQOpts.file)
		logger.Info("reading data", zap.String("path", path))

		s, err := loader.Series(path, loader.Options{SkipLines: 2})
		if err != nil {
			return err
		}

		f := newFigure(figure.Style{LabelSize: vg.Points(20), LegendSize: vg.Points(20)})
		f.Labels("", "Q (Å⁻¹)", "S(Q)")
		f.XRange(0, 27)
		f.Grid(true, true)

		err = f.Line(s, figure.LineOpts{
			Color:  figure.Color("black"),
			Width:  vg.Points(2),
			Legend: pdfSQOpts.sample,
		})
		if err != nil {
			return err
		}

		return save(f, pdfSQOpts.out)
	},
}

var pdfGROpts struct {
	file   string
	sample string
	out    string
}

var pdfGRCmd = &cobra.Command{
	Use:   "gr",
	Short: "Reduced pair distribution function G(r)",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(pdfGROpts.file)
		logger.Info("reading data", zap.String("path", path))

		s, err := loader.Series(path, loader.Options{SkipLines: 2})
		if err != nil {
			return err
		}

		f := newFigure(figure.Style{LabelSize: vg.Points(20), LegendSize: vg.Points(20)})
		f.Labels("", "r (Å)", "G(r) (Å⁻²)")
		f.XRange(0, 63)
		f.Grid(true, true)

		err = f.Line(s, figure.LineOpts{
			Color:  figure.Color("black"),
			Legend: pdfGROpts.sample,
		})
		if err != nil {
			return err
		}

		return save(f, pdfGROpts.out)
	},
}

var pdfDataOpts struct {
	file string
	out  string
}

var pdfDataCmd = &cobra.Command{
	Use:   "data",
	Short: "Stitched detector bank data with background subtraction",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(pdfDataOpts.file)
		logger.Info("reading data", zap.String("path", path))

		raw, err := bankSegments(path, "raw_data")
		if err != nil {
			return err
		}

		background, err := bankSegments(path, "quartz_cap")
		if err != nil {
			return err
		}

		corrected, err := bankSegments(path, "corrected_data")
		if err != nil {
			return err
		}

		plan, err := stitch.NewPlan(raw, background, stitch.Config{})
		if err != nil {
			return err
		}

		logger.Debug("stitching plan",
			zap.Float64s("scales", plan.Scales),
			zap.Float64s("offsets", plan.Offsets))

		f := newFigure(figure.Style{LabelSize: vg.Points(18)})
		f.Labels("", "2θ (degree)", "Intensity (a.u.)")
		f.XRange(0, 55.5)
		f.YRange(1e-5, 1e-1)
		f.LogY()
		f.Grid(true, true)

		curves := []struct {
			segments []dataset.Series
			offsets  []float64
			color    string
			legend   string
		}{
			{raw, nil, "red", "Raw data"},
			{background, plan.Offsets, "blue", "Background"},
			{corrected, nil, "black", "Corrected data"},
		}

		for _, c := range curves {
			s, err := plan.Stitch(c.segments, c.offsets)
			if err != nil {
				return err
			}

			err = f.Line(s, figure.LineOpts{
				Color:  figure.Color(c.color),
				Alpha:  0.7,
				Legend: c.legend,
			})
			if err != nil {
				return err
			}
		}

		return save(f, pdfDataOpts.out)
	},
}

var pdfFitOpts struct {
	file      string
	out       string
	xMin      float64
	xMax      float64
	minSep    float64
	maxPeaks  int
	usedPeaks int
	fitXMax   float64
}

var pdfFitBandColors = []string{"blue", "red", "green", "brown", "cyan", "gray"}

var pdfFitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Gaussian decomposition of T(r) coordination peaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(pdfFitOpts.file)
		logger.Info("reading data", zap.String("path", path))

		s, err := loader.Series(path, loader.Options{})
		if err != nil {
			return err
		}

		res, err := peakfit.Fit(s.X, s.Y, peakfit.Config{
			Detect: peakfit.DetectOptions{
				MinX:          pdfFitOpts.xMin,
				MaxX:          pdfFitOpts.xMax,
				MinSeparation: pdfFitOpts.minSep,
				MaxCount:      pdfFitOpts.maxPeaks,
			},
		})
		if err != nil {
			return err
		}

		logger.Info("baseline fitted",
			zap.Float64("rho", res.Rho),
			zap.Float64("rho_err", res.RhoErr),
			zap.Float64("decay_amp", res.Decay.Amp),
			zap.Float64("decay_n", res.Decay.N),
			zap.Float64("decay_lambda", res.Decay.Lambda))

		for i, pk := range res.Peaks {
			logger.Info("peak fitted",
				zap.Int("peak", i+1),
				zap.Float64("position", pk.Position),
				zap.Float64("position_err", pk.PositionErr),
				zap.Float64("sigma", pk.Sigma),
				zap.Float64("sigma_err", pk.SigmaErr),
				zap.Float64("area", pk.Area),
				zap.Float64("area_err", pk.AreaErr))
		}

		f := newFigure(figure.Style{LabelSize: vg.Points(18), LegendSize: vg.Points(12)})
		f.Labels("", "r (Å)", "T(r) (Å⁻²)")
		f.XRange(0, 10)
		f.YRange(-10, 70)
		f.X.Tick.Marker = figure.StepTicks(1, 1)
		f.Grid(true, true)

		err = f.Line(s, figure.LineOpts{
			Color:  figure.Color("black"),
			Alpha:  0.8,
			Legend: "Experimental Data",
		})
		if err != nil {
			return err
		}

		const gridPoints = 1000
		lo, hi := s.X[0], s.X[len(s.X)-1]
		grid := make([]float64, gridPoints)
		for i := range grid {
			grid[i] = lo + (hi-lo)*float64(i)/float64(gridPoints-1)
		}

		total, _ := res.Curve(grid)
		fitted := dataset.Series{X: grid, Y: total}.ClipX(lo, pdfFitOpts.fitXMax)

		err = f.Line(fitted, figure.LineOpts{
			Color:  figure.Color("red"),
			Width:  vg.Points(1.5),
			Dashes: figure.Dashes("--"),
			Alpha:  0.7,
			Legend: "Gaussian + Baseline Fit",
		})
		if err != nil {
			return err
		}

		for i := range res.Peaks {
			if i >= pdfFitOpts.usedPeaks {
				break
			}

			bandX, bandY := res.PeakBand(i, grid)
			if len(bandX) == 0 {
				continue
			}

			zero := make([]float64, len(bandX))
			c := figure.Color(pdfFitBandColors[i%len(pdfFitBandColors)])
			label := fmt.Sprintf("Peak %d", i+1)
			if err := f.Fill(bandX, zero, bandY, c, 0.15, label); err != nil {
				return err
			}
		}

		return save(f, pdfFitOpts.out)
	},
}

// bankSegments reads the per-bank columns Twotheta1..7 and Count{i}/I0
// of one worksheet, stopping at the first missing bank.
func bankSegments(path, sheet string) ([]dataset.Series, error) {
	sh, err := loader.Excel(path, sheet)
	if err != nil {
		return nil, err
	}

	var segments []dataset.Series
	for i := 1; i <= 7; i++ {
		xcol := fmt.Sprintf("Twotheta%d", i)
		ycol := fmt.Sprintf("Count%d/I0", i)

		if _, ok := sh.Columns[xcol]; !ok {
			break
		}

		s, err := sheetSeries(sh, xcol, ycol)
		if err != nil {
			return nil, err
		}

		segments = append(segments, s)
	}

	if len(segments) == 0 {
		return nil, fmt.Errorf("sheet %q in %s has no Twotheta1 column", sheet, path)
	}

	return segments, nil
}

func init() {
	fl := pdfSQCmd.Flags()
	fl.StringVar(&pdfSQOpts.file, "file", "pdf_S_q_fqd.txt", "structure factor file")
	fl.StringVar(&pdfSQOpts.sample, "sample", "TEC10V30E", "legend name")
	fl.StringVar(&pdfSQOpts.out, "out", "pdf_sq.png", "output file name")

	fl = pdfGRCmd.Flags()
	fl.StringVar(&pdfGROpts.file, "file", "pdf_bigG_r.txt", "reduced PDF file")
	fl.StringVar(&pdfGROpts.sample, "sample", "TEC10V30E", "legend name")
	fl.StringVar(&pdfGROpts.out, "out", "pdf_Gr.png", "output file name")

	fl = pdfDataCmd.Flags()
	fl.StringVar(&pdfDataOpts.file, "file", "pdf_data.xlsx", "detector bank workbook")
	fl.StringVar(&pdfDataOpts.out, "out", "pdf_data.png", "output file name")

	fl = pdfFitCmd.Flags()
	fl.StringVar(&pdfFitOpts.file, "file", "pdf_T_r.txt", "total correlation function file")
	fl.Float64Var(&pdfFitOpts.xMin, "peak-min", 2.0, "lower bound of the peak search in Å")
	fl.Float64Var(&pdfFitOpts.xMax, "peak-max", 8.0, "upper bound of the peak search in Å")
	fl.Float64Var(&pdfFitOpts.minSep, "min-separation", 0.5, "minimum peak separation in Å")
	fl.IntVar(&pdfFitOpts.maxPeaks, "max-peaks", 6, "maximum number of fitted peaks")
	fl.IntVar(&pdfFitOpts.usedPeaks, "used-peaks", 5, "number of fitted peaks drawn as shaded bands")
	fl.Float64Var(&pdfFitOpts.fitXMax, "fit-max", 6.9, "right edge of the drawn fit curve in Å")
	fl.StringVar(&pdfFitOpts.out, "out", "pdf_tr_fit.png", "output file name")

	pdfCmd.AddCommand(pdfSQCmd, pdfGRCmd, pdfDataCmd, pdfFitCmd)
}
