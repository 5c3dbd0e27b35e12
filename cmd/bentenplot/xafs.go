package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/spring8-benten/bentenplot/dataset"
	"github.com/spring8-benten/bentenplot/figure"
	"github.com/spring8-benten/bentenplot/interp"
	"github.com/spring8-benten/bentenplot/xafs"
)

var xafsCmd = &cobra.Command{
	Use:   "xafs",
	Short: "X-ray absorption fine structure figures",
}

var xafsNormOpts struct {
	file   string
	out    string
	sample string
	xMin   float64
	xMax   float64
}

var xafsNormCmd = &cobra.Command{
	Use:   "norm",
	Short: "Normalized absorption spectrum",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(xafsNormOpts.file)
		logger.Info("reading data", zap.String("path", path))

		s, err := xafs.ReadNorm(path)
		if err != nil {
			return err
		}

		f := newFigure(figure.Style{LabelSize: vg.Points(20), LegendSize: vg.Points(20)})
		f.Labels("", "Energy (eV)", "Normalized μ(E) (a.u.)")
		f.XRange(xafsNormOpts.xMin, xafsNormOpts.xMax)
		f.X.Tick.Marker = figure.CommaTicks(0)
		f.Grid(true, true)

		err = f.Line(s, figure.LineOpts{
			Color:  figure.Color("black"),
			Legend: xafsNormOpts.sample,
		})
		if err != nil {
			return err
		}

		return save(f, xafsNormOpts.out)
	},
}

var xafsChiKOpts struct {
	file   string
	out    string
	sample string
}

var xafsChiKCmd = &cobra.Command{
	Use:   "chik",
	Short: "k²-weighted EXAFS oscillations",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(xafsChiKOpts.file)
		logger.Info("reading data", zap.String("path", path))

		s, err := xafs.ReadChiK(path)
		if err != nil {
			return err
		}

		f := newFigure(figure.Style{LabelSize: vg.Points(20), LegendSize: vg.Points(20)})
		f.Labels("", "Wavenumber (Å⁻¹)", "k²χ(k) (Å⁻²)")
		f.XRange(0, 17)
		f.YRange(-0.8, 1.0)
		f.Grid(true, true)

		if err := f.Line(s, figure.LineOpts{Color: figure.Color("black")}); err != nil {
			return err
		}

		return save(f, xafsChiKOpts.out)
	},
}

var xafsChiROpts struct {
	file     string
	out      string
	fromChiK string
	kMin     float64
	kMax     float64
}

var xafsChiRCmd = &cobra.Command{
	Use:   "chir",
	Short: "Radial distribution magnitude",
	Long: `Plots |χ(R)| from a .chir export. With --from-chik the radial
distribution is computed here instead: the k²χ(k) column is windowed
between --kmin and --kmax with Hann sills and Fourier transformed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			s   dataset.Series
			err error
		)

		if xafsChiROpts.fromChiK != "" {
			path := dataPath(xafsChiROpts.fromChiK)
			logger.Info("reading data", zap.String("path", path))

			kchi, err := xafs.ReadChiK(path)
			if err != nil {
				return err
			}

			res, err := xafs.Transform(kchi.X, kchi.Y, xafs.Config{
				KMin: xafsChiROpts.kMin,
				KMax: xafsChiROpts.kMax,
			})
			if err != nil {
				return err
			}

			s = dataset.Series{X: res.R, Y: res.Mag}
		} else {
			path := dataPath(xafsChiROpts.file)
			logger.Info("reading data", zap.String("path", path))

			s, err = xafs.ReadChiR(path)
			if err != nil {
				return err
			}
		}

		f := newFigure(figure.Style{LabelSize: vg.Points(20), LegendSize: vg.Points(20)})
		f.Labels("", "Radial distance (Å)", "|χ(R)| (Å⁻³)")
		f.XRange(0, 6)
		f.Grid(true, true)

		if err := f.Line(s, figure.LineOpts{Color: figure.Color("black")}); err != nil {
			return err
		}

		return save(f, xafsChiROpts.out)
	},
}

var xafsChiKFitOpts struct {
	file string
	out  string
}

var xafsChiKFitCmd = &cobra.Command{
	Use:   "chik-fit",
	Short: "EXAFS shell fit in k space",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runXAFSFit(xafsChiKFitOpts.file, xafsChiKFitOpts.out,
			"Wavenumber (Å⁻¹)", "k²χ(k) (Å⁻²)", 0, 17, true)
	},
}

var xafsChiRFitOpts struct {
	file string
	out  string
}

var xafsChiRFitCmd = &cobra.Command{
	Use:   "chir-fit",
	Short: "EXAFS shell fit in R space",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runXAFSFit(xafsChiRFitOpts.file, xafsChiRFitOpts.out,
			"Radial distance (Å)", "|χ(R)| (Å⁻³)", 0, 6, false)
	},
}

func runXAFSFit(file, out, xLabel, yLabel string, xMin, xMax float64, clipY bool) error {
	path := dataPath(file)
	logger.Info("reading data", zap.String("path", path))

	exp, fit, err := xafs.ReadFitPair(path)
	if err != nil {
		return err
	}

	// Fit exports sample the model on a coarse grid; resample so the
	// dashed overlay draws smoothly.
	fit = smoothCurve(fit, 1000)

	f := newFigure(figure.Style{LabelSize: vg.Points(20), LegendSize: vg.Points(20)})
	f.Labels("", xLabel, yLabel)
	f.XRange(xMin, xMax)

	if clipY {
		f.YRange(-0.8, 1.0)
	}

	f.Grid(true, true)

	err = f.Line(exp, figure.LineOpts{
		Color:  figure.Color("black"),
		Width:  vg.Points(1.5),
		Alpha:  0.7,
		Legend: "Exp.",
	})
	if err != nil {
		return err
	}

	err = f.Line(fit, figure.LineOpts{
		Color:  figure.Color("red"),
		Width:  vg.Points(1.5),
		Dashes: figure.Dashes("--"),
		Alpha:  0.7,
		Legend: "Fit",
	})
	if err != nil {
		return err
	}

	return save(f, out)
}

// smoothCurve evaluates the Hermite interpolant of a curve on a dense
// uniform grid. Curves too short to interpolate come back unchanged.
func smoothCurve(s dataset.Series, n int) dataset.Series {
	xs, ys, err := interp.Resample(s.X, s.Y, n)
	if err != nil {
		return s
	}

	return dataset.Series{X: xs, Y: ys}
}

func init() {
	fl := xafsNormCmd.Flags()
	fl.StringVar(&xafsNormOpts.file, "file", "xafs_TEC10E50E_20231031_H.nor", "Athena .nor export")
	fl.StringVar(&xafsNormOpts.out, "out", "xafs_norm.png", "output file name")
	fl.StringVar(&xafsNormOpts.sample, "sample", "TEC10E50E", "sample name for the legend")
	fl.Float64Var(&xafsNormOpts.xMin, "x-min", 11530, "energy range start in eV")
	fl.Float64Var(&xafsNormOpts.xMax, "x-max", 11615, "energy range end in eV")

	fl = xafsChiKCmd.Flags()
	fl.StringVar(&xafsChiKOpts.file, "file", "xafs_TEC10E50E_20231031_H.chik", "Athena .chik export")
	fl.StringVar(&xafsChiKOpts.out, "out", "xafs_chik.png", "output file name")
	fl.StringVar(&xafsChiKOpts.sample, "sample", "TEC10E50E", "sample name")

	fl = xafsChiRCmd.Flags()
	fl.StringVar(&xafsChiROpts.file, "file", "xafs_TEC10E50E_20231031_H.chir", "Athena .chir export")
	fl.StringVar(&xafsChiROpts.out, "out", "xafs_chir.png", "output file name")
	fl.StringVar(&xafsChiROpts.fromChiK, "from-chik", "", "compute |χ(R)| from this .chik file instead")
	fl.Float64Var(&xafsChiROpts.kMin, "kmin", 3, "transform window start in Å⁻¹")
	fl.Float64Var(&xafsChiROpts.kMax, "kmax", 15, "transform window end in Å⁻¹")

	fl = xafsChiKFitCmd.Flags()
	fl.StringVar(&xafsChiKFitOpts.file, "file", "xafs_TEC10E50E_H_03.k2", "Artemis .k2 fit export")
	fl.StringVar(&xafsChiKFitOpts.out, "out", "xafs_chik_fit.png", "output file name")

	fl = xafsChiRFitCmd.Flags()
	fl.StringVar(&xafsChiRFitOpts.file, "file", "xafs_TEC10E50E_H_03.rmag", "Artemis .rmag fit export")
	fl.StringVar(&xafsChiRFitOpts.out, "out", "xafs_chir_fit.png", "output file name")

	xafsCmd.AddCommand(xafsNormCmd, xafsChiKCmd, xafsChiRCmd, xafsChiKFitCmd, xafsChiRFitCmd)
}
