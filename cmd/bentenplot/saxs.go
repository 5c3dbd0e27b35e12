package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/spring8-benten/bentenplot/dataset"
	"github.com/spring8-benten/bentenplot/figure"
	"github.com/spring8-benten/bentenplot/saxs"
)

var saxsCmd = &cobra.Command{
	Use:   "saxs",
	Short: "Small-angle X-ray scattering figures",
}

var saxsProfileOpts struct {
	files []string
	names []string
	out   string
}

var saxsProfileColors = []string{"blue", "red", "green"}

var saxsProfileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Log-log intensity profiles against simulated particles",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := newFigure(figure.Style{LabelSize: vg.Points(18)})
		f.Labels("", "Q (nm⁻¹)", "Intensity (a.u.)")
		f.XRange(0.1, 10)
		f.YRange(1e-1, 1e7)
		f.LogX()
		f.LogY()
		f.X.Tick.Marker = figure.DecadeTicks()
		f.Grid(true, true)

		for i, name := range saxsProfileOpts.files {
			path := dataPath(name)
			logger.Info("reading data", zap.String("path", path))

			s, err := saxs.Profile(path)
			if err != nil {
				return err
			}

			err = f.Line(s, figure.LineOpts{
				Color:  figure.Color(saxsProfileColors[i%len(saxsProfileColors)]),
				Legend: seriesName(saxsProfileOpts.names, saxsProfileOpts.files, i),
			})
			if err != nil {
				return err
			}
		}

		return save(f, saxsProfileOpts.out)
	},
}

var saxsFitOpts struct {
	file string
	out  string
}

var saxsFitCmd = &cobra.Command{
	Use:   "fit",
	Short: "Measured and Monte Carlo fitted scattering profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(saxsFitOpts.file)
		logger.Info("reading data", zap.String("path", path))

		fit, err := saxs.ReadFit(path)
		if err != nil {
			return err
		}

		f := newFigure(figure.Style{
			LabelSize:  vg.Points(20),
			TickSize:   vg.Points(16),
			LegendSize: vg.Points(20),
		})
		f.Labels("", "Q (nm⁻¹)", "I ((m sr)⁻¹)")
		f.XRange(0.3, 4)
		f.LogX()
		f.LogY()
		f.X.Tick.Marker = figure.DecadeTicks()
		f.Grid(true, true)

		err = f.ErrorBars(fit.Measured, figure.MarkerOpts{
			Color:  figure.Color("black"),
			Radius: vg.Points(3),
			Square: true,
			Alpha:  0.7,
			Legend: "Measured",
		})
		if err != nil {
			return err
		}

		err = f.ErrorBars(fit.Fitted, figure.MarkerOpts{
			Color:  figure.Color("red"),
			Radius: vg.Points(2.5),
			Alpha:  0.7,
			Legend: "Fitted",
		})
		if err != nil {
			return err
		}

		return save(f, saxsFitOpts.out)
	},
}

var saxsRadiusOpts struct {
	file string
	out  string
}

var saxsRadiusCmd = &cobra.Command{
	Use:   "radius",
	Short: "Monte Carlo size histogram with observability limit and CDF",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(saxsRadiusOpts.file)
		logger.Info("reading data", zap.String("path", path))

		h, err := saxs.ReadHistogram(path)
		if err != nil {
			return err
		}

		f := newFigure(figure.Style{LabelSize: vg.Points(18), LegendSize: vg.Points(16)})
		f.Labels("", "radius (nm)", "[Rel.] Volume Fraction")
		f.XRange(0, 10)
		f.YRange(0, 10)
		f.Grid(true, true)

		err = f.Bars(h.Radius, h.Fraction, 0.2, figure.Color("darkkhaki"), 0.6, "MC size histogram")
		if err != nil {
			return err
		}

		fractions := dataset.Series{X: h.Radius, Y: h.Fraction, YErr: h.FractionErr}
		err = f.ErrorBars(fractions, figure.MarkerOpts{
			Color:  figure.Color("darkkhaki"),
			Radius: vg.Points(2.5),
		})
		if err != nil {
			return err
		}

		obs, err := dataset.New(h.Radius, h.Observability)
		if err != nil {
			return err
		}

		err = f.Line(obs, figure.LineOpts{
			Color:  figure.Color("red"),
			Legend: "Minimum visibility limit",
		})
		if err != nil {
			return err
		}

		err = f.Scatter(obs, figure.MarkerOpts{
			Color:  figure.Color("red"),
			Radius: vg.Points(2.5),
			Square: true,
		})
		if err != nil {
			return err
		}

		// The CDF runs 0 to 1.3 on its own axis in the source figures.
		// A single axis here, so rescale it onto the fraction range.
		const cdfScale = 10.0 / 1.3
		cdf := dataset.Series{X: h.Radius, Y: make([]float64, len(h.CDF)), YErr: make([]float64, len(h.CDFErr))}
		for i := range h.CDF {
			cdf.Y[i] = h.CDF[i] * cdfScale
			cdf.YErr[i] = h.CDFErr[i] * cdfScale
		}

		cdfLine, err := dataset.New(cdf.X, cdf.Y)
		if err != nil {
			return err
		}

		err = f.Line(cdfLine, figure.LineOpts{Color: figure.Color("green")})
		if err != nil {
			return err
		}

		err = f.ErrorBars(cdf, figure.MarkerOpts{
			Color:  figure.Color("green"),
			Radius: vg.Points(2.5),
			Legend: "CDF",
		})
		if err != nil {
			return err
		}

		f.LegendAt(0.55, 0.96)

		return save(f, saxsRadiusOpts.out)
	},
}

func init() {
	fl := saxsProfileCmd.Flags()
	fl.StringSliceVar(&saxsProfileOpts.files, "files", []string{
		"saxs_Particle1.33.05_2024-11-21_17-24-29_profileV.txt",
		"saxs_Particle1.33.38_2024-11-21_17-25-43_profileV.txt",
		"saxs_TEC10V30E_As_FE_00001__sum_Connected.txt",
	}, "scattering profile files")
	fl.StringSliceVar(&saxsProfileOpts.names, "names", []string{
		"Simulated: Particle Radius 1.33 ± 0.05 nm",
		"Simulated: Particle Radius 1.33 ± 0.38 nm",
		"Experimental: TEC10V30E",
	}, "legend names, one per file")
	fl.StringVar(&saxsProfileOpts.out, "out", "saxs_profile.png", "output file name")

	fl = saxsFitCmd.Flags()
	fl.StringVar(&saxsFitOpts.file, "file",
		"saxs_TEC10V30E_As_FE_00001__sum_Connected 2023-02-09_13-41-55_fit.dat",
		"Monte Carlo fit output")
	fl.StringVar(&saxsFitOpts.out, "out", "saxs_mcsas_profile.png", "output file name")

	fl = saxsRadiusCmd.Flags()
	fl.StringVar(&saxsRadiusOpts.file, "file",
		"saxs_TEC10V30E_As_FE_00001__sum_Connected 2023-02-09_13-41-55_hist-radius-True-0(nm)-10(nm)-50-lin-vol.dat",
		"Monte Carlo size histogram output")
	fl.StringVar(&saxsRadiusOpts.out, "out", "saxs_mcsas_radius.png", "output file name")

	saxsCmd.AddCommand(saxsProfileCmd, saxsFitCmd, saxsRadiusCmd)
}
