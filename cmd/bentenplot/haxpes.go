package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/spring8-benten/bentenplot/figure"
	"github.com/spring8-benten/bentenplot/haxpes"
	"github.com/spring8-benten/bentenplot/loader"
	"github.com/spring8-benten/bentenplot/shirley"
)

var haxpesCmd = &cobra.Command{
	Use:   "haxpes",
	Short: "Hard X-ray photoelectron spectroscopy figures",
}

var haxpesSeriesColors = []string{"black", "red", "blue", "green"}

var haxpesPt4fOpts struct {
	files []string
	names []string
	out   string
}

var haxpesPt4fCmd = &cobra.Command{
	Use:   "pt4f",
	Short: "Shirley-corrected Pt 4f core-level spectra",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := newFigure(figure.Style{LegendSize: vg.Points(12)})
		f.Labels("", "Binding energy (eV)", "Intensity (a.u.)")
		f.XRange(68, 78)
		f.YRange(-0.1, 1.3)
		f.X.Tick.Marker = figure.StepTicks(1, 2)
		f.InvertX()
		f.Grid(true, false)

		for i, name := range haxpesPt4fOpts.files {
			path := dataPath(name)
			logger.Info("reading data", zap.String("path", path))

			s, err := loader.Series(path, loader.Options{Comma: true})
			if err != nil {
				return err
			}

			res, err := shirley.Correct(s.X, s.Y, shirley.Config{EnergyMin: 78, EnergyMax: 68})
			if err != nil {
				return err
			}

			if !res.Converged {
				logger.Warn("Shirley background did not converge",
					zap.String("file", name),
					zap.Int("iterations", res.Iterations))
			}

			s.Y = res.Corrected
			s = s.NormalizeMax()

			err = f.Line(s, figure.LineOpts{
				Color:  figure.Color(seriesColor(i)),
				Width:  vg.Points(1.5),
				Alpha:  0.7,
				Legend: seriesName(haxpesPt4fOpts.names, haxpesPt4fOpts.files, i),
			})
			if err != nil {
				return err
			}
		}

		// Display left is the high binding energy side.
		if err := f.FractionText(0.96, 0.94, "Pt 4f"); err != nil {
			return err
		}

		f.LegendAt(0.01, 0.93)

		return save(f, haxpesPt4fOpts.out)
	},
}

var haxpesVBOpts struct {
	files []string
	names []string
	out   string
}

var haxpesVBCmd = &cobra.Command{
	Use:   "vb",
	Short: "Valence band spectra",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := newFigure(figure.Style{LegendSize: vg.Points(12)})
		f.Labels("", "Binding energy (eV)", "Intensity (a.u.)")
		f.XRange(-1, 14)
		f.YRange(-0.1, 1.2)
		f.X.Tick.Marker = figure.StepTicks(1, 2)
		f.InvertX()
		f.Grid(true, false)

		for i, name := range haxpesVBOpts.files {
			path := dataPath(name)
			logger.Info("reading data", zap.String("path", path))

			s, err := loader.Series(path, loader.Options{Comma: true})
			if err != nil {
				return err
			}

			s = s.NormalizeMax()

			err = f.Line(s, figure.LineOpts{
				Color:  figure.Color(seriesColor(i)),
				Width:  vg.Points(1.5),
				Alpha:  0.7,
				Legend: seriesName(haxpesVBOpts.names, haxpesVBOpts.files, i),
			})
			if err != nil {
				return err
			}
		}

		if err := f.FractionText(0.96, 0.94, "Valence band"); err != nil {
			return err
		}

		f.LegendAt(0.01, 0.93)

		return save(f, haxpesVBOpts.out)
	},
}

var haxpesCalibOpts struct {
	target       string
	reference    string
	targetName   string
	refName      string
	photonEnergy float64
	offsetEnergy float64
	upperLimit   float64
	out          string
}

var haxpesCalibCmd = &cobra.Command{
	Use:   "calib",
	Short: "Fermi-edge energy calibration against a reference sample",
	RunE: func(cmd *cobra.Command, args []string) error {
		targetPath := dataPath(haxpesCalibOpts.target)
		refPath := dataPath(haxpesCalibOpts.reference)

		logger.Info("reading data", zap.String("target", targetPath), zap.String("reference", refPath))

		refEnergy, err := haxpes.PhotonEnergy(refPath)
		if err != nil {
			return err
		}

		target, err := haxpes.Normalized(targetPath,
			haxpesCalibOpts.photonEnergy, haxpesCalibOpts.offsetEnergy, haxpesCalibOpts.upperLimit)
		if err != nil {
			return err
		}

		ref, err := haxpes.Normalized(refPath,
			refEnergy, haxpesCalibOpts.offsetEnergy, haxpesCalibOpts.upperLimit)
		if err != nil {
			return err
		}

		offset, targetEdge, refEdge, err := haxpes.EnergyOffset(target, ref, haxpes.EdgeConfig{})
		if err != nil {
			return err
		}

		logger.Info("leading edges interpolated",
			zap.Float64("target_edge_eV", targetEdge),
			zap.Float64("reference_edge_eV", refEdge),
			zap.Float64("energy_offset_eV", offset))

		f := newFigure(figure.Style{LabelSize: vg.Points(20)})
		f.Labels("", "Binding energy (eV)", "Intensity (a.u.)")
		f.XRange(-1.0, 1.5)
		f.YRange(-0.1, 1.2)
		f.InvertX()
		f.Grid(true, false)

		err = f.Line(ref, figure.LineOpts{
			Color:  figure.Color("red"),
			Alpha:  0.7,
			Legend: "Reference [" + haxpesCalibOpts.refName + "]",
		})
		if err != nil {
			return err
		}

		err = f.Line(target, figure.LineOpts{
			Color:  figure.Color("black"),
			Alpha:  0.7,
			Legend: "Target [" + haxpesCalibOpts.targetName + "]",
		})
		if err != nil {
			return err
		}

		err = f.Line(target.OffsetX(offset), figure.LineOpts{
			Color:  figure.Color("black"),
			Dashes: figure.Dashes("--"),
			Alpha:  0.7,
			Legend: "Target with energy corr.",
		})
		if err != nil {
			return err
		}

		level := ref.Clone()
		for i := range level.Y {
			level.Y[i] = 0.4
		}

		err = f.Line(level, figure.LineOpts{
			Color:  figure.Color("green"),
			Width:  vg.Points(2.5),
			Dashes: figure.Dashes(":"),
			Alpha:  0.9,
			Legend: "Interpolated line (0.4)",
		})
		if err != nil {
			return err
		}

		if err := f.FractionText(0.30, 0.93, "Valence band"); err != nil {
			return err
		}

		f.LegendAt(0.01, 0.35)

		return save(f, haxpesCalibOpts.out)
	},
}

func seriesColor(i int) string {
	return haxpesSeriesColors[i%len(haxpesSeriesColors)]
}

// seriesName pairs legend names with files, falling back to the file
// stem when fewer names than files are given.
func seriesName(names, files []string, i int) string {
	if i < len(names) {
		return names[i]
	}

	name := files[i]
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}

	return name
}

func init() {
	fl := haxpesPt4fCmd.Flags()
	fl.StringSliceVar(&haxpesPt4fOpts.files, "files", []string{
		"haxpes_Pt4f_TEC10F50E_H_0001.csv",
		"haxpes_Pt4f_TEC10F50E-HT_H_0001.csv",
		"haxpes_Pt4f_TEC10E50E_H_0001.csv",
		"haxpes_Pt4f_TEC10EA50E_H_0001.csv",
	}, "core-level CSV exports")
	fl.StringSliceVar(&haxpesPt4fOpts.names, "names", []string{
		"TEC10F50E", "TEC10F50E-HT", "TEC10E50E", "TEC10EA50E",
	}, "legend names, one per file")
	fl.StringVar(&haxpesPt4fOpts.out, "out", "haxpes_pt4f.png", "output file name")

	fl = haxpesVBCmd.Flags()
	fl.StringSliceVar(&haxpesVBOpts.files, "files", []string{
		"haxpes_VB_TEC10F50E_H_0001.csv",
		"haxpes_VB_TEC10F50E-HT_H_0001.csv",
		"haxpes_VB_TEC10E50E_H_0001.csv",
		"haxpes_VB_TEC10EA50E_H_0001.csv",
	}, "valence band CSV exports")
	fl.StringSliceVar(&haxpesVBOpts.names, "names", []string{
		"TEC10F50E", "TEC10F50E-HT", "TEC10E50E", "TEC10EA50E",
	}, "legend names, one per file")
	fl.StringVar(&haxpesVBOpts.out, "out", "haxpes_vb.png", "output file name")

	fl = haxpesCalibCmd.Flags()
	fl.StringVar(&haxpesCalibOpts.target, "target", "haxpes_VB_TEC36F52_0001.txt", "target analyzer export")
	fl.StringVar(&haxpesCalibOpts.reference, "reference", "haxpes_VB_10VE_0001.txt", "reference analyzer export")
	fl.StringVar(&haxpesCalibOpts.targetName, "target-name", "TEC36F52", "target sample name")
	fl.StringVar(&haxpesCalibOpts.refName, "reference-name", "10V", "reference sample name")
	fl.Float64Var(&haxpesCalibOpts.photonEnergy, "photon-energy", 7940.0, "incident photon energy in eV")
	fl.Float64Var(&haxpesCalibOpts.offsetEnergy, "offset-energy", 0.02, "pre-applied energy offset in eV")
	fl.Float64Var(&haxpesCalibOpts.upperLimit, "upper-limit", 13.0, "binding energy cut in eV")
	fl.StringVar(&haxpesCalibOpts.out, "out", "haxpes_energy_calibration.png", "output file name")

	haxpesCmd.AddCommand(haxpesPt4fCmd, haxpesVBCmd, haxpesCalibCmd)
}
