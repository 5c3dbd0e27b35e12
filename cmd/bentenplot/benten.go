package main

import (
	"image/color"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/spring8-benten/bentenplot/benten"
	"github.com/spring8-benten/bentenplot/dataset"
	"github.com/spring8-benten/bentenplot/figure"
	"github.com/spring8-benten/bentenplot/loader"
)

var bentenCmd = &cobra.Command{
	Use:   "benten",
	Short: "Standard sample comparison figures from the shared database",
}

var bentenSizeOpts struct {
	file  string
	sheet string
	out   string
}

var bentenSizeCmd = &cobra.Command{
	Use:   "size",
	Short: "Particle size by SAXS against Scherrer size by XRD",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBentenTransitions(bentenSizeOpts.file, bentenSizeOpts.sheet, bentenSizeOpts.out,
			benten.MetricScherrerSize)
	},
}

var bentenStrainOpts struct {
	file  string
	sheet string
	out   string
}

var bentenStrainCmd = &cobra.Command{
	Use:   "strain",
	Short: "Particle size by SAXS against lattice strain by XRD",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBentenTransitions(bentenStrainOpts.file, bentenStrainOpts.sheet, bentenStrainOpts.out,
			benten.MetricLatticeStrain)
	},
}

func runBentenTransitions(file, sheet, out string, metric benten.Metric) error {
	path := dataPath(file)

	sheets, err := loader.SheetNames(path)
	if err != nil {
		return err
	}

	logger.Info("reading data",
		zap.String("path", path),
		zap.String("sheet", sheet),
		zap.Strings("available_sheets", sheets))

	records, err := benten.ReadRecords(path, sheet)
	if err != nil {
		return err
	}

	transitions := benten.Transitions(records, metric)

	logger.Info("complete pretreatment series found", zap.Int("samples", len(transitions)))

	var title, yLabel string
	switch metric {
	case benten.MetricScherrerSize:
		title = "Transition of Particle and Scherrer Sizes"
		yLabel = "Scherrer Size by XRD (nm)"
	default:
		title = "Transition of Particle Size and Lattice Strain"
		yLabel = "Lattice Strain"
	}

	f := newFigure(figure.Style{LegendSize: vg.Points(12)})
	f.Labels(title, "Particle Size by SAXS (nm)", yLabel)
	f.Grid(true, true)

	var nPt, nPtCo int
	for _, tr := range transitions {
		if tr.PtCo {
			nPtCo++
		} else {
			nPt++
		}
	}

	warm := figure.Warm(nPt)
	cool := figure.Cool(nPtCo)

	if metric == benten.MetricScherrerSize {
		const maxLimit = 13.0
		f.XRange(0, maxLimit)
		f.YRange(0, maxLimit)

		guide, err := dataset.New([]float64{0, maxLimit}, []float64{0, maxLimit})
		if err != nil {
			return err
		}

		err = f.Line(guide, figure.LineOpts{
			Color:  figure.Color("gray"),
			Width:  vg.Points(0.7),
			Dashes: figure.Dashes("--"),
			Alpha:  0.7,
		})
		if err != nil {
			return err
		}
	}

	var iPt, iPtCo int
	for _, tr := range transitions {
		var c color.Color
		square := tr.PtCo
		if tr.PtCo {
			c = cool[iPtCo]
			iPtCo++
		} else {
			c = warm[iPt]
			iPt++
		}

		// Transition traces run from the as-made state to each treatment.
		steps := []struct {
			to     benten.Point
			color  string
			dashes string
		}{
			{tr.H, "darkgreen", ""},
			{tr.EC, "darkslategray", "--"},
		}

		for _, st := range steps {
			seg, err := dataset.New(
				[]float64{tr.AsMade.X, st.to.X},
				[]float64{tr.AsMade.Y, st.to.Y})
			if err != nil {
				return err
			}

			err = f.Line(seg, figure.LineOpts{
				Color:  figure.Color(st.color),
				Width:  vg.Points(0.7),
				Dashes: figure.Dashes(st.dashes),
				Alpha:  0.5,
			})
			if err != nil {
				return err
			}
		}

		points := dataset.Series{
			X: []float64{tr.AsMade.X, tr.H.X, tr.EC.X},
			Y: []float64{tr.AsMade.Y, tr.H.Y, tr.EC.Y},
		}

		err = f.Scatter(points, figure.MarkerOpts{
			Color:  c,
			Radius: vg.Points(2.5),
			Square: square,
			Alpha:  0.7,
			Legend: tr.Sample,
		})
		if err != nil {
			return err
		}

		if tr.XErr > 0 {
			bar, err := dataset.New(
				[]float64{tr.AsMade.X - tr.XErr, tr.AsMade.X + tr.XErr},
				[]float64{tr.AsMade.Y, tr.AsMade.Y})
			if err != nil {
				return err
			}

			err = f.Line(bar, figure.LineOpts{
				Color:  c,
				Width:  vg.Points(0.7),
				Dashes: figure.Dashes(":"),
				Alpha:  0.5,
			})
			if err != nil {
				return err
			}
		}
	}

	f.LegendAt(0.99, 0.97)

	return save(f, out)
}

func init() {
	fl := bentenSizeCmd.Flags()
	fl.StringVar(&bentenSizeOpts.file, "file", "fcbenten_standard_sample_data.xlsx", "standard sample workbook")
	fl.StringVar(&bentenSizeOpts.sheet, "sheet", benten.DefaultSheet, "worksheet name")
	fl.StringVar(&bentenSizeOpts.out, "out", "fcbenten_particle_size.png", "output file name")

	fl = bentenStrainCmd.Flags()
	fl.StringVar(&bentenStrainOpts.file, "file", "fcbenten_standard_sample_data.xlsx", "standard sample workbook")
	fl.StringVar(&bentenStrainOpts.sheet, "sheet", benten.DefaultSheet, "worksheet name")
	fl.StringVar(&bentenStrainOpts.out, "out", "fcbenten_lattice_strain.png", "output file name")

	bentenCmd.AddCommand(bentenSizeCmd, bentenStrainCmd)
}
