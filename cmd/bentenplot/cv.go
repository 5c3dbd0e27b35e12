package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot/vg"

	"github.com/spring8-benten/bentenplot/figure"
	"github.com/spring8-benten/bentenplot/loader"
)

var cvOpts struct {
	file  string
	sheet string
	out   string
}

var cvCmd = &cobra.Command{
	Use:   "cv",
	Short: "Cyclic voltammetry figures",
}

var cvCurveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Current against potential over one cycle",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := dataPath(cvOpts.file)

		sheets, err := loader.SheetNames(path)
		if err != nil {
			return err
		}

		logger.Info("reading data",
			zap.String("path", path),
			zap.String("sheet", cvOpts.sheet),
			zap.Strings("available_sheets", sheets))

		sheet, err := loader.Excel(path, cvOpts.sheet)
		if err != nil {
			return err
		}

		s, err := sheetSeries(sheet, "Ewe/V", "<I>/mA")
		if err != nil {
			return err
		}

		f := newFigure(figure.Style{LegendSize: vg.Points(18)})
		f.Labels("", "Ewe vs. RHE (V)", "⟨I⟩ (mA)")
		f.Grid(true, true)

		err = f.Line(s, figure.LineOpts{
			Color: figure.Color("black"),
			Width: vg.Points(1.5),
		})
		if err != nil {
			return err
		}

		return save(f, cvOpts.out)
	},
}

func init() {
	fl := cvCurveCmd.Flags()
	fl.StringVar(&cvOpts.file, "file", "cv_TEC10V30E-CVdata.xlsx", "potentiostat workbook")
	fl.StringVar(&cvOpts.sheet, "sheet", "TEC10V30E", "worksheet name")
	fl.StringVar(&cvOpts.out, "out", "cv_curve.png", "output file name")

	cvCmd.AddCommand(cvCurveCmd)
}
