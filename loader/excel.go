package loader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet holds one worksheet as named numeric columns. Column order follows
// the header row; cells that do not parse as numbers are dropped from
// their column, so columns of unequal length are possible when a sheet
// mixes series of different extents.
type Sheet struct {
	Name    string
	Headers []string
	Columns map[string][]float64
}

// Column returns a named column or an error naming the available headers.
func (s *Sheet) Column(name string) ([]float64, error) {
	col, ok := s.Columns[name]
	if !ok {
		return nil, fmt.Errorf("loader: sheet %q has no column %q (have %s)",
			s.Name, name, strings.Join(s.Headers, ", "))
	}

	return col, nil
}

// SheetNames lists the worksheets of a workbook.
func SheetNames(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// Excel reads one worksheet. The first row is the header row; every
// following row contributes to the columns whose cells hold numbers.
func Excel(path, sheet string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("loader: sheet %q in %s: %w", sheet, path, err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("loader: sheet %q in %s is empty", sheet, path)
	}

	out := &Sheet{
		Name:    sheet,
		Headers: append([]string(nil), rows[0]...),
		Columns: make(map[string][]float64, len(rows[0])),
	}

	for _, h := range out.Headers {
		out.Columns[h] = nil
	}

	for _, row := range rows[1:] {
		for c, cell := range row {
			if c >= len(out.Headers) {
				break
			}

			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				continue
			}

			h := out.Headers[c]
			out.Columns[h] = append(out.Columns[h], v)
		}
	}

	return out, nil
}

// ExcelStrings reads a worksheet as raw text cells, header row included.
// The benten standard-sample sheet mixes label columns (sample name,
// pretreatment) with numeric ones and is decoded downstream.
func ExcelStrings(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("loader: sheet %q in %s: %w", sheet, path, err)
	}

	return rows, nil
}
