package loader

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spring8-benten/bentenplot/dataset"
)

// Options controls text parsing.
type Options struct {
	// Comment marks lines to skip when a line starts with it. Defaults
	// to "#". Set to "-" to disable comment skipping.
	Comment string

	// SkipLines drops this many leading lines regardless of content
	// (fixed-size instrument headers).
	SkipLines int

	// Comma switches from whitespace-delimited to comma-separated
	// fields.
	Comma bool

	// XCol and YCol select the zero-based columns for X and Y.
	XCol int
	YCol int

	// YErrCol selects an optional error column; negative means none.
	YErrCol int
}

func normalizeOptions(opts Options) Options {
	if opts.Comment == "" {
		opts.Comment = "#"
	}

	if opts.Comment == "-" {
		opts.Comment = ""
	}

	if opts.YCol == 0 && opts.XCol == 0 {
		opts.YCol = 1
	}

	return opts
}

// Series reads one X/Y curve from a text file.
func Series(path string, opts Options) (dataset.Series, error) {
	opts = normalizeOptions(opts)

	maxCol := opts.XCol
	if opts.YCol > maxCol {
		maxCol = opts.YCol
	}

	if opts.YErrCol > maxCol {
		maxCol = opts.YErrCol
	}

	rows, err := readRows(path, opts, maxCol+1)
	if err != nil {
		return dataset.Series{}, err
	}

	out := dataset.Series{}
	for _, row := range rows {
		out.X = append(out.X, row[opts.XCol])
		out.Y = append(out.Y, row[opts.YCol])

		if opts.YErrCol > 0 {
			out.YErr = append(out.YErr, row[opts.YErrCol])
		}
	}

	return out, nil
}

// Table reads every numeric row with at least cols columns and returns
// them column-major.
func Table(path string, opts Options, cols int) ([][]float64, error) {
	opts = normalizeOptions(opts)

	rows, err := readRows(path, opts, cols)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, cols)
	for _, row := range rows {
		for c := 0; c < cols; c++ {
			out[c] = append(out[c], row[c])
		}
	}

	return out, nil
}

// readRows scans a text file and returns all rows that parse cleanly into
// at least need numeric fields. Malformed rows are skipped, matching the
// behavior the figure pipelines rely on for mixed metadata/data files.
func readRows(path string, opts Options, need int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer f.Close()

	var rows [][]float64

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++

		line := sc.Text()
		if lineNo <= opts.SkipLines {
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		if opts.Comment != "" && strings.HasPrefix(line, opts.Comment) {
			continue
		}

		row, ok := parseRow(line, opts.Comma, need)
		if !ok {
			continue
		}

		rows = append(rows, row)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("loader: reading %s: %w", path, err)
	}

	return rows, nil
}

func parseRow(line string, comma bool, need int) ([]float64, bool) {
	var fields []string
	if comma {
		fields = strings.Split(line, ",")
	} else {
		fields = strings.Fields(line)
	}

	if len(fields) < need {
		return nil, false
	}

	row := make([]float64, need)
	for i := 0; i < need; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(fields[i]), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			// Covers header rows, units rows and NAN markers alike.
			return nil, false
		}

		row[i] = v
	}

	return row, true
}
