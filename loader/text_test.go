package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestSeriesWhitespace(t *testing.T) {
	path := writeFile(t, "curve.nor", `# comment line
# another comment
11530.0  0.012
11531.0  0.034
not a number row
11532.0  0.056
`)

	s, err := Series(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{11530, 11531, 11532}, s.X)
	assert.Equal(t, 0.034, s.Y[1])
}

func TestSeriesColumnSelection(t *testing.T) {
	path := writeFile(t, "curve.chik", `#  k  chi  k1chi  k2chi
0.1  1  2  3
0.2  4  5  6
`)

	s, err := Series(path, Options{YCol: 3})
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 6}, s.Y)
}

func TestSeriesCommaSeparated(t *testing.T) {
	path := writeFile(t, "haxpes.csv", `# Binding energy, Intensity
78.0, 120.5
77.9, 121.0
`)

	s, err := Series(path, Options{Comma: true})
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 121.0, s.Y[1])
}

func TestSeriesSkipLinesAndNaN(t *testing.T) {
	path := writeFile(t, "profile.txt", `title
units
run info
more info
0.1  100.0
0.2  NAN
0.3  50.0
`)

	s, err := Series(path, Options{SkipLines: 4})
	require.NoError(t, err)

	assert.Equal(t, []float64{0.1, 0.3}, s.X)
}

func TestSeriesWithErrColumn(t *testing.T) {
	path := writeFile(t, "fit.dat", `0.3 10 0.5 9.8 0.4
0.4 20 0.6 19.5 0.5
`)

	s, err := Series(path, Options{YCol: 1, YErrCol: 2})
	require.NoError(t, err)

	assert.Equal(t, []float64{0.5, 0.6}, s.YErr)
}

func TestTable(t *testing.T) {
	path := writeFile(t, "hist.dat", `header row to skip
1e-9 0 2.0 0.1 0.5 0.2 0.01
2e-9 0 3.0 0.2 0.6 0.5 0.02
`)

	cols, err := Table(path, Options{SkipLines: 1}, 7)
	require.NoError(t, err)

	require.Len(t, cols, 7)
	assert.Equal(t, []float64{2.0, 3.0}, cols[2])
	assert.Equal(t, []float64{0.2, 0.5}, cols[5])
}

func TestSeriesMissingFile(t *testing.T) {
	_, err := Series(filepath.Join(t.TempDir(), "absent.txt"), Options{})
	assert.Error(t, err)
}
