package saxs

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

func TestProfile(t *testing.T) {
	path := writeFile(t, "profile.txt", `instrument header
run 42
columns: Q I
----
0.1  1000.0
0.2  NAN
0.3  250.0
`)

	s, err := Profile(path)
	require.NoError(t, err)

	// The NAN row is dropped.
	require.Equal(t, 2, s.Len())
	assert.Equal(t, []float64{0.1, 0.3}, s.X)
	assert.Equal(t, []float64{1000.0, 250.0}, s.Y)
}

func TestProfileEmpty(t *testing.T) {
	path := writeFile(t, "empty.txt", "h1\nh2\nh3\nh4\n")

	_, err := Profile(path)
	assert.Error(t, err)
}

func TestReadFit(t *testing.T) {
	path := writeFile(t, "fit.dat", `Q Imeas Emeas Ifit Efit
1.0e8  10.0 0.5 9.8 0.2
2.0e8  5.0  0.3 5.1 0.1
`)

	f, err := ReadFit(path)
	require.NoError(t, err)

	require.Equal(t, 2, f.Measured.Len())
	assert.InDelta(t, 0.1, f.Measured.X[0], 1e-12)
	assert.InDelta(t, 0.2, f.Fitted.X[1], 1e-12)
	assert.Equal(t, []float64{10.0, 5.0}, f.Measured.Y)
	assert.Equal(t, []float64{0.5, 0.3}, f.Measured.YErr)
	assert.Equal(t, []float64{9.8, 5.1}, f.Fitted.Y)
	assert.Equal(t, []float64{0.2, 0.1}, f.Fitted.YErr)
}

func TestReadHistogram(t *testing.T) {
	path := writeFile(t, "hist.dat", `radius width frac fracerr obs cdf cdferr
1.0e-9  0.1  0.4  0.05  0.01  0.4  0.05
2.0e-9  0.1  0.6  0.06  0.02  1.0  0.08
`)

	h, err := ReadHistogram(path)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, h.Radius[0], 1e-12)
	assert.InDelta(t, 2.0, h.Radius[1], 1e-12)
	assert.Equal(t, []float64{0.4, 0.6}, h.Fraction)
	assert.Equal(t, []float64{0.05, 0.06}, h.FractionErr)
	assert.Equal(t, []float64{0.01, 0.02}, h.Observability)
	assert.Equal(t, []float64{0.4, 1.0}, h.CDF)
	assert.Equal(t, []float64{0.05, 0.08}, h.CDFErr)
}

func TestReadHistogramMissing(t *testing.T) {
	_, err := ReadHistogram(filepath.Join(t.TempDir(), "nope.dat"))
	assert.Error(t, err)
}
