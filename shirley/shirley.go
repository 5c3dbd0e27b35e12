package shirley

import (
	"errors"
	"fmt"
	"math"
)

const (
	defaultEps      = 1e-7
	defaultMaxIters = 50
)

// ErrDegenerate is returned when the anchor region carries no integrated
// intensity, which makes the fixed-point formula undefined.
var ErrDegenerate = errors.New("shirley: zero integrated intensity between anchors")

// Config holds background estimation parameters. EnergyMin and EnergyMax
// anchor the baseline; they may be given in either order and are snapped
// to the nearest sampled energies.
type Config struct {
	EnergyMin float64
	EnergyMax float64
	Eps       float64
	MaxIters  int
}

// Result holds the estimated background and the background-corrected
// intensities. Converged is false when the iteration cap was hit; the
// last iterate is still returned, matching the warn-and-proceed behavior
// expected by the figure pipelines.
type Result struct {
	Background []float64
	Corrected  []float64
	Iterations int
	Converged  bool
}

func normalizeConfig(cfg Config) Config {
	if cfg.Eps <= 0 {
		cfg.Eps = defaultEps
	}

	if cfg.MaxIters <= 0 {
		cfg.MaxIters = defaultMaxIters
	}

	return cfg
}

// Correct estimates the Shirley background of intensity over energy and
// subtracts it.
func Correct(energy, intensity []float64, cfg Config) (Result, error) {
	if len(energy) != len(intensity) {
		return Result{}, fmt.Errorf("shirley: length mismatch: %d energies, %d intensities", len(energy), len(intensity))
	}

	if len(energy) == 0 {
		return Result{}, errors.New("shirley: empty spectrum")
	}

	cfg = normalizeConfig(cfg)

	idxMin := nearestIndex(energy, cfg.EnergyMin)
	idxMax := nearestIndex(energy, cfg.EnergyMax)

	if idxMin > idxMax {
		idxMin, idxMax = idxMax, idxMin
	}

	cumI := cumulativeSum(intensity)
	if cumI[idxMin] == cumI[idxMax] {
		return Result{}, ErrDegenerate
	}

	iLeft := intensity[idxMin]
	iRight := intensity[idxMax]
	k := (iLeft - iRight) / (cumI[idxMin] - cumI[idxMax])

	bg := make([]float64, len(intensity))
	next := make([]float64, len(intensity))

	iters := 0
	converged := false

	for iters = 1; iters <= cfg.MaxIters; iters++ {
		cumBG := cumulativeSum(bg)

		maxDelta := 0.0
		for i := range next {
			next[i] = iRight + k*(cumI[idxMin]-cumI[i]-cumBG[idxMin]+cumBG[i])

			if d := math.Abs(next[i] - bg[i]); d > maxDelta {
				maxDelta = d
			}
		}

		bg, next = next, bg

		if maxDelta < cfg.Eps {
			converged = true
			break
		}
	}

	if iters > cfg.MaxIters {
		iters = cfg.MaxIters
	}

	corrected := make([]float64, len(intensity))
	for i := range corrected {
		corrected[i] = intensity[i] - bg[i]
	}

	return Result{
		Background: bg,
		Corrected:  corrected,
		Iterations: iters,
		Converged:  converged,
	}, nil
}

func nearestIndex(xs []float64, target float64) int {
	best := 0
	bestDist := math.Abs(xs[0] - target)

	for i, x := range xs[1:] {
		if d := math.Abs(x - target); d < bestDist {
			bestDist = d
			best = i + 1
		}
	}

	return best
}

// cumulativeSum returns the running prefix sums, matching the inclusive
// convention of the fixed-point formula.
func cumulativeSum(xs []float64) []float64 {
	out := make([]float64, len(xs))

	sum := 0.0
	for i, x := range xs {
		sum += x
		out[i] = sum
	}

	return out
}
