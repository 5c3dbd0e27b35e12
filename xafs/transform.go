package xafs

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

const (
	defaultFFTSize = 2048
	defaultSillDK  = 1.0
)

// Config holds Fourier transform parameters for the k→R step.
type Config struct {
	// KMin and KMax bound the transform window in Å⁻¹.
	KMin float64
	KMax float64

	// SillDK is the width of the Hann sills at either window edge.
	SillDK float64

	// Weight multiplies χ(k) by k^Weight before the transform. Use zero
	// when the input is already weighted (a k²χ(k) column).
	Weight int

	// FFTSize is the zero-padded transform length; power of two.
	FFTSize int
}

// RadialResult holds |χ(R)| on its radial grid.
type RadialResult struct {
	R   []float64
	Mag []float64
}

func normalizeConfig(cfg Config, kmaxData float64) Config {
	if cfg.KMax <= cfg.KMin {
		cfg.KMin = 0
		cfg.KMax = kmaxData
	}

	if cfg.SillDK <= 0 {
		cfg.SillDK = defaultSillDK
	}

	if cfg.FFTSize <= 0 {
		cfg.FFTSize = defaultFFTSize
	}

	return cfg
}

// KWeight returns k^w · χ(k).
func KWeight(k, chi []float64, w int) ([]float64, error) {
	if len(k) != len(chi) {
		return nil, fmt.Errorf("xafs: length mismatch: %d vs %d", len(k), len(chi))
	}

	out := make([]float64, len(chi))
	copy(out, chi)

	for i := 0; i < w; i++ {
		vecmath.MulBlockInPlace(out, k)
	}

	return out, nil
}

// Transform computes |χ(R)| from a uniformly sampled, k-weighted χ(k)
// curve: Hann-sill window over [KMin, KMax], zero-padded FFT, magnitude
// scaled by the continuous-transform convention dk/√π.
//
// The radial grid spacing is π/(N·dk); results are returned up to the
// Nyquist distance.
func Transform(k, kchi []float64, cfg Config) (RadialResult, error) {
	if len(k) != len(kchi) {
		return RadialResult{}, fmt.Errorf("xafs: length mismatch: %d vs %d", len(k), len(kchi))
	}

	if len(k) < 2 {
		return RadialResult{}, errors.New("xafs: need at least two k samples")
	}

	dk := k[1] - k[0]
	if dk <= 0 {
		return RadialResult{}, errors.New("xafs: k grid must be ascending")
	}

	cfg = normalizeConfig(cfg, k[len(k)-1])

	if cfg.FFTSize < len(k) {
		return RadialResult{}, fmt.Errorf("xafs: FFT size %d below sample count %d", cfg.FFTSize, len(k))
	}

	in := make([]complex128, cfg.FFTSize)
	for i := range k {
		in[i] = complex(kchi[i]*hannSill(k[i], cfg.KMin, cfg.KMax, cfg.SillDK), 0)
	}

	plan, err := algofft.NewPlan64(cfg.FFTSize)
	if err != nil {
		return RadialResult{}, fmt.Errorf("xafs: %w", err)
	}

	out := make([]complex128, cfg.FFTSize)
	if err := plan.Forward(out, in); err != nil {
		return RadialResult{}, fmt.Errorf("xafs: %w", err)
	}

	bins := cfg.FFTSize/2 + 1

	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	scale := dk / math.Sqrt(math.Pi)
	vecmath.ScaleBlock(mag, mag, scale)

	// R_j = j·π / (N·dk); the factor 2 in e^{2ikR} halves the grid step.
	dr := math.Pi / (float64(cfg.FFTSize) * dk)

	r := make([]float64, bins)
	for i := range r {
		r[i] = float64(i) * dr
	}

	return RadialResult{R: r, Mag: mag}, nil
}

// hannSill is 0 outside [kmin, kmax], 1 on the plateau and a half-cosine
// ramp of width dk at either edge.
func hannSill(k, kmin, kmax, dk float64) float64 {
	if k < kmin || k > kmax {
		return 0
	}

	if k < kmin+dk {
		return 0.5 * (1 - math.Cos(math.Pi*(k-kmin)/dk))
	}

	if k > kmax-dk {
		return 0.5 * (1 - math.Cos(math.Pi*(kmax-k)/dk))
	}

	return 1
}
