package peakfit

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/mat"
)

const (
	defaultRhoInit        = 0.01
	defaultDecayAmpInit   = -1.0
	defaultDecayNInit     = 1.0
	defaultDecayLambdaInt = 1.0
	defaultPositionWindow = 0.1
	defaultSigmaInit      = 0.1
	defaultAmplitudeInit  = 1.0
	defaultMaxIterations  = 200

	positionPenaltyWeight = 1e3
)

// ErrNoPeaks is returned when the seeding search finds nothing to fit.
var ErrNoPeaks = errors.New("peakfit: no peaks detected in search window")

// Config holds fit parameters. Zero values are defaulted.
type Config struct {
	Detect DetectOptions

	RhoInit         float64
	DecayAmpInit    float64
	DecayNInit      float64
	DecayLambdaInit float64

	// PositionWindow bounds how far a fitted peak center may drift from
	// its seed position.
	PositionWindow float64

	MaxIterations int
}

// Peak holds one fitted Gaussian with standard errors and its area.
type Peak struct {
	Amplitude    float64
	AmplitudeErr float64
	Position     float64
	PositionErr  float64
	Sigma        float64
	SigmaErr     float64
	Area         float64
	AreaErr      float64
}

// DecayTerm holds the fitted A·rⁿ·e^(−λr) parameters.
type DecayTerm struct {
	Amp       float64
	AmpErr    float64
	N         float64
	NErr      float64
	Lambda    float64
	LambdaErr float64
}

// Result holds the complete fit.
type Result struct {
	Rho    float64
	RhoErr float64
	Decay  DecayTerm
	Peaks  []Peak

	p     params
	seeds []float64
}

func normalizeConfig(cfg Config) Config {
	if cfg.RhoInit == 0 {
		cfg.RhoInit = defaultRhoInit
	}

	if cfg.DecayAmpInit == 0 {
		cfg.DecayAmpInit = defaultDecayAmpInit
	}

	if cfg.DecayNInit == 0 {
		cfg.DecayNInit = defaultDecayNInit
	}

	if cfg.DecayLambdaInit == 0 {
		cfg.DecayLambdaInit = defaultDecayLambdaInt
	}

	if cfg.PositionWindow <= 0 {
		cfg.PositionWindow = defaultPositionWindow
	}

	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = defaultMaxIterations
	}

	return cfg
}

// Fit seeds peak positions from a local-maximum search and solves the
// full model by Levenberg-Marquardt.
func Fit(xs, ys []float64, cfg Config) (*Result, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("peakfit: length mismatch: %d vs %d", len(xs), len(ys))
	}

	cfg = normalizeConfig(cfg)

	seeds := FindPeaks(xs, ys, cfg.Detect)
	if len(seeds) == 0 {
		return nil, ErrNoPeaks
	}

	return FitAt(xs, ys, seeds, cfg)
}

// FitAt solves the model with explicit seed positions.
func FitAt(xs, ys, seeds []float64, cfg Config) (*Result, error) {
	if len(seeds) == 0 {
		return nil, ErrNoPeaks
	}

	cfg = normalizeConfig(cfg)

	init := make(params, 0, 4+3*len(seeds))
	init = append(init, cfg.RhoInit)

	for _, s := range seeds {
		init = append(init, defaultAmplitudeInit, s, defaultSigmaInit)
	}

	init = append(init, cfg.DecayAmpInit, cfg.DecayNInit, cfg.DecayLambdaInit)

	residual := func(dst, p []float64) {
		pp := params(p)

		for i := range xs {
			total, _ := pp.eval(xs[i])
			dst[i] = total - ys[i]
		}

		// Soft position bounds: penalize centers drifting out of their
		// seed window, the unbounded-solver stand-in for box constraints.
		for i := range seeds {
			x0 := pp[2+3*i]

			excess := math.Abs(x0-seeds[i]) - cfg.PositionWindow
			if excess < 0 {
				excess = 0
			}

			dst[len(xs)+i] = positionPenaltyWeight * excess
		}
	}

	jac := lm.NumJac{Func: residual}

	prob := lm.LMProblem{
		Dim:        len(init),
		Size:       len(xs) + len(seeds),
		Func:       residual,
		Jac:        jac.Jac,
		InitParams: init,
		Tau:        1e-6,
		Eps1:       1e-8,
		Eps2:       1e-8,
	}

	solved, err := lm.LM(prob, &lm.Settings{Iterations: cfg.MaxIterations, ObjectiveTol: 1e-16})
	if err != nil {
		return nil, fmt.Errorf("peakfit: %w", err)
	}

	p := params(solved.X)
	errs := standardErrors(&jac, prob.Size, p)

	res := &Result{
		Rho:    p.rho(),
		RhoErr: errs[0],
		p:      p,
		seeds:  append([]float64(nil), seeds...),
	}

	amp, n, lambda := p.decay()
	res.Decay = DecayTerm{
		Amp: amp, AmpErr: errs[len(p)-3],
		N: n, NErr: errs[len(p)-2],
		Lambda: lambda, LambdaErr: errs[len(p)-1],
	}

	for i := 0; i < p.numPeaks(); i++ {
		a, x0, sigma := p.peak(i)

		pk := Peak{
			Amplitude:    a,
			AmplitudeErr: errs[1+3*i],
			Position:     x0,
			PositionErr:  errs[2+3*i],
			Sigma:        sigma,
			SigmaErr:     errs[3+3*i],
		}

		res.Peaks = append(res.Peaks, pk)

		area := res.peakArea(xs, i)
		res.Peaks[i].Area = area

		if a != 0 {
			res.Peaks[i].AreaErr = math.Abs(pk.AmplitudeErr/a) * area
		}
	}

	return res, nil
}

// standardErrors estimates parameter errors from the numeric Jacobian at
// the solution: sqrt(diag((JᵀJ)⁻¹)). A singular normal matrix yields NaN
// errors while the fit itself stands.
func standardErrors(jac *lm.NumJac, size int, p params) []float64 {
	out := make([]float64, len(p))

	j := mat.NewDense(size, len(p), nil)
	jac.Jac(j, p)

	var jtj mat.Dense
	jtj.Mul(j.T(), j)

	var cov mat.Dense
	if err := cov.Inverse(&jtj); err != nil {
		for i := range out {
			out[i] = math.NaN()
		}

		return out
	}

	for i := range out {
		v := cov.At(i, i)
		if v < 0 {
			out[i] = math.NaN()
			continue
		}

		out[i] = math.Sqrt(v)
	}

	return out
}

// Curve evaluates the fitted model and its baseline-plus-decay part.
func (r *Result) Curve(xs []float64) (total, base []float64) {
	total = make([]float64, len(xs))
	base = make([]float64, len(xs))

	for i, x := range xs {
		total[i], base[i] = r.p.eval(x)
	}

	return total, base
}

// PeakBand returns the positive part of one Gaussian plus the baseline
// terms over ±3σ around its center, the region hatched in the figure.
func (r *Result) PeakBand(i int, xs []float64) (bandX, bandY []float64) {
	if i < 0 || i >= len(r.Peaks) {
		return nil, nil
	}

	pk := r.Peaks[i]
	amp, n, lambda := r.p.decay()

	for _, x := range xs {
		if x < pk.Position-3*pk.Sigma || x > pk.Position+3*pk.Sigma {
			continue
		}

		y := Gaussian(x, pk.Amplitude, pk.Position, pk.Sigma) +
			Baseline(x, r.Rho) + Decay(x, amp, n, lambda)
		if y < 0 {
			y = 0
		}

		bandX = append(bandX, x)
		bandY = append(bandY, y)
	}

	return bandX, bandY
}

// peakArea integrates one Gaussian plus the baseline terms over ±3σ,
// clipped to positive values, by the trapezoidal rule.
func (r *Result) peakArea(xs []float64, i int) float64 {
	bandX, bandY := r.PeakBand(i, xs)

	var keptX, keptY []float64
	for j := range bandY {
		if bandY[j] > 0 {
			keptX = append(keptX, bandX[j])
			keptY = append(keptY, bandY[j])
		}
	}

	return trapezoid(keptX, keptY)
}

func trapezoid(xs, ys []float64) float64 {
	area := 0.0
	for i := 1; i < len(xs); i++ {
		area += 0.5 * (ys[i] + ys[i-1]) * (xs[i] - xs[i-1])
	}

	return area
}
