package peakfit

import "math"

// Gaussian evaluates a·exp(−(x−x0)²/(2σ²)).
func Gaussian(x, a, x0, sigma float64) float64 {
	if sigma == 0 {
		return 0
	}

	d := x - x0

	return a * math.Exp(-d*d/(2*sigma*sigma))
}

// Baseline evaluates the number-density term 4πρx.
func Baseline(x, rho float64) float64 {
	return 4 * math.Pi * x * rho
}

// Decay evaluates the low-r correction term A·xⁿ·e^(−λx).
func Decay(x, amp, n, lambda float64) float64 {
	if x < 0 {
		return 0
	}

	return amp * math.Pow(x, n) * math.Exp(-lambda*x)
}

// params is the flat parameter vector layout used by the solver:
// [rho, (a, x0, sigma) x N, A, n, lambda]. Sign constraints are enforced
// by folding: a, sigma, n and lambda through |v|, A through −|v|.
type params []float64

func (p params) numPeaks() int {
	return (len(p) - 4) / 3
}

func (p params) rho() float64 { return p[0] }

func (p params) peak(i int) (a, x0, sigma float64) {
	base := 1 + 3*i
	return math.Abs(p[base]), p[base+1], math.Abs(p[base+2])
}

func (p params) decay() (amp, n, lambda float64) {
	return -math.Abs(p[len(p)-3]), math.Abs(p[len(p)-2]), math.Abs(p[len(p)-1])
}

// eval returns the full model value and the baseline-plus-decay part.
func (p params) eval(x float64) (total, base float64) {
	amp, n, lambda := p.decay()
	base = Baseline(x, p.rho()) + Decay(x, amp, n, lambda)

	total = base
	for i := 0; i < p.numPeaks(); i++ {
		a, x0, sigma := p.peak(i)
		total += Gaussian(x, a, x0, sigma)
	}

	return total, base
}
