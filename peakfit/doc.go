// Package peakfit fits a sum of Gaussian peaks on a physical baseline to
// total radial distribution data T(r).
//
// The model is
//
//	T(r) = 4πρr + A·rⁿ·e^(−λr) + Σ aᵢ·exp(−(r−rᵢ)²/(2σᵢ²))
//
// with A ≤ 0, n ≥ 0, λ ≥ 0. Initial peak positions come from a local
// maximum search; the nonlinear solve is Levenberg-Marquardt. Peak areas
// integrate one Gaussian at a time over ±3σ together with the baseline
// terms, so neighboring peaks do not leak into each other's areas.
package peakfit
