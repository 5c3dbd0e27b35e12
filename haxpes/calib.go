package haxpes

import (
	"fmt"

	"github.com/spring8-benten/bentenplot/dataset"
	"github.com/spring8-benten/bentenplot/interp"
)

const (
	defaultEdgeLevel = 0.4
	defaultEdgeLow   = 0.05
	defaultEdgeHigh  = 0.75
)

// EdgeConfig selects where on the valence-band leading edge the two
// spectra are compared. Zero values are defaulted to the 0.4 level
// inside the [0.05, 0.75] window.
type EdgeConfig struct {
	Level float64
	Low   float64
	High  float64
}

func normalizeEdgeConfig(cfg EdgeConfig) EdgeConfig {
	if cfg.Level == 0 {
		cfg.Level = defaultEdgeLevel
	}

	if cfg.Low == 0 {
		cfg.Low = defaultEdgeLow
	}

	if cfg.High == 0 {
		cfg.High = defaultEdgeHigh
	}

	return cfg
}

// LeadingEnergy finds the binding energy at which a normalized spectrum
// crosses the edge level.
func LeadingEnergy(s dataset.Series, cfg EdgeConfig) (float64, error) {
	cfg = normalizeEdgeConfig(cfg)

	e, err := interp.CrossingX(s.X, s.Y, cfg.Level, cfg.Low, cfg.High)
	if err != nil {
		return 0, fmt.Errorf("haxpes: leading edge: %w", err)
	}

	return e, nil
}

// EnergyOffset aligns the target spectrum's Fermi edge to the
// reference's: both leading energies are interpolated at the same level
// and the difference (reference − target) is the correction to add to
// the target's energy axis.
func EnergyOffset(target, reference dataset.Series, cfg EdgeConfig) (offset, targetEdge, refEdge float64, err error) {
	targetEdge, err = LeadingEnergy(target, cfg)
	if err != nil {
		return 0, 0, 0, err
	}

	refEdge, err = LeadingEnergy(reference, cfg)
	if err != nil {
		return 0, 0, 0, err
	}

	return refEdge - targetEdge, targetEdge, refEdge, nil
}
