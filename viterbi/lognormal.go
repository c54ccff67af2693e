package viterbi

import (
	"fmt"
	"math"
)

// RandomWalkLogNormal builds a fallback transition table for Problem.LogNormal:
// the log-density of a zero-mean Gaussian random walk with standard deviation
// scale, evaluated at every discretized jump.
//
//	lognormal[j] = -0.5 * (log(2π·scale²) + ((j − nP/2) / scale)²)
//
// Entry nP/2 corresponds to "no change"; the table uses the same integer
// centering as the decoder, so for even nP it is not symmetric at the edges.
//
// Errors: ErrInvalidDimensions when nP <= 0, ErrBadScale when scale is not
// finite and positive.
func RandomWalkLogNormal(nP int, scale float64) ([]float64, error) {
	if nP <= 0 {
		return nil, fmt.Errorf("nP=%d: %w", nP, ErrInvalidDimensions)
	}
	if !(scale > 0) || math.IsInf(scale, 1) {
		return nil, fmt.Errorf("scale=%g: %w", scale, ErrBadScale)
	}

	norm := math.Log(2 * math.Pi * scale * scale)
	half := nP / 2
	out := make([]float64, nP)
	var z float64
	for j := range out {
		z = float64(j-half) / scale
		out[j] = -0.5 * (norm + z*z)
	}

	return out, nil
}
