// Package dtw defines steps and options for the DTW forward pass.
package dtw

import (
	"fmt"
	"math"
)

const (
	// SeedStep is the step index recorded at cell (0,0), where no step is
	// eligible and D[0,0] is seeded with M[0,0].
	SeedStep = 1

	// MinSteps is the smallest accepted step set: SeedStep must name a real step.
	MinSteps = SeedStep + 1
)

// Step is one allowed move ending at the current cell (i, j): it arrives
// from (i-Row, j-Col) and adds Weight·M[i,j] to the accumulated cost.
//
// Example:
//
//	Step{Row: 1, Col: 1, Weight: 1}  // diagonal match
//	Step{Row: 0, Col: 1, Weight: 1}  // horizontal: advance target only
//	Step{Row: 2, Col: 1, Weight: 2}  // skip a reference frame, weighted
type Step struct {
	Row    int
	Col    int
	Weight float64
}

// Steps is an ordered step set. Order matters: ties go to the lower index.
type Steps []Step

// Validate checks that every step keeps the row-major scan a valid DP order
// and that the set is large enough for SeedStep.
//
// Errors: ErrTooFewSteps, ErrBadStep (wrapped with the offending index).
func (s Steps) Validate() error {
	if len(s) < MinSteps {
		return fmt.Errorf("got %d: %w", len(s), ErrTooFewSteps)
	}
	for k, st := range s {
		if st.Row < 0 || st.Col < 0 || st.Row+st.Col == 0 {
			return fmt.Errorf("step %d offset (%d,%d): %w", k, st.Row, st.Col, ErrBadStep)
		}
		if math.IsNaN(st.Weight) || math.IsInf(st.Weight, 0) {
			return fmt.Errorf("step %d weight %g: %w", k, st.Weight, ErrBadStep)
		}
	}

	return nil
}

// Options configures Forward.
//
// Fields:
//   - ValidateFinite: reject a distance matrix holding NaN or ±Inf
//     (matrix.ErrNaNInf) before computing. Disable only when the caller
//     already guarantees finite input.
type Options struct {
	ValidateFinite bool
}

// DefaultOptions returns Options{ValidateFinite: true}.
func DefaultOptions() Options {
	return Options{ValidateFinite: true}
}
