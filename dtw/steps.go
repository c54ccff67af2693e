package dtw

import (
	"fmt"
	"math"
)

// DefaultSteps returns the symmetric unit-weight set:
// diagonal (1,1), horizontal (0,1), vertical (1,0).
func DefaultSteps() Steps {
	return Steps{
		{Row: 1, Col: 1, Weight: 1},
		{Row: 0, Col: 1, Weight: 1},
		{Row: 1, Col: 0, Weight: 1},
	}
}

// ItakuraSteps returns {(1,1,1), (1,0,1), (1,2,1)}: every step advances the
// reference, so paths stay in a parallelogram with slope between 1/2 and 2.
func ItakuraSteps() Steps {
	return Steps{
		{Row: 1, Col: 1, Weight: 1},
		{Row: 1, Col: 0, Weight: 1},
		{Row: 1, Col: 2, Weight: 1},
	}
}

// DynamicSteps builds a symmetric step set just wide enough to warp a
// sequence of nref frames onto one of ntgt frames, plus extra slack.
//
// Implementation:
//   - Stage 1: base set (1,1,1), (1,2,2), (2,1,2).
//   - Stage 2: minWarp = ceil(max(nref,ntgt) / min(nref,ntgt)) + extra.
//   - Stage 3: minWarp > 2 adds (1,3,3), (3,1,3).
//   - Stage 4: for n = 4..minWarp add (1,n,eⁿ/3); then for n = 4..minWarp add (n,1,eⁿ/3).
//
// Long steps are weighted exponentially so they are used only when needed.
//
// Errors: ErrBadInput when nref or ntgt <= 0, or extra < 0.
func DynamicSteps(nref, ntgt, extra int) (Steps, error) {
	if nref <= 0 || ntgt <= 0 || extra < 0 {
		return nil, fmt.Errorf("DynamicSteps(%d,%d,%d): %w", nref, ntgt, extra, ErrBadInput)
	}

	out := Steps{
		{Row: 1, Col: 1, Weight: 1},
		{Row: 1, Col: 2, Weight: 2},
		{Row: 2, Col: 1, Weight: 2},
	}
	hi, lo := nref, ntgt
	if lo > hi {
		hi, lo = lo, hi
	}
	minWarp := (hi+lo-1)/lo + extra // integer ceil(hi/lo)
	if minWarp > 2 {
		out = append(out, Step{Row: 1, Col: 3, Weight: 3}, Step{Row: 3, Col: 1, Weight: 3})
	}
	var n int
	for n = 4; n <= minWarp; n++ {
		out = append(out, Step{Row: 1, Col: n, Weight: math.Exp(float64(n)) / 3})
	}
	for n = 4; n <= minWarp; n++ {
		out = append(out, Step{Row: n, Col: 1, Weight: math.Exp(float64(n)) / 3})
	}

	return out, nil
}
