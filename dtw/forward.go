package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvchirp/matrix"
)

// Forward runs the DTW forward pass over M and returns freshly allocated
// accumulated-cost (D) and step-choice (S) matrices shaped like M.
// A nil opts selects DefaultOptions().
//
// Errors: see ForwardInto.
func Forward(M *matrix.Dense, steps Steps, opts *Options) (*matrix.Dense, *matrix.IntDense, error) {
	if M == nil {
		return nil, nil, ErrNilMatrix
	}
	D, err := matrix.NewDense(M.Rows(), M.Cols())
	if err != nil {
		return nil, nil, err
	}
	S, err := matrix.NewIntDense(M.Rows(), M.Cols())
	if err != nil {
		return nil, nil, err
	}
	if err = ForwardInto(M, steps, D, S, opts); err != nil {
		return nil, nil, err
	}

	return D, S, nil
}

// ForwardInto runs the DTW forward pass writing into caller-owned D and S,
// which must already be shaped like M. Nothing is allocated; prior contents
// of D and S are ignored and fully overwritten.
//
// Algorithm Outline:
//  1. v = M[0,0], chosen = SeedStep.
//  2. For i = 0..rows-1, for j = 0..cols-1:
//     for every step k with i ≥ Row_k and j ≥ Col_k:
//     c = Weight_k·M[i,j] + D[i-Row_k, j-Col_k]; if c < v { v = c; chosen = k }
//     D[i,j] = v; S[i,j] = chosen; v = +Inf.
//
// Notes:
//   - No step is eligible at (0,0), so D[0,0] = M[0,0] and S[0,0] = SeedStep.
//   - chosen is carried between cells: a cell where no step is eligible
//     (D = +Inf) records the step chosen for the previous cell.
//   - The comparison is strict, so the lowest-indexed minimal step wins.
//
// Errors:
//   - ErrNilMatrix, matrix.ErrInvalidDimensions (empty M), ErrShapeMismatch,
//     ErrTooFewSteps, ErrBadStep, matrix.ErrNaNInf (when opts.ValidateFinite).
//
// Complexity: O(rows·cols·len(steps)) time, O(1) extra space.
func ForwardInto(M *matrix.Dense, steps Steps, D *matrix.Dense, S *matrix.IntDense, opts *Options) error {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if M == nil || D == nil || S == nil {
		return ErrNilMatrix
	}
	if err := matrix.ValidateNonEmpty(M); err != nil {
		return fmt.Errorf("M: %w", err)
	}
	if err := matrix.ValidateSameShape(M, D); err != nil {
		return fmt.Errorf("D: %w", ErrShapeMismatch)
	}
	if err := matrix.ValidateSameShape(M, S); err != nil {
		return fmt.Errorf("S: %w", ErrShapeMismatch)
	}
	if err := steps.Validate(); err != nil {
		return err
	}
	if o.ValidateFinite {
		if err := matrix.ValidateFinite(M); err != nil {
			return err
		}
	}

	forward(M.Data(), steps, D.Data(), S.Data(), M.Rows(), M.Cols())

	return nil
}

// forward is the kernel over validated flat buffers.
func forward(m []float64, steps Steps, d []float64, s []int, nrow, ncol int) {
	inf := math.Inf(1)
	v := m[0]
	chosen := SeedStep

	var i, j, k, off int
	var d1, d2 float64
	for i = 0; i < nrow; i++ {
		for j = 0; j < ncol; j++ {
			off = matrix.Index(i, j, ncol)
			d1 = m[off]
			for k = range steps {
				if i >= steps[k].Row && j >= steps[k].Col {
					d2 = steps[k].Weight*d1 + d[matrix.Index(i-steps[k].Row, j-steps[k].Col, ncol)]
					if d2 < v {
						v, chosen = d2, k
					}
				}
			}
			d[off] = v
			s[off] = chosen
			v = inf
		}
	}
}
