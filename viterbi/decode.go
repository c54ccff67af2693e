package viterbi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvchirp/matrix"
)

// dims holds the validated problem dimensions.
type dims struct {
	n, k, nL, nP int
}

// Decode returns the MAP state sequence through the particle pool.
// A nil opts selects DefaultOptions(); a zero MinLog selects DefaultMinLog.
//
// Algorithm Outline:
//  1. delta[i,0] = loglikelihood[particles[i,0], 0] (no floor at k=0).
//  2. For k = 1..K-1, for every target particle j with state x_j:
//     delta[j,k] = max_i (delta[i,k-1] + trans(x_j − x_i + nP/2, k-1)) + emit(x_j, k)
//     phi[j,k]   = the lowest i reaching that maximum.
//  3. Pick the lowest i maximizing delta[i,K-1]; follow phi backwards.
//  4. map[k] = particles[idx[k], k].
//
// Errors:
//   - ErrNilInput, ErrInvalidDimensions, ErrDimensionMismatch, ErrBadMinLog,
//     ErrStateOutOfRange: all reported before any computation.
//
// Complexity: O(N²·K) time, O(N·K) scratch.
func Decode(p Problem, opts *Options) ([]int, error) {
	res, err := DecodeTrace(p, opts)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// DecodeTrace runs the same recursion as Decode and also returns the particle
// index path and the terminal score.
func DecodeTrace(p Problem, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.MinLog == 0 {
		o.MinLog = DefaultMinLog
	}
	d, err := validate(p, o.MinLog)
	if err != nil {
		return nil, err
	}

	return run(p, d, o.MinLog), nil
}

// validate checks every precondition and returns the problem dimensions.
func validate(p Problem, minlog float64) (dims, error) {
	var d dims
	if math.IsNaN(minlog) || math.IsInf(minlog, 0) {
		return d, ErrBadMinLog
	}
	if matrix.ValidateNotNil(p.Particles) != nil {
		return d, fmt.Errorf("Particles: %w", ErrNilInput)
	}
	if matrix.ValidateNotNil(p.LogLikelihood) != nil {
		return d, fmt.Errorf("LogLikelihood: %w", ErrNilInput)
	}
	if matrix.ValidateNonEmpty(p.Particles) != nil {
		return d, fmt.Errorf("Particles is empty: %w", ErrInvalidDimensions)
	}
	if matrix.ValidateNonEmpty(p.LogLikelihood) != nil {
		return d, fmt.Errorf("LogLikelihood is empty: %w", ErrInvalidDimensions)
	}
	d.n, d.k = p.Particles.Shape()
	d.nL = p.LogLikelihood.Rows()
	if p.LogLikelihood.Cols() != d.k {
		return d, fmt.Errorf("LogLikelihood has %d steps, Particles %d: %w",
			p.LogLikelihood.Cols(), d.k, ErrDimensionMismatch)
	}

	// Transition tables only matter when there is a transition.
	if d.k > 1 {
		if matrix.ValidateNotNil(p.LogProposal) != nil {
			return d, fmt.Errorf("LogProposal: %w", ErrNilInput)
		}
		d.nP = len(p.LogNormal)
		if d.nP == 0 {
			return d, fmt.Errorf("LogNormal is empty: %w", ErrInvalidDimensions)
		}
		if err := matrix.ValidateShape(p.LogProposal, d.nP, d.k-1); err != nil {
			return d, fmt.Errorf("LogProposal want %dx%d: %w", d.nP, d.k-1, ErrDimensionMismatch)
		}
	}

	// The first step is looked up without a floor.
	parts := p.Particles.Data()
	var i, x int
	for i = 0; i < d.n; i++ {
		x = parts[matrix.Index(i, 0, d.k)]
		if x < 0 || x >= d.nL {
			return d, fmt.Errorf("particle %d state %d not in [0,%d): %w", i, x, d.nL, ErrStateOutOfRange)
		}
	}

	return d, nil
}

// run is the forward recursion plus backtrace over validated inputs.
// delta, phi and idx live only for this call.
func run(p Problem, d dims, minlog float64) *Result {
	n, K, nL, nP := d.n, d.k, d.nL, d.nP
	parts := p.Particles.Data()
	ll := p.LogLikelihood.Data()

	delta := make([]float64, n*K)
	phi := make([]int, n*K)

	var i, j, k int

	// initialization
	for i = 0; i < n; i++ {
		delta[matrix.Index(i, 0, K)] = ll[matrix.Index(parts[matrix.Index(i, 0, K)], 0, K)]
	}

	// recursion
	if K > 1 {
		lp := p.LogProposal.Data()
		lognormal := p.LogNormal
		half := nP / 2

		var xi, xj, jump, maxi int
		var arg, maxarg, v float64
		for k = 1; k < K; k++ {
			for j = 0; j < n; j++ {
				xj = parts[matrix.Index(j, k, K)]
				maxarg, maxi = 0, 0
				for i = 0; i < n; i++ {
					arg = delta[matrix.Index(i, k-1, K)]
					xi = parts[matrix.Index(i, k-1, K)]
					jump = xj - xi + half
					if jump < 0 || jump >= nP {
						arg += minlog
					} else {
						v = lp[matrix.Index(jump, k-1, K-1)]
						if v > minlog {
							arg += v
						} else {
							arg += lognormal[jump] // undefined proposal cell
						}
					}
					// i == 0 seeds the running max; later candidates must be strictly greater.
					if i == 0 || arg > maxarg {
						maxarg, maxi = arg, i
					}
				}
				if xj < 0 || xj >= nL {
					maxarg += minlog
				} else {
					maxarg += ll[matrix.Index(xj, k, K)]
				}
				delta[matrix.Index(j, k, K)] = maxarg
				phi[matrix.Index(j, k, K)] = maxi
			}
		}
	}

	// backtrace
	best := 0
	score := delta[matrix.Index(0, K-1, K)]
	for i = 1; i < n; i++ {
		if v := delta[matrix.Index(i, K-1, K)]; v > score {
			score, best = v, i
		}
	}

	idx := make([]int, K)
	idx[K-1] = best
	for k = K - 2; k >= 0; k-- {
		idx[k] = phi[matrix.Index(idx[k+1], k+1, K)]
	}
	path := make([]int, K)
	for k = 0; k < K; k++ {
		path[k] = parts[matrix.Index(idx[k], k, K)]
	}

	return &Result{Path: path, Indices: idx, Score: score}
}
