package viterbi

import "errors"

var (
	// ErrNilInput indicates a required table is nil.
	ErrNilInput = errors.New("viterbi: nil input table")

	// ErrInvalidDimensions indicates an empty Particles or LogLikelihood table
	// (N, K or nL is zero), or an empty LogNormal when K > 1 (nP is zero).
	ErrInvalidDimensions = errors.New("viterbi: dimensions must be > 0")

	// ErrDimensionMismatch indicates tables whose shapes disagree
	// (e.g. LogLikelihood has a different number of columns than Particles).
	ErrDimensionMismatch = errors.New("viterbi: dimension mismatch")

	// ErrBadMinLog indicates a MinLog floor that is NaN or infinite.
	ErrBadMinLog = errors.New("viterbi: MinLog must be finite")

	// ErrStateOutOfRange indicates an initial particle state outside [0, nL).
	// Only the first time step is checked: later steps score MinLog instead.
	ErrStateOutOfRange = errors.New("viterbi: initial state out of likelihood range")

	// ErrBadScale indicates a random-walk scale that is not finite and positive.
	ErrBadScale = errors.New("viterbi: random-walk scale must be finite and > 0")
)
