package viterbi

import "github.com/katalvlaran/lvchirp/matrix"

// DefaultMinLog is the floor used by DefaultOptions. It is the log-likelihood
// assigned to invalid pitch values by the particle tracker.
const DefaultMinLog = -100.0

// Problem bundles the immutable inputs of one decode.
//
// Fields:
//   - Particles    : N×K; Particles[i,k] is the state of particle i at step k.
//   - LogLikelihood: nL×K; log-probability of state x at step k.
//   - LogProposal  : nP×(K-1); log-density of jump j between steps k and k+1.
//     Ignored (may be nil) when K == 1.
//   - LogNormal    : length nP; fallback log-density for jump j, used where
//     LogProposal[j,k] <= MinLog. Ignored (may be nil) when K == 1.
//
// Decode never mutates any of these.
type Problem struct {
	Particles     *matrix.IntDense
	LogLikelihood *matrix.Dense
	LogProposal   *matrix.Dense
	LogNormal     []float64
}

// Options configures a decode.
//
// Fields:
//   - MinLog: finite, very negative stand-in for log(0). Scored for jumps
//     outside the proposal table and for states outside the likelihood table;
//     proposal cells at or below it count as undefined. Zero selects
//     DefaultMinLog, since a floor of 0 would mark every log-density undefined.
type Options struct {
	MinLog float64
}

// DefaultOptions returns Options{MinLog: DefaultMinLog}.
func DefaultOptions() Options {
	return Options{MinLog: DefaultMinLog}
}

// Result is the full output of DecodeTrace.
//
//   - Path   : decoded state per step: Path[k] == Particles[Indices[k], k].
//   - Indices: particle index per step, obtained by following backpointers
//     from the terminal particle.
//   - Score  : cumulative log-score (delta) of the terminal particle.
type Result struct {
	Path    []int
	Indices []int
	Score   float64
}
