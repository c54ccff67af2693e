// Package viterbi decodes the maximum-a-posteriori (MAP) state trajectory
// through a fixed pool of particle trajectories.
//
// What is it?
//
//	A particle filter proposes N candidate state sequences ("particles") over
//	K time steps. Each particle visits one discrete state per step (for pitch
//	tracking: a quantized pitch bin). The reverse Viterbi filter picks, at each
//	step, the particle value lying on the single path that maximizes
//
//	  Σ_k  loglikelihood[x_k, k]  +  Σ_k  logtransition(x_k − x_{k−1}, k−1)
//
//	where the search is restricted to the particles actually proposed. This
//	costs O(N²K) instead of the O(S²K) of a Viterbi pass over the full state
//	space S.
//
// Transition scores come from a discretized proposal density indexed by the
// jump x_j − x_i + nP/2. Cells of that table at or below the floor MinLog are
// treated as undefined and replaced by a fallback density (LogNormal), for
// example the Gaussian random walk built by RandomWalkLogNormal. Jumps outside
// the table and states outside the likelihood table score MinLog instead of
// failing: the floor is a soft penalty, not an error.
//
// Tie-breaking is part of the contract: among equal scores the lowest particle
// index wins, both in the recursion and when choosing the terminal particle.
//
// Usage:
//
//	p := viterbi.Problem{
//		Particles:     particles,     // N×K *matrix.IntDense
//		LogLikelihood: loglikelihood, // nL×K *matrix.Dense
//		LogProposal:   logproposal,   // nP×(K-1) *matrix.Dense
//		LogNormal:     lognormal,     // len nP
//	}
//	path, err := viterbi.Decode(p, nil) // nil → DefaultOptions()
//
// Complexity:
//
//   - Time:   O(N²·K)
//   - Memory: O(N·K) scratch, released when Decode returns.
package viterbi
