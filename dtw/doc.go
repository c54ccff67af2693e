// Package dtw computes the forward pass of Dynamic Time Warping (DTW) over a
// precomputed pairwise distance matrix and a weighted set of warping steps.
//
// 🚀 What is DTW?
//
//	DTW finds the best match between two sequences by warping the time
//	axis to minimize cumulative distance. In bioacoustics it aligns pitch
//	traces or spectrogram frames of two renditions of the same song syllable.
//
// ✨ What this package does:
//   - Forward: fill the accumulated-cost matrix D and step-choice matrix S
//     for a distance matrix M (rows: reference frames, cols: target frames).
//   - Step sets: each Step (Row, Col, Weight) is a move that ends at the
//     current cell; DefaultSteps, ItakuraSteps and DynamicSteps build the
//     usual sets.
//   - ForwardBatch: many independent matrices, concurrently.
//
// Path extraction is left to the caller: walking S backwards from the last
// cell, subtracting (Row, Col) of the recorded step, recovers the alignment.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvchirp/dtw"
//
//	D, S, err := dtw.Forward(M, dtw.DefaultSteps(), nil)
//	cost, _ := D.At(M.Rows()-1, M.Cols()-1)
//
// Recurrence (row-major scan, i outer, j inner):
//
//	D[0,0] = M[0,0],                  S[0,0] = 1
//	D[i,j] = min_k  w_k·M[i,j] + D[i−r_k, j−c_k]   over steps with i ≥ r_k, j ≥ c_k
//	S[i,j] = the lowest k attaining that minimum
//
// Performance:
//
//   - Time:   O(rows·cols·len(steps))
//   - Memory: none beyond D and S (ForwardInto writes caller-owned buffers).
package dtw
