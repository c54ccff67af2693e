// Package lvchirp holds the dynamic-programming kernels behind bioacoustic
// pitch tracking and song comparison.
//
// 🚀 What is lvchirp?
//
//	A small, pure-Go library with two independent recursions over dense
//	score tables:
//		• viterbi: MAP trajectory through particle-filter proposals
//		• dtw    : forward pass of dynamic time warping under weighted step sets
//
// ✨ Why?
//
//   - Deterministic – fixed scan orders, lowest-index tie-breaking, no randomness
//   - Safe surface – shapes and numeric preconditions rejected before computing
//   - Pure Go – no cgo; scratch space lives exactly as long as one call
//
// Under the hood, everything is organized under four subpackages:
//
//	matrix/ : row-major Dense / IntDense containers, Index helper, validators
//	viterbi/: Decode, DecodeTrace, DecodeBatch, RandomWalkLogNormal
//	dtw/    : Forward, ForwardInto, ForwardBatch, Default/Itakura/Dynamic step sets
//	logging/: slog wrapper used by the batch drivers
//
// Building likelihood tables, sampling proposals, computing distance matrices
// and extracting the DTW alignment path belong to the host application.
//
//	go get github.com/katalvlaran/lvchirp
package lvchirp
