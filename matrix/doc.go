// Package matrix provides the fixed-shape, row-major containers shared by the
// dynamic-programming kernels in lvchirp.
//
// The matrix package provides:
//
//   - Dense: an r×c float64 table (score tables, distance matrices, costs).
//   - IntDense: an r×c int table (particle states, backpointers, step choices).
//   - Index: the single row-major offset formula row*stride + col.
//   - Validators returning plain sentinel errors for shape and numeric checks.
//
// Storage order is C order: the last index varies fastest, so element (i, j)
// of an r×c table lives at offset i*c + j of its backing slice. Host code that
// already holds a flat buffer in that order can wrap it with NewDenseFrom or
// NewIntDenseFrom without reshaping.
//
// Public accessors (At/Set) never panic on bad indices; they return
// ErrOutOfRange wrapped with the method name and coordinates. Kernels that
// have already validated shapes use Data() and Index directly.
package matrix
