package dtw

import "errors"

// Errors:
//   - ErrNilMatrix    : M, D or S is nil.
//   - ErrShapeMismatch: D or S is not shaped like M.
//   - ErrTooFewSteps  : fewer than two steps; the seed cell records step 1.
//   - ErrBadStep      : a step with a negative offset, a zero (0,0) offset,
//     or a non-finite weight.
//   - ErrBadInput     : invalid arguments to a step-set builder.
var (
	// ErrNilMatrix indicates a nil distance or output matrix.
	ErrNilMatrix = errors.New("dtw: nil matrix")

	// ErrShapeMismatch indicates output buffers not sized like the distance matrix.
	ErrShapeMismatch = errors.New("dtw: output shape must match distance matrix")

	// ErrTooFewSteps indicates a step set with fewer than MinSteps entries.
	ErrTooFewSteps = errors.New("dtw: step set needs at least two steps")

	// ErrBadStep indicates a step that would break the row-major dependency order.
	ErrBadStep = errors.New("dtw: invalid step")

	// ErrBadInput indicates invalid arguments to a step-set builder.
	ErrBadInput = errors.New("dtw: invalid input")
)
