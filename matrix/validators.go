// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors wrapped with a validator tag so errors.Is keeps working.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// Shaped is anything with a row and column count (Dense, IntDense).
type Shaped interface {
	Rows() int
	Cols() int
}

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures m is neither a nil interface nor a typed nil pointer.
// Returns ErrNilMatrix otherwise.
// Complexity: O(1).
func ValidateNotNil(m Shaped) error {
	switch v := m.(type) {
	case nil:
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	case *Dense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	case *IntDense:
		if v == nil {
			return validatorErrorf("ValidateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// ValidateNonEmpty ensures m has at least one row and one column.
// Zero-value Dense{} and IntDense{} fail here. Assumes m is not nil.
func ValidateNonEmpty(m Shaped) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf(fmt.Sprintf("ValidateNonEmpty: %dx%d", m.Rows(), m.Cols()), ErrInvalidDimensions)
	}

	return nil
}

// ValidateShape ensures m is exactly rows×cols.
// Assumes m is not nil (caller must ensure).
func ValidateShape(m Shaped, rows, cols int) error {
	if m.Rows() != rows {
		return validatorErrorf(fmt.Sprintf("ValidateShape: Rows %d != %d", m.Rows(), rows), ErrDimensionMismatch)
	}
	if m.Cols() != cols {
		return validatorErrorf(fmt.Sprintf("ValidateShape: Cols %d != %d", m.Cols(), cols), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Implementation: assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Shaped) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m in row-major order and reports the first NaN or ±Inf.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v = m.data[Index(i, j, m.c)]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}
