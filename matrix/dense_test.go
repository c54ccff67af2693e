// Package matrix_test contains unit tests for the Dense and IntDense containers.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvchirp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1) // negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewIntDense(0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows(), Cols() and Shape() agree.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)

	im, err := matrix.NewIntDense(2, 2)
	require.NoError(t, err)
	_, err = im.At(2, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, im.Set(-1, 0, 1), matrix.ErrOutOfRange)
}

// TestSetAcceptsInf checks that +Inf is storable (unreachable DP cells).
func TestSetAcceptsInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, math.Inf(1)))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))
}

// TestRowMajorLayout pins the "last index varies fastest" contract.
func TestRowMajorLayout(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 3, []float64{0, 1, 2, 10, 11, 12})
	require.NoError(t, err)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 12.0, v)
	require.Equal(t, 5, matrix.Index(1, 2, 3))

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{10, 11, 12}, row)

	// Data aliases storage.
	m.Data()[matrix.Index(0, 1, m.Cols())] = 42
	v, _ = m.At(0, 1)
	require.Equal(t, 42.0, v)
}

// TestNewDenseFromLengthMismatch rejects a buffer that is not rows*cols long.
func TestNewDenseFromLengthMismatch(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewIntDenseFrom(1, 2, []int{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestNewFromRows covers the jagged-row constructors.
func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3, 4}, m.Data())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	im, err := matrix.NewIntDenseFromRows([][]int{{0, 0}, {1, 1}})
	require.NoError(t, err)
	v, err := im.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)

	_, err = matrix.NewIntDenseFromRows([][]int{{0}, {1, 1}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 2}})
	require.NoError(t, err)

	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3.0)) // modify the clone only

	orig, _ := m.At(0, 0)
	require.Equal(t, 1.0, orig)

	im, err := matrix.NewIntDenseFromRows([][]int{{7}})
	require.NoError(t, err)
	ic := im.Clone()
	require.NoError(t, ic.Set(0, 0, 8))
	iv, _ := im.At(0, 0)
	require.Equal(t, 7, iv)
}

// TestFillAndString exercises Fill and the diagnostic dump.
func TestFillAndString(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	m.Fill(1.5)
	require.Equal(t, "[1.5, 1.5]\n[1.5, 1.5]\n", m.String())

	im, err := matrix.NewIntDenseFrom(1, 3, []int{1, -2, 3})
	require.NoError(t, err)
	require.Equal(t, "[1, -2, 3]\n", im.String())
}
