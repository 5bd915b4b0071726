// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/ttp/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrIndexOutOfBounds on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	require.ErrorIs(t, m.Set(2, 0, 1), matrix.ErrIndexOutOfBounds)
	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

// TestSetRejectsNonFinite keeps NaN/Inf out of distance storage.
func TestSetRejectsNonFinite(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, nan()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, inf()), matrix.ErrNaNInf)

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Zero(t, v)
}

// TestNewDenseFrom copies rows and rejects ragged or non-finite input.
func TestNewDenseFrom(t *testing.T) {
	src := [][]float64{{0, 1, 2}, {1, 0, 3}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	src[0][1] = 99 // the matrix owns its copy
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFrom([][]float64{{1, nan()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestCloneAndRowAreIndependent checks that Clone and Row return deep copies.
func TestCloneAndRowAreIndependent(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 42))
	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	row[0] = -1
	v, _ = m.At(1, 0)
	require.Equal(t, 3.0, v)
}

// TestString ensures the debug representation is stable.
func TestString(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{0, 1.5}, {1.5, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1.5]\n[1.5, 0]\n", m.String())
}
