package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/levinson/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewToeplitz checks the constant-diagonal layout and symmetry.
func TestNewToeplitz(t *testing.T) {
	m, err := matrix.NewToeplitz([]float64{4, 2, 1})
	require.NoError(t, err)
	Compare(t, [][]float64{
		{4, 2, 1},
		{2, 4, 2},
		{1, 2, 4},
	}, m)

	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.True(t, matrix.Equal(m, mt, matrix.WithEpsilon(0)))
}

// TestNewToeplitzErrors covers the empty and non-finite generator cases.
func TestNewToeplitzErrors(t *testing.T) {
	_, err := matrix.NewToeplitz(nil)
	require.ErrorIs(t, err, matrix.ErrEmptySequence)

	_, err = matrix.NewToeplitz([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewToeplitz([]float64{1, math.NaN()}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
}
