package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/st7ma784/LSASensitivity/matrix"
)

func TestValidate_OK(t *testing.T) {
	require.NoError(t, matrix.Validate(matrix.Matrix{{0, 1.5}, {2, 3}}))
}

func TestValidate_Empty(t *testing.T) {
	require.ErrorIs(t, matrix.Validate(nil), matrix.ErrEmpty)
	require.ErrorIs(t, matrix.Validate(matrix.Matrix{}), matrix.ErrEmpty)
	require.ErrorIs(t, matrix.Validate(matrix.Matrix{{}}), matrix.ErrEmpty)
}

func TestValidate_Ragged(t *testing.T) {
	m := matrix.Matrix{{1, 2}, {3}}
	require.ErrorIs(t, matrix.Validate(m), matrix.ErrRagged)
}

func TestValidate_NaNInf(t *testing.T) {
	require.ErrorIs(t, matrix.Validate(matrix.Matrix{{1, math.NaN()}}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.Validate(matrix.Matrix{{math.Inf(1), 1}}), matrix.ErrNaNInf)
}

func TestValidate_Negative(t *testing.T) {
	require.ErrorIs(t, matrix.Validate(matrix.Matrix{{1, -0.1}}), matrix.ErrNegative)
}

func TestIsValid(t *testing.T) {
	require.True(t, matrix.IsValid(matrix.Matrix{{5}}))
	require.False(t, matrix.IsValid(matrix.Matrix{{-5}}))
}

func TestValidateShape(t *testing.T) {
	require.NoError(t, matrix.ValidateShape(0, 0))
	require.NoError(t, matrix.ValidateShape(3, 4))
	require.ErrorIs(t, matrix.ValidateShape(-1, 4), matrix.ErrBadShape)
}
