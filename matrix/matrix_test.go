package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/st7ma784/LSASensitivity/matrix"
)

func TestNewDense_Shape(t *testing.T) {
	m := matrix.NewDense(3, 4)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	for _, row := range m {
		for _, v := range row {
			require.Zero(t, v)
		}
	}
}

func TestNewDense_DegenerateShapes(t *testing.T) {
	require.Equal(t, 0, matrix.NewDense(0, 5).Rows())
	require.Equal(t, 0, matrix.NewDense(5, 0).Rows())
	require.Equal(t, 0, matrix.NewDense(-1, 2).Rows())
}

func TestClone_Independence(t *testing.T) {
	m := matrix.Matrix{{1, 2}, {3, 4}}
	c := m.Clone()
	c[0][0] = 99
	require.Equal(t, 1.0, m[0][0], "clone must not alias the original")
	require.Equal(t, 99.0, c[0][0])
}

func TestClone_Empty(t *testing.T) {
	var m matrix.Matrix
	c := m.Clone()
	require.Equal(t, 0, c.Rows())
}

func TestMax(t *testing.T) {
	require.Equal(t, 7.0, matrix.Matrix{{1, 7}, {3, 2}}.Max())
	require.Equal(t, 0.0, matrix.Matrix{}.Max())
}

func TestFrobenius(t *testing.T) {
	// 3-4-5 triangle: √(9+16) = 5.
	m := matrix.Matrix{{3, 4}}
	require.InDelta(t, 5.0, matrix.Frobenius(m), 1e-12)
	require.Zero(t, matrix.Frobenius(matrix.Matrix{}))
}

func TestTrace_Rectangular(t *testing.T) {
	m := matrix.Matrix{{1, 2, 3}, {4, 5, 6}}
	require.Equal(t, 6.0, matrix.Trace(m)) // 1 + 5, min(rows, cols) = 2
}

func TestMaxAbs(t *testing.T) {
	m := matrix.Matrix{{0.5, 2}, {1, 0}}
	require.Equal(t, 2.0, matrix.MaxAbs(m))
}

func TestToGonum(t *testing.T) {
	m := matrix.Matrix{{1, 2}, {3, 4}}
	d := m.ToGonum()
	require.NotNil(t, d)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 3.0, d.At(1, 0))

	require.Nil(t, matrix.Matrix{}.ToGonum())
}

func TestToGonum_CopiesData(t *testing.T) {
	m := matrix.Matrix{{1, 2}, {3, 4}}
	d := m.ToGonum()
	d.Set(0, 0, math.Pi)
	require.Equal(t, 1.0, m[0][0])
}
