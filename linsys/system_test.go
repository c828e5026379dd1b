package linsys_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/katalvlaran/lvgauss/linsys"
	"github.com/katalvlaran/lvgauss/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewZeroSystem(t *testing.T) {
	s, err := linsys.New(4)
	require.NoError(t, err)
	require.Equal(t, 4, s.N())
	require.NoError(t, s.Validate())
	require.Len(t, s.B, 4)
	require.Len(t, s.X, 4)

	_, err = linsys.New(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = linsys.New(10, linsys.WithMaxElements(119))
	require.ErrorIs(t, err, linsys.ErrAllocation)
	_, err = linsys.New(10, linsys.WithMaxElements(120)) // 10² + 2·10
	require.NoError(t, err)
}

func TestCloneAndReset(t *testing.T) {
	s, err := linsys.Generate(3)
	require.NoError(t, err)
	s.X[0] = 7

	cp := s.Clone()
	cp.A.RawRow(0)[0] = -1
	cp.B[0] = -1
	require.NotEqual(t, -1.0, s.A.RawRow(0)[0])
	require.NotEqual(t, -1.0, s.B[0])
	require.Equal(t, 7.0, cp.X[0])
	require.Equal(t, s.Origin(), cp.Origin())

	s.ResetSolution()
	require.Equal(t, []float64{0, 0, 0}, s.X)
}

func TestValidateShape(t *testing.T) {
	var nilSys *linsys.System
	require.ErrorIs(t, nilSys.Validate(), linsys.ErrNilSystem)

	s, _ := linsys.New(3)
	s.B = s.B[:2]
	require.ErrorIs(t, s.Validate(), matrix.ErrDimensionMismatch)
}

func TestNewFromDenseRejectsBadShapes(t *testing.T) {
	rect, _ := matrix.NewDense(2, 3)
	_, err := linsys.NewFromDense(rect, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	sq, _ := matrix.NewDense(2, 2)
	_, err = linsys.NewFromDense(sq, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMaxError(t *testing.T) {
	require.Equal(t, 0.0, linsys.MaxError(nil))
	require.Equal(t, 0.0, linsys.MaxError([]float64{1, 1, 1}))
	require.InDelta(t, 0.25, linsys.MaxError([]float64{1, 0.75, 1.1}), 1e-15)
	require.True(t, math.IsInf(linsys.MaxError([]float64{1, math.Inf(-1)}), 1))
	require.True(t, math.IsNaN(linsys.MaxError([]float64{math.NaN(), 1})))
}

func TestResidualOfExactSolution(t *testing.T) {
	s, err := linsys.Generate(5)
	require.NoError(t, err)
	for i := range s.X {
		s.X[i] = 1
	}
	res, err := linsys.Residual(s)
	require.NoError(t, err)
	require.Equal(t, 0.0, res) // b was summed in the same order as MatVec

	_, err = linsys.Residual(nil)
	require.ErrorIs(t, err, linsys.ErrNilSystem)
}

func TestDumps(t *testing.T) {
	a, _ := matrix.NewDenseFromRows([][]float64{{2, 1}, {0, 4}})
	s, err := linsys.NewFromDense(a, []float64{3, 4})
	require.NoError(t, err)
	s.X[0], s.X[1] = 1, 1

	var buf bytes.Buffer
	require.NoError(t, linsys.DumpInput(&buf, s))
	require.Equal(t, "Original A = \n 2.0e+00  1.0e+00 \n 0.0e+00  4.0e+00 \nOriginal b = \n 3.0e+00 \n 4.0e+00 \n", buf.String())

	buf.Reset()
	require.NoError(t, linsys.DumpResult(&buf, s))
	require.Contains(t, buf.String(), "Triangular A = \n")
	require.Contains(t, buf.String(), "Updated b = \n")
	require.Contains(t, buf.String(), "Solution x = \n 1.0e+00 \n 1.0e+00 \n")
}
