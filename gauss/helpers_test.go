package gauss_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvgauss/gauss"
	"github.com/katalvlaran/lvgauss/linsys"
	"github.com/katalvlaran/lvgauss/matrix"
	"github.com/katalvlaran/lvgauss/parallel"
	"github.com/stretchr/testify/require"
)

// small3 is the 3×3 system whose solution is the all-ones vector.
func small3(t testing.TB) *linsys.System {
	t.Helper()
	a, err := matrix.NewDenseFromRows([][]float64{
		{2, 1, 1},
		{4, 3, 3},
		{8, 7, 9},
	})
	require.NoError(t, err)
	s, err := linsys.NewFromDense(a, []float64{4, 10, 24})
	require.NoError(t, err)

	return s
}

func newExec(t testing.TB, kind parallel.Kind, units int) parallel.Executor {
	t.Helper()
	ex, err := parallel.New(kind, units)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, ex.Close()) })

	return ex
}

// eachConfig runs fn for every backend × unit count × variant combination.
func eachConfig(t *testing.T, fn func(t *testing.T, ex parallel.Executor, v gauss.BackSub)) {
	t.Helper()
	for _, kind := range parallel.Kinds() {
		for _, units := range []int{1, 2, 3, 4, 7} {
			ex := newExec(t, kind, units)
			for _, v := range gauss.BackSubs() {
				t.Run(fmt.Sprintf("%s/%d/%s", kind, units, v), func(t *testing.T) {
					fn(t, ex, v)
				})
			}
		}
	}
}
