package gauss_test

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvgauss/gauss"
	"github.com/katalvlaran/lvgauss/linsys"
	"github.com/katalvlaran/lvgauss/parallel"
	"github.com/stretchr/testify/require"
)

func TestSolveSmallEveryConfig(t *testing.T) {
	for _, kind := range parallel.Kinds() {
		for _, v := range gauss.BackSubs() {
			s := small3(t)
			rep, err := gauss.Solve(s, gauss.WithBackend(kind, 3), gauss.WithBackSub(v))
			require.NoError(t, err)
			require.InDeltaSlice(t, []float64{1, 1, 1}, s.X, 1e-9, "%s/%s", kind, v)
			require.Equal(t, kind.String(), rep.Backend)
			require.Equal(t, v, rep.BackSub)
			require.True(t, math.IsNaN(rep.MaxError), "loaded systems have no reference solution")
		}
	}
}

// TestRunGeneratedAccuracy: generated systems of several sizes solve to the
// all-ones vector for every backend and unit count.
func TestRunGeneratedAccuracy(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17, 100} {
		for _, kind := range parallel.Kinds() {
			for _, units := range []int{1, 4, 9} {
				s, rep, err := gauss.Run(gauss.Generated(n), gauss.WithBackend(kind, units))
				require.NoError(t, err)
				require.Equal(t, n, rep.N)
				require.Less(t, rep.MaxError, 1e-9, "n=%d %s/%d", n, kind, units)
				require.Equal(t, rep.MaxError, linsys.MaxError(s.X))
				require.False(t, rep.Triangular)
			}
		}
	}
}

// TestSolveMatchesGonum cross-checks against an LU solve of the same system.
func TestSolveMatchesGonum(t *testing.T) {
	const n = 64
	s, err := linsys.Generate(n)
	require.NoError(t, err)

	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		data = append(data, s.A.RawRow(i)...)
	}
	a := mat.NewDense(n, n, data)
	b := mat.NewVecDense(n, append([]float64(nil), s.B...))
	var want mat.VecDense
	require.NoError(t, want.SolveVec(a, b))

	_, err = gauss.Solve(s, gauss.WithBackend(parallel.KindGroup, 4))
	require.NoError(t, err)
	require.True(t, floats.EqualApprox(want.RawVector().Data, s.X, 1e-10))
}

// TestTriangularSkipsElimination: skipping elimination on an
// upper-triangular system gives the same x as eliminating it anyway.
func TestTriangularSkipsElimination(t *testing.T) {
	ex := newExec(t, parallel.KindLoop, 4)
	s, rep, err := gauss.Run(gauss.Generated(30, linsys.WithTriangular(true)), gauss.WithExecutor(ex))
	require.NoError(t, err)
	require.True(t, rep.Triangular)
	require.Less(t, rep.MaxError, 1e-9)

	full, err := linsys.Generate(30, linsys.WithTriangular(true))
	require.NoError(t, err)
	require.NoError(t, gauss.Eliminate(full, ex))
	require.NoError(t, gauss.BackSubstitute(full, ex, gauss.DefaultBackSub))
	require.Equal(t, full.X, s.X)
	require.Equal(t, linsys.MaxError(full.X), rep.MaxError)

	// The option forces the skip for a system that does not know it is triangular.
	loaded := small3(t)
	require.NoError(t, gauss.Eliminate(loaded, ex))
	loaded.ResetSolution()
	rep, err = gauss.Solve(loaded, gauss.WithExecutor(ex), gauss.WithTriangular(true))
	require.NoError(t, err)
	require.True(t, rep.Triangular)
	require.InDeltaSlice(t, []float64{1, 1, 1}, loaded.X, 1e-12)
}

func TestRunFromFileWithResidual(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sys.txt")
	require.NoError(t, linsys.Save(path, small3(t)))

	s, rep, err := gauss.Run(gauss.FromFile(path), gauss.WithResidual(), gauss.WithBackend(parallel.KindPool, 2))
	require.NoError(t, err)
	require.Equal(t, linsys.OriginLoaded, s.Origin())
	require.True(t, math.IsNaN(rep.MaxError))
	require.Equal(t, 0.0, rep.Residual)
	require.Contains(t, rep.String(), "  RES= 0.0e+00")
}

func TestRunErrors(t *testing.T) {
	_, _, err := gauss.Run(nil)
	require.ErrorIs(t, err, gauss.ErrNilSource)

	_, _, err = gauss.Run(gauss.FromFile(filepath.Join(t.TempDir(), "missing")))
	require.ErrorIs(t, err, linsys.ErrFormat)

	_, _, err = gauss.Run(gauss.Generated(1000, linsys.WithMaxElements(1000)))
	require.ErrorIs(t, err, linsys.ErrAllocation)

	_, _, err = gauss.Run(gauss.Generated(0))
	require.Error(t, err)

	_, err = gauss.Solve(nil)
	require.ErrorIs(t, err, linsys.ErrNilSystem)

	_, err = gauss.Solve(small3(t), gauss.WithBackend(parallel.Kind(99), 2))
	require.ErrorIs(t, err, parallel.ErrUnknownKind)
}

func TestSolveDebugDump(t *testing.T) {
	var buf bytes.Buffer
	_, err := gauss.Solve(small3(t), gauss.WithDebug(&buf), gauss.WithBackend(parallel.KindSerial, 1))
	require.NoError(t, err)

	out := buf.String()
	order := []string{"Original A = ", "Original b = ", "Triangular A = ", "Updated b = ", "Solution x = "}
	last := -1
	for _, title := range order {
		i := strings.Index(out, title)
		require.Greater(t, i, last, title)
		last = i
	}
	require.Contains(t, out, " 8.0e+00  7.0e+00  9.0e+00 \n")
	require.True(t, strings.HasSuffix(out, "Solution x = \n 1.0e+00 \n 1.0e+00 \n 1.0e+00 \n"))
}

func TestSolveLogsPhases(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	_, _, err := gauss.Run(gauss.Generated(8), gauss.WithLogger(zap.New(core)), gauss.WithBackend(parallel.KindLoop, 2))
	require.NoError(t, err)

	require.Equal(t, 1, logs.FilterMessage("system ready").Len())
	phases := logs.FilterMessage("phase done").All()
	require.Len(t, phases, 2)
	require.Equal(t, "eliminate", phases[0].ContextMap()["phase"])
	require.Equal(t, "backsub", phases[1].ContextMap()["phase"])
	require.Equal(t, "column", phases[1].ContextMap()["variant"])
}

func TestSolveBorrowedExecutorStaysOpen(t *testing.T) {
	ex := newExec(t, parallel.KindPool, 3)
	for i := 0; i < 3; i++ {
		rep, err := gauss.Solve(small3(t), gauss.WithExecutor(ex))
		require.NoError(t, err)
		require.Equal(t, "pool", rep.Backend)
		require.Equal(t, 3, rep.Units)
	}
}

func TestOptionPanics(t *testing.T) {
	require.PanicsWithValue(t, "gauss: WithBackend: units must be >= 1", func() {
		gauss.WithBackend(parallel.KindLoop, 0)
	})
	require.PanicsWithValue(t, "gauss: WithBackSub: unknown variant", func() {
		gauss.WithBackSub(gauss.BackSub(-1))
	})
}

func TestReportString(t *testing.T) {
	rep := gauss.Report{
		Units:          4,
		MaxError:       0,
		Residual:       math.NaN(),
		Init:           1500 * time.Millisecond,
		Eliminate:      300 * time.Microsecond,
		BackSubstitute: 0,
	}
	require.Equal(t, "Nthreads= 4  ERR= 0.0e+00  INIT:   1.5000s  GAUS:   0.0003s  BSUB:   0.0000s", rep.String())

	rep.Units, rep.MaxError, rep.Residual = 12, math.NaN(), 2.5e-13
	require.Equal(t, "Nthreads=12  ERR=     NaN  INIT:   1.5000s  GAUS:   0.0003s  BSUB:   0.0000s  RES= 2.5e-13", rep.String())
}
