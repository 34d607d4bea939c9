// Package matrix_test verifies the parallel engine: agreement with the
// sequential oracle, independence from scheduling, and failure reporting.
package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"testing"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/stretchr/testify/require"
)

// shapes covers 1, small primes and the 5×18·18×9 case.
var shapes = []struct{ m, n, p int }{
	{1, 1, 1},
	{1, 5, 1},
	{2, 3, 2},
	{3, 1, 7},
	{5, 7, 3},
	{5, 18, 9},
	{13, 11, 17},
	{31, 2, 29},
}

// poolConfigs exercises the bounded default, a tiny pool and the unbounded layout.
var poolConfigs = map[string][]matrix.Option{
	"default":   nil,
	"workers=1": {matrix.WithWorkers(1)},
	"workers=3": {matrix.WithWorkers(3)},
	"unbounded": {matrix.WithUnboundedWorkers()},
}

// TestMultiplyParallelMatchesSequential compares both engines element for element.
func TestMultiplyParallelMatchesSequential(t *testing.T) {
	for name, opts := range poolConfigs {
		for _, tc := range shapes {
			t.Run(fmt.Sprintf("%s/%dx%dx%d", name, tc.m, tc.n, tc.p), func(t *testing.T) {
				a := mustGenerate(t, tc.m, tc.n, int64(tc.m*100+tc.n))
				b := mustGenerate(t, tc.n, tc.p, int64(tc.n*100+tc.p))

				seq, err := matrix.Multiply(a, b)
				require.NoError(t, err)
				par, err := matrix.MultiplyParallel(a, b, opts...)
				require.NoError(t, err)

				require.Equal(t, seq.Shape(), par.Shape())
				requireData(t, seq.Data(), par)
			})
		}
	}
}

// TestMultiplyParallelWrapsAround draws operands from the full int32 range so
// every dot product overflows, and checks the column kernel against both the
// sequential engine and the independent oracle.
func TestMultiplyParallelWrapsAround(t *testing.T) {
	for name, opts := range poolConfigs {
		for _, tc := range shapes {
			t.Run(fmt.Sprintf("%s/%dx%dx%d", name, tc.m, tc.n, tc.p), func(t *testing.T) {
				a, err := matrix.Generate(tc.m, tc.n, matrix.WithSeed(int64(tc.m*31+tc.n)), matrix.WithRange(math.MinInt32, math.MaxInt32))
				require.NoError(t, err)
				b, err := matrix.Generate(tc.n, tc.p, matrix.WithSeed(int64(tc.n*31+tc.p)), matrix.WithRange(math.MinInt32, math.MaxInt32))
				require.NoError(t, err)

				seq, err := matrix.Multiply(a, b)
				require.NoError(t, err)
				par, err := matrix.MultiplyParallel(a, b, opts...)
				require.NoError(t, err)

				requireData(t, naiveProduct(a, b), par)
				requireData(t, seq.Data(), par)
			})
		}
	}
}

// TestMultiplyParallelKnownProduct checks the reference product on the parallel path.
func TestMultiplyParallelKnownProduct(t *testing.T) {
	a := mustNew(t, [][]int32{{1, 2, 2}, {3, 1, 1}})
	b := mustNew(t, [][]int32{{4, 2}, {3, 1}, {1, 5}})

	c, err := matrix.MultiplyParallel(a, b)
	require.NoError(t, err)
	requireData(t, [][]int32{{12, 14}, {16, 12}}, c)
}

// TestMultiplyParallelRepeatable runs the same product many times; the
// interleaving varies, the result must not.
func TestMultiplyParallelRepeatable(t *testing.T) {
	a := mustGenerate(t, 8, 12, 11)
	b := mustGenerate(t, 12, 16, 12)
	first, err := matrix.MultiplyParallel(a, b, matrix.WithUnboundedWorkers())
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		again, err := matrix.MultiplyParallel(a, b, matrix.WithWorkers(1+i%5))
		require.NoError(t, err)
		require.True(t, first.Equal(again), "run %d diverged", i)
	}
}

// TestMultiplyParallelDimensionMismatch ensures no task runs for bad shapes.
func TestMultiplyParallelDimensionMismatch(t *testing.T) {
	a := mustGenerate(t, 5, 18, 1)
	b := mustGenerate(t, 17, 9, 2)

	var calls atomic.Int32
	hook := matrix.WithColumnFault_TestOnly(func(int) error {
		calls.Add(1)
		return nil
	})

	c, err := matrix.MultiplyParallel(a, b, hook)
	require.Nil(t, c)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorIs(t, err, matrix.ErrShape)
	require.NotErrorIs(t, err, matrix.ErrConcurrency)
	require.Zero(t, calls.Load(), "no column task may start on a shape error")
	require.Contains(t, err.Error(), "Matrix(5 * 18)")
	require.Contains(t, err.Error(), "Matrix(17 * 9)")
}

// TestMultiplyParallelWorkerFailure injects failures into two columns.
func TestMultiplyParallelWorkerFailure(t *testing.T) {
	a := mustGenerate(t, 4, 6, 1)
	b := mustGenerate(t, 6, 8, 2)
	errBoom := errors.New("boom")

	var calls atomic.Int32
	hook := matrix.WithColumnFault_TestOnly(func(col int) error {
		calls.Add(1)
		if col == 5 || col == 2 {
			return errBoom
		}
		return nil
	})

	c, err := matrix.MultiplyParallel(a, b, hook, matrix.WithWorkers(3))
	require.Nil(t, c, "partial results must never be returned")
	require.ErrorIs(t, err, matrix.ErrConcurrency)
	require.ErrorIs(t, err, errBoom)
	require.NotErrorIs(t, err, matrix.ErrShape)
	require.Equal(t, int32(8), calls.Load(), "every column must still be dispatched and joined")

	var ce *matrix.ConcurrencyError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, matrix.StageWorker, ce.Stage)
	require.Equal(t, 2, ce.Column)
	require.Equal(t, 2, ce.Failed)
	require.Contains(t, err.Error(), "column 2")
	require.Contains(t, err.Error(), "column 5")
	require.NotContains(t, err.Error(), "\n")
}

// TestMultiplyParallelWorkerPanic ensures a panicking task becomes an error.
func TestMultiplyParallelWorkerPanic(t *testing.T) {
	a := mustGenerate(t, 3, 3, 1)
	b := mustGenerate(t, 3, 4, 2)
	hook := matrix.WithColumnFault_TestOnly(func(col int) error {
		if col == 3 {
			panic("lock poisoned")
		}
		return nil
	})

	for name, opts := range poolConfigs {
		t.Run(name, func(t *testing.T) {
			c, err := matrix.MultiplyParallel(a, b, append([]matrix.Option{hook}, opts...)...)
			require.Nil(t, c)
			require.ErrorIs(t, err, matrix.ErrWorkerPanic)

			var ce *matrix.ConcurrencyError
			require.ErrorAs(t, err, &ce)
			require.Equal(t, matrix.StageWorker, ce.Stage)
			require.Equal(t, 3, ce.Column)
			require.Contains(t, err.Error(), "lock poisoned")
		})
	}
}

// TestMultiplyParallelReadbackFailure makes a column store nothing; the
// coordinator must detect the hole when reading the result back.
func TestMultiplyParallelReadbackFailure(t *testing.T) {
	a := mustGenerate(t, 3, 3, 1)
	b := mustGenerate(t, 3, 4, 2)
	hook := matrix.WithColumnFault_TestOnly(func(col int) error {
		if col == 1 {
			return matrix.ErrSkipColumn_TestOnly
		}
		return nil
	})

	c, err := matrix.MultiplyParallel(a, b, hook)
	require.Nil(t, c)
	require.ErrorIs(t, err, matrix.ErrConcurrency)
	require.ErrorIs(t, err, matrix.ErrIncompleteResult)

	var ce *matrix.ConcurrencyError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, matrix.StageReadback, ce.Stage)
	require.Equal(t, -1, ce.Column)
	require.Contains(t, err.Error(), "3 of 12 cells")
}

// TestMultiplyParallelConcurrentCallers shares operands across many
// simultaneous products; run with -race.
func TestMultiplyParallelConcurrentCallers(t *testing.T) {
	a := mustGenerate(t, 6, 9, 1)
	b := mustGenerate(t, 9, 5, 2)
	want, err := matrix.Multiply(a, b)
	require.NoError(t, err)

	const callers = 16
	results := make(chan *matrix.Matrix, callers)
	errs := make(chan error, callers)
	for i := 0; i < callers; i++ {
		go func() {
			c, err := matrix.MultiplyParallel(a, b)
			results <- c
			errs <- err
		}()
	}
	for i := 0; i < callers; i++ {
		require.NoError(t, <-errs)
		require.True(t, want.Equal(<-results))
	}
}

// TestPoolSize pins the pool sizing policy.
func TestPoolSize(t *testing.T) {
	require.Equal(t, 1, matrix.PoolSize_TestOnly(1))
	require.Equal(t, 4, matrix.PoolSize_TestOnly(10, matrix.WithWorkers(4)))
	require.Equal(t, 3, matrix.PoolSize_TestOnly(3, matrix.WithWorkers(8)))
	require.Equal(t, 100, matrix.PoolSize_TestOnly(100, matrix.WithUnboundedWorkers()))
	require.Equal(t, 2, matrix.PoolSize_TestOnly(100, matrix.WithUnboundedWorkers(), matrix.WithWorkers(2)))
	require.LessOrEqual(t, matrix.PoolSize_TestOnly(1000), 1000)
	require.GreaterOrEqual(t, matrix.PoolSize_TestOnly(1000), 1)
}
