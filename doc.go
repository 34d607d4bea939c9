// Package intmat is a small integer linear-algebra toolkit built around one
// question: how to multiply matrices on many goroutines without races, lost
// updates or silently partial results.
//
// What is inside?
//
//	matrix/       — immutable int32 Matrix, sequential and parallel products,
//	                typed ShapeError / ConcurrencyError, operator surface
//	cmd/matmul/   — demo and benchmark driver
//	internal/cli/ — cobra command tree behind cmd/matmul
//
// Quick example:
//
//	a, _ := matrix.New([][]int32{{1, 2, 2}, {3, 1, 1}})
//	b, _ := matrix.New([][]int32{{4, 2}, {3, 1}, {1, 5}})
//	c, err := matrix.MultiplyParallel(a, b) // [[12 14] [16 12]]
//
// The parallel engine runs one task per output column on a pool of
// min(columns, GOMAXPROCS) goroutines; see matrix.WithWorkers.
//
//	go get github.com/katalvlaran/intmat/matrix
package intmat
