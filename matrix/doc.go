// Package matrix provides immutable rectangular int32 matrices and two
// multiplication engines that always agree bit for bit.
//
// The matrix package provides:
//
//   - New / Generate: validated construction. Ragged or empty input is a
//     *ShapeError, never a panic deep inside arithmetic.
//   - Multiply: the sequential reference product (i→k→j, one allocation).
//   - MultiplyParallel: one task per output column on a bounded goroutine
//     pool, each task writing into its own [row][col] slots of a pre-sized
//     shared buffer under a mutex held for a single write only.
//   - Equal, Mul, MustMul, String ("Matrix(R * C)") and Grid: the operator
//     surface.
//
// Errors come in two classes so callers can tell bad input from an execution
// fault:
//
//	var se *matrix.ShapeError       // errors.Is(err, matrix.ErrShape)
//	var ce *matrix.ConcurrencyError // errors.Is(err, matrix.ErrConcurrency)
//
// Element arithmetic is native int32: overflow wraps around.
//
// A *Matrix never changes after construction and is safe for concurrent use.
package matrix
