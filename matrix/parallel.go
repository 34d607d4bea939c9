// SPDX-License-Identifier: MIT
// Package matrix: the parallel multiplication engine.
//
// MultiplyParallel computes the same product as Multiply with one task per
// output column. Protocol:
//
//  1. validate shapes (no goroutine is started on failure);
//  2. allocate a rows×cols accumulator shared by all tasks;
//  3. run one task per column h on a bounded pool; a task computes
//     Σ_k a[g][k]*b[k][h] for every row g and stores each value into slot [g][h];
//  4. join every worker, then report task failures as one ConcurrencyError;
//  5. seal the accumulator and freeze its cells into the result Matrix.
//
// The operands are immutable and read without locking. Only the store into the
// accumulator is synchronized, and only for that single write.

package matrix

import (
	"errors"
	"fmt"
)

// errSkipColumn, returned by the column fault hook, makes a task finish
// without storing anything. Tests use it to reach the readback failure path.
var errSkipColumn = errors.New("matrix: skip column")

// MultiplyParallel performs C = A × B with output columns computed concurrently.
//
// The pool size is min(cols(B), GOMAXPROCS) by default; see WithWorkers and
// WithUnboundedWorkers. The result does not depend on scheduling: it always
// equals Multiply(a, b).
//
// Errors:
//   - *ShapeError (ErrNilMatrix, ErrBadShape, ErrDimensionMismatch), before any work starts.
//   - *ConcurrencyError with Stage == StageWorker when one or more column tasks
//     failed; Column names the first failing column, Err joins every cause.
//   - *ConcurrencyError with Stage == StageReadback when the shared result
//     could not be read back complete.
//
// A nil *Matrix is returned whenever err != nil; partial products are never exposed.
//
// Complexity:
//   - Time O(r*n*c) split over the pool, Space O(r*c).
func MultiplyParallel(a, b *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, retag(opMulParallel, err)
	}

	o := gatherOptions(opts...)
	rows, cols := a.r, b.c
	acc := newAccumulator(rows, cols)

	column := func(h int) error {
		if o.columnFault != nil {
			switch err := o.columnFault(h); {
			case errors.Is(err, errSkipColumn):
				return nil
			case err != nil:
				return fmt.Errorf("column %d: %w", h, err)
			}
		}
		for g := 0; g < rows; g++ {
			if err := acc.store(g, h, columnValue(a, b, g, h)); err != nil {
				return fmt.Errorf("column %d: %w", h, err)
			}
		}

		return nil
	}

	if failures := runTasks(cols, o.poolSize(cols), column); len(failures) > 0 {
		return nil, &ConcurrencyError{
			Stage:  StageWorker,
			Column: failures[0].task,
			Failed: len(failures),
			Err:    joinFailures(failures),
		}
	}

	cells, err := acc.seal()
	if err != nil {
		return nil, &ConcurrencyError{Stage: StageReadback, Column: -1, Err: err}
	}

	m, err := fromFlat(rows, cols, cells)
	if err != nil {
		return nil, matrixErrorf(opMulParallel, err)
	}

	return m, nil
}
