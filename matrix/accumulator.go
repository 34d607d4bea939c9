// SPDX-License-Identifier: MIT
// Package matrix: shared output buffer of the parallel engine.
//
// accumulator is the only mutable state shared between column tasks. It is
// pre-sized to rows×cols, so each task writes its values straight into their
// [row][col] slot: completion order cannot reorder a row. One mutex guards
// the write step only; no task holds it while computing.

package matrix

import (
	"fmt"
	"sync"
)

type accumulator struct {
	mu      sync.Mutex
	rows    int
	cols    int
	cells   []int32 // row-major, len == rows*cols
	written []bool  // written[i] reports whether cells[i] was stored
	filled  int     // number of distinct cells stored
	sealed  bool    // set by seal; later stores fail
}

func newAccumulator(rows, cols int) *accumulator {
	return &accumulator{
		rows:    rows,
		cols:    cols,
		cells:   make([]int32, rows*cols),
		written: make([]bool, rows*cols),
	}
}

// store writes v into slot (row, col).
// Errors: ErrOutOfRange, ErrDuplicateWrite, ErrSealed.
func (acc *accumulator) store(row, col int, v int32) error {
	if row < 0 || row >= acc.rows || col < 0 || col >= acc.cols {
		return fmt.Errorf("store(%d,%d): %w", row, col, ErrOutOfRange)
	}
	idx := row*acc.cols + col

	acc.mu.Lock()
	defer acc.mu.Unlock()

	if acc.sealed {
		return fmt.Errorf("store(%d,%d): %w", row, col, ErrSealed)
	}
	if acc.written[idx] {
		return fmt.Errorf("store(%d,%d): %w", row, col, ErrDuplicateWrite)
	}
	acc.cells[idx] = v
	acc.written[idx] = true
	acc.filled++

	return nil
}

// seal closes the accumulator to further stores and hands its cells over.
// It fails with ErrIncompleteResult when any slot was never written, and with
// ErrSealed on a second call.
func (acc *accumulator) seal() ([]int32, error) {
	acc.mu.Lock()
	defer acc.mu.Unlock()

	if acc.sealed {
		return nil, fmt.Errorf("seal: %w", ErrSealed)
	}
	acc.sealed = true

	if missing := len(acc.cells) - acc.filled; missing != 0 {
		return nil, fmt.Errorf("seal: %d of %d cells: %w", missing, len(acc.cells), ErrIncompleteResult)
	}
	cells := acc.cells
	acc.cells, acc.written = nil, nil

	return cells, nil
}
