// SPDX-License-Identifier: MIT

// Package matrix - construction & safe read-only accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Validate shape at every construction point: ragged or empty input is a
//     *ShapeError, never a panic later inside arithmetic.
//   - Keep values immutable: New copies caller rows, accessors return copies.
//
// Complexity quicksheet:
//   - New/Generate: O(r*c); At: O(1); Row: O(c); Data: O(r*c).
package matrix

import "fmt"

// ---------- operation tags ----------

const (
	opNew      = "New"
	opGenerate = "Generate"
	opAt       = "At"
	opRow      = "Row"
)

// New builds a Matrix from caller-supplied rows.
//
// Every row must have the first row's length, and both dimensions must be
// positive. The input is copied; later changes to data do not affect the
// returned Matrix.
//
// Errors:
//   - *ShapeError wrapping ErrRaggedRows (names the first offending row).
//   - *ShapeError wrapping ErrBadShape for an empty row set or empty rows.
//
// Complexity: O(r*c) time and memory.
func New(data [][]int32) (*Matrix, error) {
	if err := ValidateRectangular(data); err != nil {
		return nil, retag(opNew, err)
	}

	rows, cols := len(data), len(data[0])
	buf := make([]int32, 0, rows*cols)
	for _, row := range data {
		buf = append(buf, row...)
	}

	return &Matrix{r: rows, c: cols, data: buf}, nil
}

// Generate builds a rows×cols Matrix of independently drawn values in
// [DefaultGenerateLow, DefaultGenerateHigh) unless WithRange says otherwise.
// Draw order is row-major, so WithSeed yields reproducible matrices.
//
// Errors:
//   - *ShapeError wrapping ErrBadShape when rows <= 0 or cols <= 0.
//
// Complexity: O(r*c).
func Generate(rows, cols int, opts ...Option) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ShapeError{Op: opGenerate, Left: Shape{Rows: rows, Cols: cols}, Row: -1, Err: ErrBadShape}
	}

	o := gatherOptions(opts...)
	intn := o.intn()
	span := int64(o.hi) - int64(o.lo)

	data := make([][]int32, rows)
	for i := range data {
		data[i] = make([]int32, cols)
		for j := range data[i] {
			data[i][j] = int32(int64(o.lo) + intn(span))
		}
	}

	m, err := New(data)
	if err != nil {
		return nil, retag(opGenerate, err)
	}

	return m, nil
}

// fromFlat adopts buf (row-major, len == rows*cols) without copying.
// Callers must not retain buf.
func fromFlat(rows, cols int, buf []int32) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ShapeError{Op: "fromFlat", Left: Shape{Rows: rows, Cols: cols}, Row: -1, Err: ErrBadShape}
	}
	if len(buf) != rows*cols {
		return nil, &ShapeError{Op: "fromFlat", Left: Shape{Rows: rows, Cols: cols}, Row: -1, Err: ErrRaggedRows}
	}

	return &Matrix{r: rows, c: cols, data: buf}, nil
}

// Rows returns the row count; 0 for a nil receiver.
func (m *Matrix) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count; 0 for a nil receiver.
func (m *Matrix) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Size returns (rows, cols). It has no side effects; a nil receiver reports (0, 0).
func (m *Matrix) Size() (rows, cols int) { return m.Rows(), m.Cols() }

// Shape packs Size into a Shape value.
func (m *Matrix) Shape() Shape { return Shape{Rows: m.Rows(), Cols: m.Cols()} }

// At returns the element at (row, col), or ErrOutOfRange wrapped with the
// coordinates. A nil receiver yields ErrNilMatrix.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (int32, error) {
	if m == nil {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("%s(%d,%d): %w", opAt, row, col, ErrOutOfRange)
	}

	return m.data[row*m.c+col], nil
}

// Row returns a copy of row i. A nil receiver yields ErrNilMatrix.
// Complexity: O(c).
func (m *Matrix) Row(i int) ([]int32, error) {
	if m == nil {
		return nil, fmt.Errorf("%s(%d): %w", opRow, i, ErrNilMatrix)
	}
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("%s(%d): %w", opRow, i, ErrOutOfRange)
	}
	out := make([]int32, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Data returns a deep copy of the matrix as a slice of rows, suitable for New.
// A nil receiver returns nil.
// Complexity: O(r*c).
func (m *Matrix) Data() [][]int32 {
	if m == nil {
		return nil
	}
	out := make([][]int32, m.r)
	for i := range out {
		out[i] = make([]int32, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}
