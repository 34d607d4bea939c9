// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep constructors and kernels minimal by delegating nil/shape checks here.
//  - Return *ShapeError values so every entry point reports identical failures.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing on success.
//  - ValidateRectangular is O(rows); the others are O(1).

package matrix

// ValidateNotNil ensures m is a non-nil matrix with a positive shape.
// The zero Matrix value is rejected with ErrBadShape.
// Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return &ShapeError{Op: "ValidateNotNil", Row: -1, Err: ErrNilMatrix}
	}
	if m.r <= 0 || m.c <= 0 {
		return &ShapeError{Op: "ValidateNotNil", Left: m.Shape(), Row: -1, Err: ErrBadShape}
	}

	return nil
}

// ValidateRectangular ensures data has at least one row, a non-empty first
// row, and that every row has the first row's length.
// The first ragged row is reported.
// Complexity: O(rows).
func ValidateRectangular(data [][]int32) error {
	if len(data) == 0 || len(data[0]) == 0 {
		s := Shape{Rows: len(data)}
		if len(data) > 0 {
			s.Cols = len(data[0])
		}

		return &ShapeError{Op: "ValidateRectangular", Left: s, Row: -1, Err: ErrBadShape}
	}

	want := len(data[0])
	for i, row := range data {
		if len(row) != want {
			return &ShapeError{
				Op:   "ValidateRectangular",
				Left: Shape{Rows: len(data), Cols: want},
				Row:  i,
				Got:  len(row),
				Err:  ErrRaggedRows,
			}
		}
	}

	return nil
}

// ValidateMulCompatible ensures both operands are valid and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrBadShape, ErrDimensionMismatch (all as *ShapeError).
// A bad-shaped operand is named in ShapeError.Operand.
// Complexity: O(1).
func ValidateMulCompatible(a, b *Matrix) error {
	if a == nil || b == nil {
		return &ShapeError{Op: "ValidateMulCompatible", Left: shapeOf(a), Right: shapeOf(b), Row: -1, Err: ErrNilMatrix}
	}
	if a.r <= 0 || a.c <= 0 {
		return &ShapeError{Op: "ValidateMulCompatible", Left: a.Shape(), Right: b.Shape(), Row: -1, Operand: OperandLeft, Err: ErrBadShape}
	}
	if b.r <= 0 || b.c <= 0 {
		return &ShapeError{Op: "ValidateMulCompatible", Left: a.Shape(), Right: b.Shape(), Row: -1, Operand: OperandRight, Err: ErrBadShape}
	}
	if a.c != b.r {
		return &ShapeError{Op: "ValidateMulCompatible", Left: a.Shape(), Right: b.Shape(), Row: -1, Err: ErrDimensionMismatch}
	}

	return nil
}

// shapeOf is Shape(); the nil receiver yields the zero Shape.
func shapeOf(m *Matrix) Shape { return m.Shape() }

// retag rewrites the operation tag of a *ShapeError so facades report their
// own name; other errors pass through unchanged.
func retag(op string, err error) error {
	if se, ok := err.(*ShapeError); ok {
		cp := *se
		cp.Op = op

		return &cp
	}

	return err
}
