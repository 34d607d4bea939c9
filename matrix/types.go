// SPDX-License-Identifier: MIT

// Package matrix: domain types. This file contains ONLY the Matrix and Shape
// types and their compile-time assertions; constructors live in dense.go,
// errors and options in dedicated files.
package matrix

import (
	"fmt"
	"strconv"
)

// Shape is the (rows, cols) pair describing a matrix's dimensions.
type Shape struct {
	Rows int
	Cols int
}

// String renders the shape as "R * C".
func (s Shape) String() string {
	return strconv.Itoa(s.Rows) + " * " + strconv.Itoa(s.Cols)
}

// Matrix is an immutable rectangular grid of int32 values.
//   - r,c hold dimensions (both >= 1 for every value built by this package).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A Matrix never changes after construction: there are no setters, accessors
// return copies, and every operation allocates a fresh result. That makes a
// *Matrix safe to share between goroutines without locking.
type Matrix struct {
	r, c int     // row and column counts
	data []int32 // contiguous row-major storage (len == r*c)
}

var (
	_ fmt.Stringer  = (*Matrix)(nil)
	_ fmt.Formatter = (*Matrix)(nil)
)
