// SPDX-License-Identifier: MIT
// Package matrix: the sequential multiplication kernel.
//
// Multiply is the single-goroutine reference product. MultiplyParallel must
// agree with it element for element. Both accumulate in int32; wrapping
// addition is associative, so the differing loop orders give identical bits.

package matrix

// Operation name constants for unified error wrapping.
const (
	opMul         = "Mul"
	opMulParallel = "MultiplyParallel"
)

// Multiply performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); fail before allocating anything.
//   - Stage 2: i→k→j triple loop over row-major buffers into one fresh result.
//
// Behavior highlights:
//   - Operands are never mutated.
//   - Arithmetic is native int32: overflow wraps, it does not saturate or widen.
//
// Errors:
//   - *ShapeError wrapping ErrNilMatrix, ErrBadShape or ErrDimensionMismatch;
//     the message names both operand shapes.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Multiply(a, b *Matrix) (*Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, retag(opMul, err)
	}

	rows, inner, cols := a.r, a.c, b.c
	out := make([]int32, rows*cols)

	var (
		i, k, j    int
		av         int32
		rowA, rowB int // row offsets into a.data / b.data
		rowR       int // row offset into out
	)
	for i = 0; i < rows; i++ {
		rowA = i * inner
		rowR = i * cols
		for k = 0; k < inner; k++ {
			av = a.data[rowA+k]
			if av == 0 {
				continue
			}
			rowB = k * cols
			for j = 0; j < cols; j++ {
				out[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return fromFlat(rows, cols, out)
}

// columnValue computes Σ_k a[row][k] * b[k][col] with int32 wraparound.
// Callers guarantee compatible shapes and in-range indices.
func columnValue(a, b *Matrix, row, col int) int32 {
	var sum int32
	rowA := row * a.c
	for k := 0; k < a.c; k++ {
		sum += a.data[rowA+k] * b.data[k*b.c+col]
	}

	return sum
}
