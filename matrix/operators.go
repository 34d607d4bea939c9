// SPDX-License-Identifier: MIT
// Package matrix: operator-style convenience surface.
//
// Go has no operator overloading, so "a * b" and "a == b" are spelled Mul and
// Equal. Mul keeps the checked contract; MustMul is the one deliberate place
// where a failure aborts instead of being returned.

package matrix

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; nil never equals a non-nil matrix.
// Complexity: O(r*c).
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Equal is the method form of Equal(m, other).
func (m *Matrix) Equal(other *Matrix) bool { return Equal(m, other) }

// Mul is the product operator: MultiplyParallel with default options.
// It returns the same *ShapeError and *ConcurrencyError values.
func Mul(a, b *Matrix) (*Matrix, error) {
	return MultiplyParallel(a, b)
}

// MustMul is like Mul but panics if the product cannot be computed.
//
// It exists for callers that treat an incompatible product as a programming
// error, in the spirit of regexp.MustCompile; the panic value is the error
// Mul would have returned. Use Mul whenever shapes come from input.
func MustMul(a, b *Matrix) *Matrix {
	m, err := Mul(a, b)
	if err != nil {
		panic(err)
	}

	return m
}
