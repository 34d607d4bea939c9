// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for construction and products.
//   • Keep seeds fixed so every failure is reproducible.

package matrix_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/intmat/matrix"
)

// mustNew builds a Matrix from rows or fails the test.
func mustNew(tb testing.TB, rows [][]int32) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.New(rows)
	if err != nil {
		tb.Fatalf("New(%v): %v", rows, err)
	}

	return m
}

// mustGenerate builds a seeded r×c Matrix or fails the test.
func mustGenerate(tb testing.TB, r, c int, seed int64) *matrix.Matrix {
	tb.Helper()
	m, err := matrix.Generate(r, c, matrix.WithSeed(seed))
	if err != nil {
		tb.Fatalf("Generate(%d,%d): %v", r, c, err)
	}

	return m
}

// requireData compares m's elements with want and reports a cmp diff.
func requireData(tb testing.TB, want [][]int32, m *matrix.Matrix) {
	tb.Helper()
	if diff := cmp.Diff(want, m.Data()); diff != "" {
		tb.Fatalf("matrix data mismatch (-want +got):\n%s", diff)
	}
}

// naiveProduct is an independent i→j→k oracle written against Data().
func naiveProduct(a, b *matrix.Matrix) [][]int32 {
	ad, bd := a.Data(), b.Data()
	out := make([][]int32, len(ad))
	for i := range ad {
		out[i] = make([]int32, len(bd[0]))
		for j := range out[i] {
			var sum int32
			for k := range bd {
				sum += ad[i][k] * bd[k][j]
			}
			out[i][j] = sum
		}
	}

	return out
}
