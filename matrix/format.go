// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen    = "Matrix("
	_fmtClose   = ")"
	_fmtNil     = "Matrix(<nil>)"
	_fmtSep     = " "
	_fmtRowTerm = "\n"
)

// String returns the shape summary "Matrix(R * C)".
func (m *Matrix) String() string {
	if m == nil {
		return _fmtNil
	}

	return _fmtOpen + m.Shape().String() + _fmtClose
}

// Grid renders every element right-aligned to one common width (the widest
// printed element in the whole matrix), cells separated by a space, each row
// terminated by a newline.
// Complexity: O(r*c).
func (m *Matrix) Grid() string {
	if m == nil {
		return _fmtNil + _fmtRowTerm
	}

	cells := make([]string, len(m.data))
	width := 0
	for i, v := range m.data {
		cells[i] = strconv.Itoa(int(v))
		if len(cells[i]) > width {
			width = len(cells[i])
		}
	}

	var b strings.Builder
	b.Grow(m.r * (m.c*(width+1) + 1))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			s := cells[i*m.c+j]
			b.WriteString(strings.Repeat(" ", width-len(s)))
			b.WriteString(s)
		}
		b.WriteString(_fmtRowTerm)
	}

	return b.String()
}

// Format implements fmt.Formatter: %v and %s print the shape summary,
// %+v prints the full grid.
func (m *Matrix) Format(f fmt.State, verb rune) {
	switch {
	case verb == 'v' && f.Flag('+'):
		_, _ = io.WriteString(f, m.Grid())
	case verb == 'v', verb == 's':
		_, _ = io.WriteString(f, m.String())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(%s)", verb, m.String())
	}
}
