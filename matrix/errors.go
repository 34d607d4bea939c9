// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and the two typed error classes.
// All public operations return these values and tests MUST check them via
// errors.Is / errors.As. No operation panics on user-triggered conditions;
// MustMul is the single documented exception.

package matrix

import (
	"errors"
	"fmt"
	"strings"
)

// NOTE ON NAMING & CLASSES
// ------------------------
// Every message is prefixed with "matrix: ...". Failures fall into two classes:
//
//	ShapeError       - bad input: ragged rows, empty shape, nil or incompatible operands.
//	ConcurrencyError - execution fault inside the parallel engine.
//
// Both classes carry a sentinel cause, so errors.Is works on the cause as well
// as on the class sentinels ErrShape and ErrConcurrency.

var (
	// ErrShape is the class sentinel matched by every *ShapeError.
	ErrShape = errors.New("matrix: shape error")

	// ErrBadShape is returned when a requested or supplied shape has a zero
	// (or negative) dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrRaggedRows indicates that input rows do not share a common length.
	ErrRaggedRows = errors.New("matrix: row length mismatch")

	// ErrDimensionMismatch indicates incompatible operands (a.Cols != b.Rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

var (
	// ErrConcurrency is the class sentinel matched by every *ConcurrencyError.
	ErrConcurrency = errors.New("matrix: concurrency error")

	// ErrWorkerPanic marks a column task that panicked; the panic value is
	// attached to the wrapping error message.
	ErrWorkerPanic = errors.New("matrix: worker panicked")

	// ErrSealed is returned by the accumulator when a store arrives after
	// the coordinator has read the result back.
	ErrSealed = errors.New("matrix: accumulator already sealed")

	// ErrDuplicateWrite is returned when a cell of the accumulator is written twice.
	ErrDuplicateWrite = errors.New("matrix: cell written twice")

	// ErrIncompleteResult is returned at readback when at least one cell was
	// never written by any worker.
	ErrIncompleteResult = errors.New("matrix: result has unwritten cells")
)

// Operand names carried by ShapeError when one side of a product is malformed.
const (
	OperandLeft  = "left"
	OperandRight = "right"
)

// Stage names carried by ConcurrencyError.
const (
	StageWorker   = "worker"
	StageReadback = "readback"
)

// ShapeError reports malformed input or incompatible operand shapes.
// It is always produced before any computation or goroutine starts.
type ShapeError struct {
	Op    string // operation tag (opNew, opGenerate, opMul, ...)
	Left  Shape  // shape of the offending input or of the left operand
	Right Shape  // shape of the right operand; zero for unary checks
	Row   int    // offending row index for ragged input, -1 otherwise
	Got   int    // length of the offending row when Row >= 0
	// Operand is OperandLeft or OperandRight when a product operand has a bad
	// shape; empty otherwise.
	Operand string
	Err     error // cause: ErrBadShape, ErrRaggedRows, ErrDimensionMismatch or ErrNilMatrix
}

// Error renders the operation, the shapes involved and the cause.
func (e *ShapeError) Error() string {
	switch {
	case e.Row >= 0:
		return fmt.Sprintf("%s: row %d has length %d, want %d: %v", e.Op, e.Row, e.Got, e.Left.Cols, e.Err)
	case e.Operand != "":
		bad := e.Left
		if e.Operand == OperandRight {
			bad = e.Right
		}
		return fmt.Sprintf("%s: %s operand has shape %s: %v", e.Op, e.Operand, bad, e.Err)
	case errors.Is(e.Err, ErrDimensionMismatch), errors.Is(e.Err, ErrNilMatrix):
		return fmt.Sprintf("%s: cannot multiply %s by %s: %v", e.Op, describe(e.Left), describe(e.Right), e.Err)
	default:
		return fmt.Sprintf("%s: shape %s: %v", e.Op, e.Left, e.Err)
	}
}

// Unwrap exposes the sentinel cause.
func (e *ShapeError) Unwrap() error { return e.Err }

// Is makes every ShapeError match ErrShape.
func (e *ShapeError) Is(target error) bool { return target == ErrShape }

// ConcurrencyError reports a fault inside the parallel engine: a failed column
// task (Stage == StageWorker) or a failed readback of the shared result
// (Stage == StageReadback). Partial results are never returned with it.
type ConcurrencyError struct {
	Stage  string // StageWorker or StageReadback
	Column int    // first failing output column, -1 for readback failures
	Failed int    // number of failed column tasks
	Err    error  // joined causes
}

// Error renders the failing stage and the joined causes.
func (e *ConcurrencyError) Error() string {
	var b strings.Builder
	b.WriteString(opMulParallel)
	b.WriteString(": ")
	b.WriteString(e.Stage)
	if e.Stage == StageWorker {
		fmt.Fprintf(&b, " failure in %d task(s), first at column %d", e.Failed, e.Column)
	} else {
		b.WriteString(" failure")
	}
	if e.Err == nil {
		return b.String()
	}
	b.WriteString(": ")
	// errors.Join separates causes with newlines; keep the message on one line.
	b.WriteString(strings.ReplaceAll(e.Err.Error(), "\n", "; "))

	return b.String()
}

// Unwrap exposes the joined causes.
func (e *ConcurrencyError) Unwrap() error { return e.Err }

// Is makes every ConcurrencyError match ErrConcurrency.
func (e *ConcurrencyError) Is(target error) bool { return target == ErrConcurrency }

// describe renders an operand shape; a zero shape stands for a nil operand.
func describe(s Shape) string {
	if s == (Shape{}) {
		return "<nil>"
	}

	return "Matrix(" + s.String() + ")"
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
