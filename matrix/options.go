// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for generation and the parallel
// engine. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No global state: every call resolves its own Options value.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

import (
	"math/rand"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGenerateLow is the inclusive lower bound of Generate values.
	DefaultGenerateLow int32 = 0

	// DefaultGenerateHigh is the exclusive upper bound of Generate values.
	DefaultGenerateHigh int32 = 25

	// DefaultWorkers selects runtime.GOMAXPROCS(0) as the pool size.
	DefaultWorkers = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: n must be >= 1"
	panicRangeInvalid   = "matrix: WithRange: lo must be < hi"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	// parallel engine
	workers   int  // pool size; DefaultWorkers means GOMAXPROCS
	unbounded bool // one goroutine per output column

	// generation
	seeded bool  // use a private source seeded with seed
	seed   int64 // only meaningful when seeded
	lo, hi int32 // value range [lo, hi)

	// test seam: invoked by each column task before it computes (see export_privates_test.go)
	columnFault func(col int) error
}

// WithWorkers bounds the parallel engine to at most n concurrent column tasks.
// The effective pool size is min(n, output columns).
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) {
		o.workers = n
		o.unbounded = false
	}
}

// WithUnboundedWorkers starts one goroutine per output column, the layout of
// the naive design. Concurrency then grows with the right operand's width;
// prefer the bounded default for large inputs.
func WithUnboundedWorkers() Option {
	return func(o *Options) {
		o.unbounded = true
	}
}

// WithSeed makes Generate deterministic: the same seed and shape always
// produce the same matrix.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seeded = true
		o.seed = seed
	}
}

// WithRange sets the Generate value range to [lo, hi).
// Panics if lo >= hi.
func WithRange(lo, hi int32) Option {
	if lo >= hi {
		panic(panicRangeInvalid)
	}

	return func(o *Options) {
		o.lo, o.hi = lo, hi
	}
}

// gatherOptions applies user setters on top of the defaults, in order
// (last-writer-wins).
// Complexity: O(len(user)).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		lo:      DefaultGenerateLow,
		hi:      DefaultGenerateHigh,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// poolSize resolves the number of goroutines for a product with cols output columns.
func (o Options) poolSize(cols int) int {
	if o.unbounded {
		return cols
	}
	n := o.workers
	if n == DefaultWorkers {
		n = runtime.GOMAXPROCS(0)
	}
	if n > cols {
		n = cols
	}

	return n
}

// intn returns the value source used by Generate: a private seeded stream
// when WithSeed was given, the auto-seeded package source otherwise.
// math/rand.Rand is not goroutine-safe; each Generate call gets its own.
func (o Options) intn() func(n int64) int64 {
	if o.seeded {
		return rand.New(rand.NewSource(o.seed)).Int63n
	}

	return rand.Int63n
}
