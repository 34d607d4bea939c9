// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the parallel engine.
//
// Purpose:
//   - Expose the unexported column fault seam and option internals to matrix_test ONLY.
//   - File name ends in _test.go, so none of this reaches production builds.

// WithColumnFault_TestOnly installs a hook run by every column task before it
// computes. A non-nil error fails that task; a panic is recovered as
// ErrWorkerPanic; ErrSkipColumn_TestOnly makes the task store nothing.
func WithColumnFault_TestOnly(fn func(col int) error) Option {
	return func(o *Options) {
		o.columnFault = fn
	}
}

// ErrSkipColumn_TestOnly exposes errSkipColumn.
var ErrSkipColumn_TestOnly = errSkipColumn

// PoolSize_TestOnly reports the goroutine count MultiplyParallel would use
// for a product with cols output columns.
func PoolSize_TestOnly(cols int, opts ...Option) int {
	return gatherOptions(opts...).poolSize(cols)
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicWorkersInvalid_TestOnly = panicWorkersInvalid
	PanicRangeInvalid_TestOnly   = panicRangeInvalid
)
