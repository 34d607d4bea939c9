// SPDX-License-Identifier: MIT
// Package matrix: bounded fan-out/fan-in for column tasks.

package matrix

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// taskFailure records one failed task and its cause.
type taskFailure struct {
	task int
	err  error
}

// failureLog collects task failures from many goroutines. Its mutex is never
// held together with the accumulator's, so the two locks cannot deadlock.
type failureLog struct {
	mu       sync.Mutex
	failures []taskFailure
}

func (l *failureLog) add(task int, err error) {
	l.mu.Lock()
	l.failures = append(l.failures, taskFailure{task: task, err: err})
	l.mu.Unlock()
}

// sorted returns the failures ordered by task index, so the reported first
// column does not depend on scheduling.
func (l *failureLog) sorted() []taskFailure {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]taskFailure, len(l.failures))
	copy(out, l.failures)
	sort.Slice(out, func(i, j int) bool { return out[i].task < out[j].task })

	return out
}

// runTasks executes fn(0..n-1) on `workers` goroutines pulling indices from a
// shared queue, and returns only after every goroutine has exited.
// A task that returns an error or panics stops only itself; its failure is
// recorded and the remaining tasks still run.
func runTasks(n, workers int, fn func(task int) error) []taskFailure {
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	queue := make(chan int, n)
	for t := 0; t < n; t++ {
		queue <- t
	}
	close(queue)

	var (
		wg   sync.WaitGroup
		fail failureLog
	)
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for t := range queue {
				if err := runTask(t, fn); err != nil {
					fail.add(t, err)
				}
			}
		}()
	}
	wg.Wait() // barrier: every dispatched task has finished

	return fail.sorted()
}

// runTask invokes fn(task), converting a panic into an ErrWorkerPanic error.
func runTask(task int, fn func(int) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task %d: %v: %w", task, r, ErrWorkerPanic)
		}
	}()

	return fn(task)
}

// joinFailures folds the causes into one error, in task order.
func joinFailures(failures []taskFailure) error {
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f.err
	}

	return errors.Join(errs...)
}
