package solver

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// dispatcher is the admission-control handle for build parallelism. Rather
// than a process-wide counter, each Solve call carries its own dispatcher so
// the worker cap is plain configuration and the policy is unit-testable.
//
// The model is fork-join: fork either hands work to a fresh goroutine (when
// a worker slot is free) or runs it inline on the caller, so dispatch never
// blocks on capacity; the caller joins all dispatched siblings via the
// WaitGroup it passed in.
type dispatcher struct {
	sem *semaphore.Weighted
}

// newDispatcher caps concurrently dispatched workers at maxWorkers.
// A cap of 0 forces all work inline.
func newDispatcher(maxWorkers int64) *dispatcher {
	if maxWorkers < 0 {
		maxWorkers = 0
	}

	return &dispatcher{sem: semaphore.NewWeighted(maxWorkers)}
}

// fork runs fn on its own goroutine if a worker slot is free, inline
// otherwise. wg tracks dispatched goroutines only; inline runs complete
// before fork returns.
func (d *dispatcher) fork(wg *sync.WaitGroup, fn func()) {
	if !d.sem.TryAcquire(1) {
		fn()

		return
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer d.sem.Release(1)
		fn()
	}()
}
