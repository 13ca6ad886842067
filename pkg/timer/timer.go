// Package timer schedules delayed callbacks.
//
// Scheduler abstracts time.AfterFunc so that code with timing behavior
// (auto-dismiss, exit animations) can run against the wall clock in
// production and against a Manual clock in tests.
package timer

import (
	"sync/atomic"
	"time"
)

// Cancel stops a scheduled callback. It is safe to call more than once.
type Cancel func()

// Scheduler runs fn once after d has elapsed.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Cancel
}

// Real schedules callbacks on the wall clock.
type Real struct {
	dispatch func(func())
}

// NewReal creates a wall-clock scheduler. When dispatch is non-nil, fired
// callbacks are handed to it (typically loop.Loop.Post) instead of running
// on the timer goroutine.
func NewReal(dispatch func(func())) *Real {
	return &Real{dispatch: dispatch}
}

// AfterFunc implements Scheduler. If Cancel runs on the dispatch goroutine
// before the callback starts, the callback never runs.
func (r *Real) AfterFunc(d time.Duration, fn func()) Cancel {
	var stopped atomic.Bool
	run := func() {
		if stopped.CompareAndSwap(false, true) {
			fn()
		}
	}

	t := time.AfterFunc(d, func() {
		if stopped.Load() {
			return
		}
		if r.dispatch == nil {
			run()
			return
		}
		r.dispatch(run)
	})

	return func() {
		stopped.Store(true)
		t.Stop()
	}
}
