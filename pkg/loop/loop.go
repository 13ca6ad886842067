// Package loop runs callbacks on a single goroutine.
//
// A Loop plays the role of a UI thread: every function dispatched to it
// runs to completion before the next one starts, in FIFO order. Code that
// owns non-thread-safe state (such as a dom.Document) dispatches all work
// through the loop instead of taking locks.
package loop

import (
	"context"
	"errors"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"
)

var (
	// ErrClosed is returned when dispatching to a closed loop.
	ErrClosed = errors.New("loop: closed")

	// ErrQueueFull is returned when the dispatch queue is full.
	ErrQueueFull = errors.New("loop: queue full")
)

// DefaultQueueSize is the dispatch buffer used when New is given size <= 0.
const DefaultQueueSize = 256

// Loop executes dispatched functions sequentially on one goroutine.
type Loop struct {
	dispatchCh chan func()
	done       chan struct{}
	closeOnce  sync.Once
	closed     atomic.Bool
	logger     *slog.Logger
}

// New creates a Loop with the given queue size. Call Run to start it.
func New(size int, logger *slog.Logger) *Loop {
	if size <= 0 {
		size = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Loop{
		dispatchCh: make(chan func(), size),
		done:       make(chan struct{}),
		logger:     logger.With("component", "loop"),
	}
}

// Run processes dispatched functions until ctx is cancelled or Close is
// called. It blocks.
func (l *Loop) Run(ctx context.Context) {
	defer l.Close()
	for {
		select {
		case fn := <-l.dispatchCh:
			l.execute(fn)
		case <-ctx.Done():
			return
		case <-l.done:
			return
		}
	}
}

// execute runs fn with panic recovery.
func (l *Loop) execute(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("dispatch panic",
				"panic", r,
				"stack", string(debug.Stack()))
		}
	}()
	fn()
}

// Dispatch queues fn to run on the loop. It never blocks.
func (l *Loop) Dispatch(fn func()) error {
	if l.closed.Load() {
		return ErrClosed
	}
	select {
	case l.dispatchCh <- fn:
		return nil
	case <-l.done:
		return ErrClosed
	default:
		l.logger.Warn("dispatch queue full, discarding callback")
		return ErrQueueFull
	}
}

// Post queues fn, waiting for room in the queue if it is full. It returns
// without queueing once the loop is closed. Timer dispatchers use Post so
// that scheduled callbacks are never discarded. Post must not be called
// from the loop goroutine.
func (l *Loop) Post(fn func()) {
	if l.closed.Load() {
		return
	}
	select {
	case l.dispatchCh <- fn:
	case <-l.done:
	}
}

// Call runs fn on the loop and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if err := l.Dispatch(func() {
		defer close(finished)
		fn()
	}); err != nil {
		return err
	}
	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		// The loop may have run fn right before closing.
		select {
		case <-finished:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Close stops the loop. Queued functions that have not started are dropped.
func (l *Loop) Close() {
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.done)
	})
}

// Done returns a channel that's closed when the loop stops.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// IsClosed reports whether the loop has stopped.
func (l *Loop) IsClosed() bool {
	return l.closed.Load()
}
