package timer

import (
	"sync"
	"time"
)

// Manual is a virtual clock. Time only moves when Advance is called, and
// due callbacks run synchronously on the caller's goroutine.
type Manual struct {
	mu      sync.Mutex
	start   time.Time
	elapsed time.Duration
	seq     uint64
	timers  []*manualTimer
}

type manualTimer struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// NewManual creates a Manual clock starting at the current wall time.
func NewManual() *Manual {
	return &Manual{start: time.Now()}
}

// Now returns the virtual current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.start.Add(m.elapsed)
}

// Elapsed returns how far the clock has advanced since creation.
func (m *Manual) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// AfterFunc implements Scheduler. Negative delays are treated as zero.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Cancel {
	if d < 0 {
		d = 0
	}
	m.mu.Lock()
	m.seq++
	t := &manualTimer{at: m.elapsed + d, seq: m.seq, fn: fn}
	m.timers = append(m.timers, t)
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, cur := range m.timers {
			if cur == t {
				m.timers = append(m.timers[:i], m.timers[i+1:]...)
				return
			}
		}
	}
}

// Advance moves the clock forward by d, running every callback that comes
// due in order of due time (ties in scheduling order). Callbacks scheduled
// by a callback run in the same call if they fall inside the window.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.elapsed + d
	for {
		next := m.popDue(target)
		if next == nil {
			break
		}
		m.elapsed = next.at
		m.mu.Unlock()
		next.fn()
		m.mu.Lock()
	}
	m.elapsed = target
	m.mu.Unlock()
}

// popDue removes and returns the earliest timer due at or before target.
// Must be called with mu held.
func (m *Manual) popDue(target time.Duration) *manualTimer {
	idx := -1
	for i, t := range m.timers {
		if t.at > target {
			continue
		}
		if idx < 0 || t.at < m.timers[idx].at || (t.at == m.timers[idx].at && t.seq < m.timers[idx].seq) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}
	t := m.timers[idx]
	m.timers = append(m.timers[:idx], m.timers[idx+1:]...)
	return t
}

// Pending returns the number of scheduled callbacks that have not run.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}
