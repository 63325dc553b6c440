package schedule

import (
	"sync"
	"time"
)

// Throttler limits calls to one per interval. The first call of a window
// goes through immediately; later calls in the same window collapse into
// the latest value, which is delivered when the window closes.
type Throttler[T any] struct {
	s     Scheduler
	limit time.Duration
	fn    func(T)

	mu         sync.Mutex
	timer      Timer
	pending    T
	hasPending bool
}

// NewThrottler returns a Throttler that calls fn at most once per limit.
func NewThrottler[T any](s Scheduler, limit time.Duration, fn func(T)) *Throttler[T] {
	return &Throttler[T]{s: s, limit: limit, fn: fn}
}

// Call delivers v now if no window is open, otherwise keeps it for the window end.
func (t *Throttler[T]) Call(v T) {
	t.mu.Lock()
	if t.timer != nil {
		t.pending = v
		t.hasPending = true
		t.mu.Unlock()
		return
	}
	t.openWindowLocked()
	t.mu.Unlock()
	t.fn(v)
}

func (t *Throttler[T]) openWindowLocked() {
	var timer Timer
	timer = t.s.AfterFunc(t.limit, func() {
		t.mu.Lock()
		if t.timer != timer {
			t.mu.Unlock()
			return
		}
		t.timer = nil
		if !t.hasPending {
			t.mu.Unlock()
			return
		}
		v := t.pending
		t.hasPending = false
		t.openWindowLocked()
		t.mu.Unlock()
		t.fn(v)
	})
	t.timer = timer
}

// Flush delivers a value held for the window end right away.
func (t *Throttler[T]) Flush() {
	t.mu.Lock()
	if !t.hasPending {
		t.mu.Unlock()
		return
	}
	v := t.pending
	t.hasPending = false
	t.mu.Unlock()
	t.fn(v)
}

// Stop closes the window and drops any held value.
func (t *Throttler[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.hasPending = false
}
