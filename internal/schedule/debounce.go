package schedule

import (
	"sync"
	"time"
)

// Debouncer delays a call until no new value arrived for the configured delay.
// Only the latest value is delivered.
type Debouncer[T any] struct {
	s     Scheduler
	delay time.Duration
	fn    func(T)

	mu      sync.Mutex
	timer   Timer
	pending T
}

// NewDebouncer returns a Debouncer that calls fn with the latest value.
func NewDebouncer[T any](s Scheduler, delay time.Duration, fn func(T)) *Debouncer[T] {
	return &Debouncer[T]{s: s, delay: delay, fn: fn}
}

// Call records v and restarts the delay.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = v
	if d.timer != nil {
		d.timer.Stop()
	}
	var t Timer
	t = d.s.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.timer != t {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		v := d.pending
		d.mu.Unlock()
		d.fn(v)
	})
	d.timer = t
}

// Stop drops any pending call.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
