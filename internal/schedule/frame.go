package schedule

import (
	"sync"
	"time"
)

// Frame coalesces requests into at most one callback per frame. Requests
// made before the frame fires replace each other; the callback receives the
// latest one.
type Frame[T any] struct {
	s        Scheduler
	interval time.Duration
	fn       func(T)

	mu      sync.Mutex
	timer   Timer
	pending T
}

// NewFrame returns a Frame delivering to fn every interval at most.
func NewFrame[T any](s Scheduler, interval time.Duration, fn func(T)) *Frame[T] {
	return &Frame[T]{s: s, interval: interval, fn: fn}
}

// Request schedules v for the next frame.
func (f *Frame[T]) Request(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pending = v
	if f.timer != nil {
		return
	}
	var t Timer
	t = f.s.AfterFunc(f.interval, func() {
		f.mu.Lock()
		if f.timer != t {
			f.mu.Unlock()
			return
		}
		f.timer = nil
		v := f.pending
		f.mu.Unlock()
		f.fn(v)
	})
	f.timer = t
}

// Scheduled reports whether a frame is waiting to fire.
func (f *Frame[T]) Scheduled() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.timer != nil
}

// Flush runs a scheduled frame immediately. It is a no-op when nothing is scheduled.
func (f *Frame[T]) Flush() {
	f.mu.Lock()
	if f.timer == nil {
		f.mu.Unlock()
		return
	}
	f.timer.Stop()
	f.timer = nil
	v := f.pending
	f.mu.Unlock()
	f.fn(v)
}

// Cancel drops a scheduled frame without running it.
func (f *Frame[T]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
}
