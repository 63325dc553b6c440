package app

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/smartpack/internal/schedule"
)

// timerMsg carries a due timer back onto the update goroutine.
type timerMsg struct {
	t *loopTimer
}

// loopScheduler runs scheduled callbacks on the bubbletea event loop: the
// timer goroutine only sends a message, the callback itself runs inside
// Update.
type loopScheduler struct {
	mu      sync.Mutex
	send    func(tea.Msg)
	pending []*loopTimer // fired before a program was attached
}

// loopTimer fields other than timer are only touched on the event loop.
type loopTimer struct {
	timer   *time.Timer
	f       func()
	stopped bool
	fired   bool
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{}
}

// attach starts delivering timers through send. Timers that came due before
// are delivered now.
func (s *loopScheduler) attach(send func(tea.Msg)) {
	s.mu.Lock()
	s.send = send
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, t := range pending {
		send(timerMsg{t: t})
	}
}

// AfterFunc implements schedule.Scheduler.
func (s *loopScheduler) AfterFunc(d time.Duration, f func()) schedule.Timer {
	t := &loopTimer{f: f}
	t.timer = time.AfterFunc(d, func() { s.deliver(t) })
	return t
}

func (s *loopScheduler) deliver(t *loopTimer) {
	s.mu.Lock()
	send := s.send
	if send == nil {
		s.pending = append(s.pending, t)
	}
	s.mu.Unlock()

	if send != nil {
		send(timerMsg{t: t})
	}
}

// Stop implements schedule.Timer.
func (t *loopTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}

// fire runs the callback unless the timer was stopped after its message
// was already queued.
func (t *loopTimer) fire() {
	if t.stopped || t.fired {
		return
	}
	t.fired = true
	t.f()
}
