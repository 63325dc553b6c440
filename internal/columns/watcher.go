package columns

import (
	"time"

	"github.com/llehouerou/smartpack/internal/schedule"
)

// ViewportWatcher forwards viewport sizes to a Store once they stop
// changing for the debounce delay.
type ViewportWatcher struct {
	d *schedule.Debouncer[Viewport]
}

// NewViewportWatcher returns a watcher feeding store. A non-positive delay
// selects schedule.ResizeDebounce.
func NewViewportWatcher(store *Store, s schedule.Scheduler, delay time.Duration) *ViewportWatcher {
	if delay <= 0 {
		delay = schedule.ResizeDebounce
	}
	return &ViewportWatcher{
		d: schedule.NewDebouncer(s, delay, func(v Viewport) {
			store.SetViewport(v.Width, v.Height)
		}),
	}
}

// Update records a new size. Only the last size of a burst reaches the store.
func (w *ViewportWatcher) Update(width, height float64) {
	w.d.Call(Viewport{Width: width, Height: height})
}

// Stop drops a pending update.
func (w *ViewportWatcher) Stop() {
	w.d.Stop()
}
