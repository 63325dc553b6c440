// Package animation tracks the transient "animating" window that follows a
// layout change and describes the transition consumers should apply.
package animation

import (
	"fmt"
	"strings"
	"time"

	"github.com/llehouerou/smartpack/internal/schedule"
)

// DefaultDuration is the length of a layout transition.
const DefaultDuration = 500 * time.Millisecond

// Easing is the timing function of every layout transition.
const Easing = "cubic-bezier(0.4, 0, 0.2, 1)"

// Properties lists the transitioned properties, in order.
var Properties = []string{"width", "opacity", "transform"}

// Styles describes how a column should transition.
type Styles struct {
	Duration   time.Duration
	Easing     string
	Properties []string
	// WillChange hints the animated properties while a transition runs,
	// "auto" otherwise.
	WillChange string
}

// Transition renders the styles as a CSS transition value, e.g.
// "width 500ms cubic-bezier(...), opacity 500ms ...".
func (s Styles) Transition() string {
	parts := make([]string, len(s.Properties))
	for i, p := range s.Properties {
		parts[i] = fmt.Sprintf("%s %dms %s", p, s.Duration.Milliseconds(), s.Easing)
	}
	return strings.Join(parts, ", ")
}

// Animator owns the isAnimating flag. It is not safe for concurrent use:
// the scheduler must run callbacks on the goroutine that owns the Animator.
type Animator struct {
	s        schedule.Scheduler
	duration time.Duration
	reduced  bool

	animating bool
	timer     schedule.Timer
	onChange  func(animating bool)
}

// New returns an Animator. A non-positive duration selects DefaultDuration.
func New(s schedule.Scheduler, duration time.Duration, reducedMotion bool) *Animator {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Animator{s: s, duration: duration, reduced: reducedMotion}
}

// OnChange registers a callback run whenever IsAnimating flips.
func (a *Animator) OnChange(fn func(animating bool)) {
	a.onChange = fn
}

// IsAnimating reports whether a transition window is open.
func (a *Animator) IsAnimating() bool {
	return a.animating
}

// PrefersReducedMotion reports the current motion preference.
func (a *Animator) PrefersReducedMotion() bool {
	return a.reduced
}

// Duration is the configured transition length, regardless of motion preference.
func (a *Animator) Duration() time.Duration {
	return a.duration
}

// Trigger opens a transition window that closes after Duration. It does
// nothing and returns false when reduced motion is preferred. Triggering
// during an open window restarts it.
func (a *Animator) Trigger() bool {
	if a.reduced {
		return false
	}
	a.stopTimer()
	a.set(true)
	var t schedule.Timer
	t = a.s.AfterFunc(a.duration, func() {
		if a.timer != t {
			return
		}
		a.timer = nil
		a.set(false)
	})
	a.timer = t
	return true
}

// SetAnimating forces the flag. Clearing it cancels a pending reset.
func (a *Animator) SetAnimating(animating bool) {
	if !animating {
		a.stopTimer()
	}
	a.set(animating)
}

// SetReducedMotion updates the motion preference. Turning it on ends any
// open window immediately.
func (a *Animator) SetReducedMotion(reduced bool) {
	a.reduced = reduced
	if reduced {
		a.stopTimer()
		a.set(false)
	}
}

// TransitionStyles describes the transition for the current state.
func (a *Animator) TransitionStyles() Styles {
	d := a.duration
	if a.reduced {
		d = 0
	}
	willChange := "auto"
	if a.animating {
		willChange = strings.Join(Properties, ", ")
	}
	return Styles{
		Duration:   d,
		Easing:     Easing,
		Properties: Properties,
		WillChange: willChange,
	}
}

// Close cancels the pending reset without changing the flag.
func (a *Animator) Close() {
	a.stopTimer()
}

func (a *Animator) stopTimer() {
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

func (a *Animator) set(animating bool) {
	if a.animating == animating {
		return
	}
	a.animating = animating
	if a.onChange != nil {
		a.onChange(animating)
	}
}
