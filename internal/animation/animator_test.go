package animation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/smartpack/internal/layout"
	"github.com/llehouerou/smartpack/internal/schedule"
)

func TestAnimator_TriggerOpensWindow(t *testing.T) {
	m := schedule.NewManual()
	a := New(m, 0, false)

	var changes []bool
	a.OnChange(func(v bool) { changes = append(changes, v) })

	assert.True(t, a.Trigger())
	assert.True(t, a.IsAnimating())

	m.Advance(499 * time.Millisecond)
	assert.True(t, a.IsAnimating())

	m.Advance(time.Millisecond)
	assert.False(t, a.IsAnimating())
	assert.Equal(t, []bool{true, false}, changes)
}

func TestAnimator_RetriggerRestartsWindow(t *testing.T) {
	m := schedule.NewManual()
	a := New(m, DefaultDuration, false)

	a.Trigger()
	m.Advance(400 * time.Millisecond)
	a.Trigger()
	m.Advance(400 * time.Millisecond)
	assert.True(t, a.IsAnimating())

	m.Advance(100 * time.Millisecond)
	assert.False(t, a.IsAnimating())
	assert.Zero(t, m.Pending())
}

func TestAnimator_ReducedMotionSkipsWindow(t *testing.T) {
	m := schedule.NewManual()
	a := New(m, DefaultDuration, true)

	assert.False(t, a.Trigger())
	assert.False(t, a.IsAnimating())
	assert.Zero(t, m.Pending())
}

func TestAnimator_EnablingReducedMotionEndsWindow(t *testing.T) {
	m := schedule.NewManual()
	a := New(m, DefaultDuration, false)

	a.Trigger()
	a.SetReducedMotion(true)

	assert.False(t, a.IsAnimating())
	assert.True(t, a.PrefersReducedMotion())
	assert.Zero(t, m.Pending())
}

func TestAnimator_SetAnimatingFalseCancelsReset(t *testing.T) {
	m := schedule.NewManual()
	a := New(m, DefaultDuration, false)

	a.Trigger()
	a.SetAnimating(false)
	assert.False(t, a.IsAnimating())
	assert.Zero(t, m.Pending())

	a.SetAnimating(true)
	m.Advance(time.Second)
	assert.True(t, a.IsAnimating(), "a forced flag has no timer")
}

func TestAnimator_TransitionStyles(t *testing.T) {
	m := schedule.NewManual()
	a := New(m, DefaultDuration, false)

	idle := a.TransitionStyles()
	assert.Equal(t, 500*time.Millisecond, idle.Duration)
	assert.Equal(t, "auto", idle.WillChange)
	assert.Equal(t,
		"width 500ms cubic-bezier(0.4, 0, 0.2, 1), opacity 500ms cubic-bezier(0.4, 0, 0.2, 1), transform 500ms cubic-bezier(0.4, 0, 0.2, 1)",
		idle.Transition())

	a.Trigger()
	assert.Equal(t, "width, opacity, transform", a.TransitionStyles().WillChange)

	a.SetReducedMotion(true)
	reduced := a.TransitionStyles()
	assert.Zero(t, reduced.Duration)
	assert.Equal(t, "auto", reduced.WillChange)
	assert.Contains(t, reduced.Transition(), "width 0ms")
}

func TestSettle_ConvergesToTarget(t *testing.T) {
	s := NewSettle(60)
	start := layout.Widths{TripDetails: 350, PackingChecklist: 400, Suggestions: 350}
	target := layout.Widths{TripDetails: 500, PackingChecklist: 300, Suggestions: 350}

	assert.Equal(t, start, s.Step(start))

	moved := s.Step(target)
	assert.Greater(t, moved.TripDetails, start.TripDetails)
	assert.Less(t, moved.PackingChecklist, start.PackingChecklist)

	for range 600 {
		s.Step(target)
	}
	assert.True(t, s.Settled(target))
	assert.Equal(t, target, s.Current())
}

func TestSettle_Snap(t *testing.T) {
	s := NewSettle(60)
	target := layout.Widths{TripDetails: 1, PackingChecklist: 2, Suggestions: 3}

	assert.Equal(t, target, s.Snap(target))
	assert.True(t, s.Settled(target))
}
